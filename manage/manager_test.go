package manage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/kasuganosora/packmule/camp"
	"github.com/kasuganosora/packmule/equipment"
	"github.com/kasuganosora/packmule/inventory"
	"github.com/kasuganosora/packmule/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type entry struct {
	action string
	name   string
}

type fakeJournal struct {
	entries []entry
	err     error
}

func (j *fakeJournal) Record(action string, rec equipment.Record) error {
	if j.err != nil {
		return j.err
	}
	j.entries = append(j.entries, entry{action, rec.Name})
	return nil
}

type fakeStasher struct {
	stashed []string
	err     error
}

func (s *fakeStasher) Stash(rec equipment.Record) error {
	if s.err != nil {
		return s.err
	}
	s.stashed = append(s.stashed, rec.Name)
	return nil
}

func threeItems() *inventory.Inventory {
	inv := inventory.New()
	inv.Add(equipment.Record{Name: "Rope", Weight: 10})
	inv.Add(equipment.Record{Name: "Torch", Weight: 1})
	inv.Add(equipment.Record{Name: "Lamp", Weight: 1})
	return inv
}

func currentName(t *testing.T, m *Manager) string {
	t.Helper()
	rec, ok := m.Current()
	require.True(t, ok)
	return rec.Name
}

// ---- Navigation ----

func TestNext_WrapsToStart(t *testing.T) {
	m := New(threeItems(), nil, nil, zap.NewNop())
	assert.Equal(t, "Rope", currentName(t, m))

	m.Handle("next")
	assert.Equal(t, "Torch", currentName(t, m))
	m.Handle("n")
	assert.Equal(t, "Lamp", currentName(t, m))
	out := m.Handle("next")
	assert.Equal(t, CmdNext, out.Command)
	assert.Equal(t, 0, m.Cursor())
	assert.Equal(t, "[1/3] Rope (10.00)", out.Message)
}

func TestPrevious_WrapsToEnd(t *testing.T) {
	m := New(threeItems(), nil, nil, zap.NewNop())
	m.Handle("previous")
	assert.Equal(t, "Lamp", currentName(t, m))
	m.Handle("prev")
	assert.Equal(t, "Torch", currentName(t, m))
	m.Handle("p")
	assert.Equal(t, "Rope", currentName(t, m))
}

func TestNavigation_EmptyInventory(t *testing.T) {
	m := New(inventory.New(), nil, nil, zap.NewNop())
	out := m.Handle("next")
	assert.Equal(t, "inventory is empty", out.Message)
	assert.Equal(t, 0, m.Cursor())
	out = m.Handle("previous")
	assert.Equal(t, "inventory is empty", out.Message)
	_, ok := m.Current()
	assert.False(t, ok)
}

// ---- Unknown input ----

func TestHandle_UnknownCommandKeepsState(t *testing.T) {
	m := New(threeItems(), nil, nil, zap.NewNop())
	m.Handle("next")

	out := m.Handle("dance")
	assert.Empty(t, out.Command)
	assert.Contains(t, out.Message, `unknown command "dance"`)
	assert.Equal(t, 1, m.Cursor())
	assert.Equal(t, StateBrowsing, m.State())
}

func TestHandle_SuggestsTypo(t *testing.T) {
	m := New(threeItems(), nil, nil, zap.NewNop())
	out := m.Handle("stauts")
	assert.Empty(t, out.Command)
	assert.Equal(t, CmdStatus, out.Suggestion)
	assert.Contains(t, out.Message, `did you mean "status"?`)
}

func TestHandle_BlankLine(t *testing.T) {
	m := New(threeItems(), nil, nil, zap.NewNop())
	out := m.Handle("   ")
	assert.Equal(t, Outcome{}, out)
}

func TestHandle_CaseInsensitive(t *testing.T) {
	m := New(threeItems(), nil, nil, zap.NewNop())
	out := m.Handle("  NEXT  ")
	assert.Equal(t, CmdNext, out.Command)
}

// ---- Use ----

func TestUse_RecordsWithoutMutating(t *testing.T) {
	inv := threeItems()
	j := &fakeJournal{}
	m := New(inv, j, nil, zap.NewNop())
	m.Handle("next")

	out := m.Handle("use")
	assert.Equal(t, "used Torch", out.Message)
	assert.NoError(t, out.Err)
	assert.Equal(t, []entry{{model.ActionUse, "Torch"}}, j.entries)
	assert.Equal(t, 3, inv.Len())
	assert.Equal(t, 12.0, inv.CurrentWeight())
}

func TestUse_JournalFailureReported(t *testing.T) {
	j := &fakeJournal{err: errors.New("disk full")}
	m := New(threeItems(), j, nil, zap.NewNop())
	out := m.Handle("u")
	assert.EqualError(t, out.Err, "disk full")
}

func TestUse_EmptyInventory(t *testing.T) {
	j := &fakeJournal{}
	m := New(inventory.New(), j, nil, zap.NewNop())
	out := m.Handle("use")
	assert.Equal(t, "inventory is empty", out.Message)
	assert.Empty(t, j.entries)
}

// ---- Camp ----

func TestCamp_StashesAndKeepsItem(t *testing.T) {
	inv := threeItems()
	j := &fakeJournal{}
	s := &fakeStasher{}
	m := New(inv, j, s, zap.NewNop())

	out := m.Handle("camp")
	assert.Equal(t, "moved Rope to camp", out.Message)
	assert.NoError(t, out.Err)
	assert.Equal(t, []string{"Rope"}, s.stashed)
	assert.Equal(t, []entry{{model.ActionCamp, "Rope"}}, j.entries)
	assert.Equal(t, 3, inv.Len())
	assert.Equal(t, "Rope", currentName(t, m))
}

func TestCamp_NoCampFile(t *testing.T) {
	inv := threeItems()
	m := New(inv, nil, nil, zap.NewNop())
	out := m.Handle("camp")
	assert.ErrorIs(t, out.Err, ErrNoCampFile)
	assert.Equal(t, 3, inv.Len())
}

func TestCamp_UnopenableFileLeavesInventory(t *testing.T) {
	inv := threeItems()
	before := inv.Report()
	j := &fakeJournal{}
	stasher := camp.New(filepath.Join(t.TempDir(), "missing", "camp.txt"))
	m := New(inv, j, stasher, zap.NewNop())

	out := m.Handle("camp")
	require.Error(t, out.Err)
	assert.ErrorIs(t, out.Err, os.ErrNotExist)
	assert.Contains(t, out.Message, "cannot camp Rope")
	assert.Equal(t, before, inv.Report())
	assert.Empty(t, j.entries, "failed camp is not journaled")
}

// ---- Status / Exit ----

func TestStatus_ReportsAndEncumbrance(t *testing.T) {
	inv := threeItems()
	inv.SetMaxWeight(12)
	m := New(inv, nil, nil, zap.NewNop())

	out := m.Handle("status")
	assert.Equal(t, CmdStatus, out.Command)
	assert.Contains(t, out.Message, "Total Weight: 12.00")
	assert.Contains(t, out.Message, "Status: encumbered (12.00 / 12.00)")
}

func TestExit_EndsSession(t *testing.T) {
	m := New(threeItems(), nil, nil, zap.NewNop())
	out := m.Handle("quit")
	assert.Equal(t, CmdExit, out.Command)
	assert.True(t, m.Done())

	out = m.Handle("next")
	assert.Empty(t, out.Command)
	assert.Equal(t, 0, m.Cursor())
}

// ---- Lookup / Suggest ----

func TestLookup(t *testing.T) {
	for alias, want := range aliases {
		got, ok := Lookup(alias)
		assert.True(t, ok, alias)
		assert.Equal(t, want, got, alias)
	}
	_, ok := Lookup("")
	assert.False(t, ok)
	cmd, ok := Lookup("camp now")
	assert.True(t, ok)
	assert.Equal(t, CmdCamp, cmd)
}

func TestSuggest(t *testing.T) {
	cases := []struct {
		in   string
		want Command
		ok   bool
	}{
		{"nxt", CmdNext, true},
		{"previos", CmdPrevious, true},
		{"exitt", CmdExit, true},
		{"stat", CmdStatus, true},
		{"dance", "", false},
		{"xy", "", false},
		{"banana", "", false},
	}
	for _, tc := range cases {
		got, ok := Suggest(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}
