// Package manage walks a loaded inventory one item at a time and applies
// console commands to the item under the cursor.
package manage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kasuganosora/packmule/equipment"
	"github.com/kasuganosora/packmule/inventory"
	"github.com/kasuganosora/packmule/model"
	"go.uber.org/zap"
)

// ErrNoCampFile is returned by camp when no camp file is configured.
var ErrNoCampFile = errors.New("no camp file configured")

// Journal records actions taken on items.
type Journal interface {
	Record(action string, rec equipment.Record) error
}

// Stasher appends an item to the camp file.
type Stasher interface {
	Stash(rec equipment.Record) error
}

// State is the manager's lifecycle state.
type State int

const (
	StateBrowsing State = iota
	StateDone
)

// Outcome is the result of handling one line of input.
type Outcome struct {
	Command    Command // empty when the input was not recognized
	Message    string
	Suggestion Command
	Err        error
}

// Manager is the interactive management state machine. It holds a cursor
// into the inventory and never removes or reorders records.
type Manager struct {
	inv     *inventory.Inventory
	cursor  int
	state   State
	journal Journal
	stasher Stasher
	logger  *zap.Logger
}

// New creates a Manager over inv. journal and stasher may be nil, in which
// case use is not recorded and camp reports ErrNoCampFile.
func New(inv *inventory.Inventory, journal Journal, stasher Stasher, logger *zap.Logger) *Manager {
	return &Manager{
		inv:     inv,
		journal: journal,
		stasher: stasher,
		logger:  logger,
	}
}

func (m *Manager) Cursor() int  { return m.cursor }
func (m *Manager) State() State { return m.state }
func (m *Manager) Done() bool   { return m.state == StateDone }

// Current returns the record under the cursor.
func (m *Manager) Current() (equipment.Record, bool) {
	return m.inv.At(m.cursor)
}

// Handle applies one line of input.
func (m *Manager) Handle(input string) Outcome {
	if m.state == StateDone {
		return Outcome{Message: "session closed"}
	}
	if strings.TrimSpace(input) == "" {
		return Outcome{}
	}
	cmd, ok := Lookup(input)
	if !ok {
		out := Outcome{Message: fmt.Sprintf("unknown command %q; try one of %s", strings.TrimSpace(input), menu())}
		if s, ok := Suggest(input); ok {
			out.Suggestion = s
			out.Message = fmt.Sprintf("unknown command %q; did you mean %q?", strings.TrimSpace(input), s)
		}
		return out
	}

	switch cmd {
	case CmdNext:
		return m.move(cmd, 1)
	case CmdPrevious:
		return m.move(cmd, -1)
	case CmdUse:
		return m.use()
	case CmdCamp:
		return m.camp()
	case CmdStatus:
		return Outcome{Command: cmd, Message: m.inv.Report() + m.inv.StatusLine()}
	case CmdExit:
		m.state = StateDone
		return Outcome{Command: cmd, Message: "bye"}
	}
	return Outcome{Command: cmd}
}

// move steps the cursor by delta, wrapping at both ends.
func (m *Manager) move(cmd Command, delta int) Outcome {
	n := m.inv.Len()
	if n == 0 {
		return Outcome{Command: cmd, Message: "inventory is empty"}
	}
	m.cursor = ((m.cursor+delta)%n + n) % n
	return Outcome{Command: cmd, Message: m.describeCurrent()}
}

func (m *Manager) use() Outcome {
	rec, ok := m.Current()
	if !ok {
		return Outcome{Command: CmdUse, Message: "inventory is empty"}
	}
	out := Outcome{Command: CmdUse, Message: fmt.Sprintf("used %s", rec.Name)}
	if m.journal != nil {
		if err := m.journal.Record(model.ActionUse, rec); err != nil {
			m.logger.Warn("history write failed", zap.String("item", rec.Name), zap.Error(err))
			out.Err = err
		}
	}
	return out
}

func (m *Manager) camp() Outcome {
	rec, ok := m.Current()
	if !ok {
		return Outcome{Command: CmdCamp, Message: "inventory is empty"}
	}
	if m.stasher == nil {
		m.logger.Warn("camp skipped", zap.String("item", rec.Name), zap.Error(ErrNoCampFile))
		return Outcome{Command: CmdCamp, Message: "cannot camp: " + ErrNoCampFile.Error(), Err: ErrNoCampFile}
	}
	if err := m.stasher.Stash(rec); err != nil {
		m.logger.Warn("camp failed", zap.String("item", rec.Name), zap.Error(err))
		return Outcome{Command: CmdCamp, Message: fmt.Sprintf("cannot camp %s: %v", rec.Name, err), Err: err}
	}
	out := Outcome{Command: CmdCamp, Message: fmt.Sprintf("moved %s to camp", rec.Name)}
	if m.journal != nil {
		if err := m.journal.Record(model.ActionCamp, rec); err != nil {
			m.logger.Warn("history write failed", zap.String("item", rec.Name), zap.Error(err))
			out.Err = err
		}
	}
	return out
}

func (m *Manager) describeCurrent() string {
	rec, ok := m.Current()
	if !ok {
		return "inventory is empty"
	}
	return fmt.Sprintf("[%d/%d] %s (%.2f)", m.cursor+1, m.inv.Len(), orNone(rec.Name), rec.Weight)
}

func menu() string {
	names := make([]string, len(Commands))
	for i, c := range Commands {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

func orNone(s string) string {
	if s == "" {
		return inventory.NoneMarker
	}
	return s
}
