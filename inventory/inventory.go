// Package inventory aggregates parsed equipment into a carried load with
// running weight and a coin purse.
package inventory

import (
	"iter"

	"github.com/kasuganosora/packmule/equipment"
)

// Inventory is the ordered set of carried records plus totals.
// It is owned by a single goroutine and is not safe for concurrent use.
type Inventory struct {
	items         []equipment.Record
	maxWeight     float64
	currentWeight float64
	purse         Purse
	campFile      string
}

// New returns an empty inventory.
func New() *Inventory {
	return &Inventory{}
}

// Add appends rec and adds its weight to the running total. Exceeding the
// maximum weight is allowed; it only shows up in IsEncumbered.
func (inv *Inventory) Add(rec equipment.Record) {
	inv.items = append(inv.items, rec)
	inv.currentWeight += rec.Weight
}

// Len is the number of records carried.
func (inv *Inventory) Len() int { return len(inv.items) }

// At returns the record at position i (0-based).
func (inv *Inventory) At(i int) (equipment.Record, bool) {
	if i < 0 || i >= len(inv.items) {
		return equipment.Record{}, false
	}
	return inv.items[i], true
}

// Items iterates records in insertion order.
func (inv *Inventory) Items() iter.Seq2[int, equipment.Record] {
	return func(yield func(int, equipment.Record) bool) {
		for i, rec := range inv.items {
			if !yield(i, rec) {
				return
			}
		}
	}
}

func (inv *Inventory) CurrentWeight() float64 { return inv.currentWeight }
func (inv *Inventory) MaxWeight() float64     { return inv.maxWeight }
func (inv *Inventory) CampFile() string       { return inv.campFile }
func (inv *Inventory) Purse() Purse           { return inv.purse }

// SetMaxWeight sets the carrying capacity. No validation is applied.
func (inv *Inventory) SetMaxWeight(w float64) { inv.maxWeight = w }

// SetCampFile sets the path items are stashed to.
func (inv *Inventory) SetCampFile(path string) { inv.campFile = path }

// ApplyMoney updates the purse from a coin spec such as "3c 5g".
func (inv *Inventory) ApplyMoney(spec string) {
	inv.purse.Apply(spec)
}

// IsEncumbered reports whether the load has reached capacity.
// A capacity of zero or less means no limit is configured, so it never
// reports true.
func (inv *Inventory) IsEncumbered() bool {
	if inv.maxWeight <= 0 {
		return false
	}
	return inv.currentWeight/inv.maxWeight >= 1.0
}
