package inventory

import (
	"fmt"
	"io"
	"strings"
)

// NoneMarker stands in for absent text in reports.
const NoneMarker = "none"

// Report renders the inventory as deterministic text.
func (inv *Inventory) Report() string {
	var b strings.Builder
	_ = inv.WriteReport(&b)
	return b.String()
}

// WriteReport writes the listing of every record followed by the totals.
func (inv *Inventory) WriteReport(w io.Writer) error {
	var b strings.Builder
	b.WriteString("Inventory:\n")
	for i, rec := range inv.items {
		fmt.Fprintf(&b, "Item %d:\n", i+1)
		fmt.Fprintf(&b, "  Name: %s\n", orNone(rec.Name))
		fmt.Fprintf(&b, "  Index: %s\n", orNone(rec.Index))
		fmt.Fprintf(&b, "  Weight: %.2f\n", rec.Weight)
		fmt.Fprintf(&b, "  URL: %s\n", orNone(rec.URL))
		fmt.Fprintf(&b, "  Quantity: %d\n", rec.Quantity)
		fmt.Fprintf(&b, "  Description: %s\n", orNone(rec.Description))
		fmt.Fprintf(&b, "  Cost: %s\n", orNone(rec.Cost))
	}
	fmt.Fprintf(&b, "Total Weight: %.2f\n", inv.currentWeight)
	fmt.Fprintf(&b, "Max Weight: %.2f\n", inv.maxWeight)
	fmt.Fprintf(&b, "Coins: %s\n", inv.purse)
	fmt.Fprintf(&b, "Camp File: %s\n", orNone(inv.campFile))
	_, err := io.WriteString(w, b.String())
	return err
}

// StatusLine summarises encumbrance for the end of a report.
func (inv *Inventory) StatusLine() string {
	if inv.IsEncumbered() {
		return fmt.Sprintf("Status: encumbered (%.2f / %.2f)", inv.currentWeight, inv.maxWeight)
	}
	return "Status: unencumbered"
}

func orNone(s string) string {
	if s == "" {
		return NoneMarker
	}
	return s
}
