package inventory

import (
	"fmt"
	"strconv"
	"strings"
)

// Purse holds independent coin counts. Denominations are never converted.
type Purse struct {
	Copper   int
	Silver   int
	Electrum int
	Gold     int
	Platinum int
}

// Apply parses whitespace-separated "<amount><tag>" tokens and sets the
// matching counter. The tag is the first character after the digits, so
// "5g" and "5gp" both set gold. Tokens without leading digits or with an
// unknown tag are ignored. A later token for the same tag replaces the
// earlier amount.
func (p *Purse) Apply(spec string) {
	for _, tok := range strings.Fields(spec) {
		n := 0
		for n < len(tok) && tok[n] >= '0' && tok[n] <= '9' {
			n++
		}
		if n == 0 || n == len(tok) {
			continue
		}
		amount, err := strconv.Atoi(tok[:n])
		if err != nil {
			continue
		}
		if slot := p.slot(tok[n]); slot != nil {
			*slot = amount
		}
	}
}

func (p *Purse) slot(tag byte) *int {
	switch tag {
	case 'c', 'C':
		return &p.Copper
	case 's', 'S':
		return &p.Silver
	case 'e', 'E':
		return &p.Electrum
	case 'g', 'G':
		return &p.Gold
	case 'p', 'P':
		return &p.Platinum
	}
	return nil
}

// String renders the purse in c s e g p order.
func (p Purse) String() string {
	return fmt.Sprintf("%dc %ds %de %dg %dp", p.Copper, p.Silver, p.Electrum, p.Gold, p.Platinum)
}
