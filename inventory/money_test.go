package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPurseApply(t *testing.T) {
	cases := []struct {
		name string
		spec string
		want Purse
	}{
		{"last wins", "3c 5g 5g", Purse{Copper: 3, Gold: 5}},
		{"all tags", "1c 2s 3e 4g 5p", Purse{Copper: 1, Silver: 2, Electrum: 3, Gold: 4, Platinum: 5}},
		{"dnd suffixes", "12gp 4sp 1pp", Purse{Silver: 4, Gold: 12, Platinum: 1}},
		{"upper case", "7G", Purse{Gold: 7}},
		{"unknown tag", "3x 4g", Purse{Gold: 4}},
		{"no digits", "g 5s", Purse{Silver: 5}},
		{"no tag", "10 2c", Purse{Copper: 2}},
		{"extra whitespace", "  2c\t\t3s  ", Purse{Copper: 2, Silver: 3}},
		{"empty", "", Purse{}},
		{"overwrite with zero", "5g 0g", Purse{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var p Purse
			p.Apply(tc.spec)
			assert.Equal(t, tc.want, p)
		})
	}
}

func TestPurseApply_SetsRatherThanAdds(t *testing.T) {
	var p Purse
	p.Apply("10g 3s")
	p.Apply("5g")
	assert.Equal(t, Purse{Silver: 3, Gold: 5}, p)
}

func TestPurseString(t *testing.T) {
	p := Purse{Copper: 1, Silver: 2, Electrum: 3, Gold: 4, Platinum: 5}
	assert.Equal(t, "1c 2s 3e 4g 5p", p.String())
}
