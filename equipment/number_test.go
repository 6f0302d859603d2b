package equipment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFloat(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"10", 10},
		{" 2.5 ", 2.5},
		{"0.25", 0.25},
		{".5", 0.5},
		{"3.", 3},
		{"10lb", 10},
		{"1e2", 100},
		{"1e", 1},
		{"-4", -4},
		{"+4", 4},
		{"abc", 0},
		{"", 0},
		{"-", 0},
		{".", 0},
		{"1e999", 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseFloat(tc.in), "input %q", tc.in)
	}
}

func TestParseWeight_ClampsNegative(t *testing.T) {
	assert.Equal(t, 0.0, ParseWeight("-1.5"))
	assert.Equal(t, 1.5, ParseWeight("1.5"))
}

func TestParseCount(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"3", 3},
		{" 12 ", 12},
		{"3 each", 3},
		{"2.9", 2},
		{"-2", -2},
		{"x", 0},
		{"", 0},
		{"99999999999999999999999", 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseCount(tc.in), "input %q", tc.in)
	}
}
