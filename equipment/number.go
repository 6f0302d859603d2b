package equipment

import (
	"strconv"
	"strings"
)

// ParseFloat parses the longest numeric prefix of s, ignoring surrounding
// whitespace. Text with no numeric prefix yields 0.
func ParseFloat(s string) float64 {
	s = strings.TrimSpace(s)
	end := floatPrefix(s)
	if end == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseWeight is ParseFloat clamped to non-negative values.
func ParseWeight(s string) float64 {
	v := ParseFloat(s)
	if v < 0 {
		return 0
	}
	return v
}

// ParseCount parses the longest integer prefix of s. Text with no integer
// prefix, or a value that overflows int, yields 0.
func ParseCount(s string) int {
	s = strings.TrimSpace(s)
	end := signPrefix(s)
	digits := digitRun(s[end:])
	if digits == 0 {
		return 0
	}
	v, err := strconv.Atoi(s[:end+digits])
	if err != nil {
		return 0
	}
	return v
}

// floatPrefix returns the length of the leading [sign]digits[.digits][e[sign]digits]
// run of s, or 0 if s does not start with a number.
func floatPrefix(s string) int {
	i := signPrefix(s)
	intDigits := digitRun(s[i:])
	i += intDigits
	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		fracDigits = digitRun(s[i+1:])
		if fracDigits > 0 || intDigits > 0 {
			i += 1 + fracDigits
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		j += signPrefix(s[j:])
		if exp := digitRun(s[j:]); exp > 0 {
			i = j + exp
		}
	}
	return i
}

func signPrefix(s string) int {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		return 1
	}
	return 0
}

func digitRun(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}
