package manage

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Command is a canonical management command.
type Command string

const (
	CmdNext     Command = "next"
	CmdPrevious Command = "previous"
	CmdUse      Command = "use"
	CmdCamp     Command = "camp"
	CmdStatus   Command = "status"
	CmdExit     Command = "exit"
)

// Commands lists the canonical commands in menu order.
var Commands = []Command{CmdNext, CmdPrevious, CmdUse, CmdCamp, CmdStatus, CmdExit}

var aliases = map[string]Command{
	"next":     CmdNext,
	"n":        CmdNext,
	"previous": CmdPrevious,
	"prev":     CmdPrevious,
	"p":        CmdPrevious,
	"use":      CmdUse,
	"u":        CmdUse,
	"camp":     CmdCamp,
	"c":        CmdCamp,
	"status":   CmdStatus,
	"s":        CmdStatus,
	"exit":     CmdExit,
	"quit":     CmdExit,
	"q":        CmdExit,
}

// Lookup resolves raw input to a command. Matching ignores case and
// surrounding whitespace; only the first word is considered.
func Lookup(raw string) (Command, bool) {
	word := firstWord(raw)
	cmd, ok := aliases[word]
	return cmd, ok
}

// Suggest returns the closest canonical command to raw, if it is near
// enough to be a typo.
func Suggest(raw string) (Command, bool) {
	word := firstWord(raw)
	if len(word) < 3 {
		return "", false
	}
	best, bestDist := Command(""), -1
	for _, cmd := range Commands {
		d := levenshtein.ComputeDistance(word, string(cmd))
		if d > levenshteinLimit(len(cmd)) {
			continue
		}
		if bestDist < 0 || d < bestDist {
			best, bestDist = cmd, d
		}
	}
	return best, bestDist >= 0
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func firstWord(raw string) string {
	fields := strings.Fields(strings.ToLower(raw))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
