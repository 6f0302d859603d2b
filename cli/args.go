// Package cli scans the packmule command line. The scan is tolerant: a
// flag missing its value is dropped, unknown flags are collected rather than
// rejected, and numeric values that do not parse become zero.
package cli

import (
	"strings"

	"github.com/kasuganosora/packmule/equipment"
)

// Options is the scanned command line.
type Options struct {
	Sources    []string // equipment sources in argv order
	MaxWeight  *float64 // -w
	Money      []string // -m, applied in order
	CampFile   *string  // -c
	ConfigPath string   // --config
	Help       bool     // -h, --help
	Unknown    []string // unrecognized flags, skipped
	Dropped    []string // flags given without a value
}

// ParseArgs scans args (without the program name).
func ParseArgs(args []string) Options {
	var opts Options
	positionalOnly := false
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if positionalOnly || !isFlag(arg) {
			opts.Sources = append(opts.Sources, arg)
			continue
		}

		switch arg {
		case "--":
			positionalOnly = true
			continue
		case "-h", "--help":
			opts.Help = true
			continue
		case "-w", "-m", "-c", "--config":
		default:
			opts.Unknown = append(opts.Unknown, arg)
			continue
		}

		if i+1 >= len(args) {
			opts.Dropped = append(opts.Dropped, arg)
			continue
		}
		i++
		val := args[i]
		switch arg {
		case "-w":
			w := equipment.ParseFloat(val)
			opts.MaxWeight = &w
		case "-m":
			opts.Money = append(opts.Money, val)
		case "-c":
			opts.CampFile = &val
		case "--config":
			opts.ConfigPath = val
		}
	}
	return opts
}

func isFlag(arg string) bool {
	return len(arg) > 1 && strings.HasPrefix(arg, "-")
}

// Usage is the help text for the command line.
const Usage = `Usage:
  packmule [flags] [source ...]
  packmule manage [flags] [source ...]

Sources are equipment files read in order. "backpack.json" is built in.

Flags:
  -w <number>     maximum carried weight
  -m "<coins>"    coin purse, e.g. "3c 5s 10g" (tags c s e g p)
  -c <path>       camp file that stashed items are appended to
  --config <path> YAML configuration file
  -h, --help      show this help
`
