package equipment

// BackpackSource is the reserved source name served from built-in data.
const BackpackSource = "backpack.json"

var builtins = map[string]Record{
	BackpackSource: {
		Name:        "Backpack",
		Index:       "backpack",
		Weight:      5.0,
		URL:         "/api/equipment/backpack",
		Quantity:    1,
		Description: "Standard backpack.",
		Cost:        "2gp",
	},
}

// Builtin returns the fixed record for a reserved source name. The match is
// on the exact source string, so "./backpack.json" is read from disk.
func Builtin(source string) (Record, bool) {
	rec, ok := builtins[source]
	return rec, ok
}
