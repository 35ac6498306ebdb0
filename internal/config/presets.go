package config

import "sort"

// Preset is a named sample input line.
type Preset struct {
	Name        string
	Description string
	Input       string
}

var Presets = map[string]Preset{
	"quadratic": {
		Name: "quadratic", Description: "3x^2 - x + 4",
		Input: "3 2 -1 1 4 0",
	},
	"cubic": {
		Name: "cubic", Description: "unit leading term with a dropped zero",
		Input: "1 3 -2 0 0 5",
	},
	"constant": {
		Name: "constant", Description: "negative constant",
		Input: "-2 0",
	},
	"scrambled": {
		Name: "scrambled", Description: "terms given out of order",
		Input: "4 0 -7 5 0.5 2 1 1",
	},
	"laurent": {
		Name: "laurent", Description: "negative exponents",
		Input: "1 2 3 0 -1 -1 2 -3",
	},
	"duplicates": {
		Name: "duplicates", Description: "repeated exponents are not merged",
		Input: "2 2 -1 2 1 0",
	},
}

func GetPreset(name string) (Preset, bool) {
	p, ok := Presets[name]
	return p, ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
