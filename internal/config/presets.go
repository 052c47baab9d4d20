package config

import "sort"

// Presets are sample encodings selectable by name.
var Presets = map[string]string{
	"canonical":  "ABC##DE#G##F###",
	"left-child": "ABC##DEG####F##",
	"balanced":   "ABD##E##CF##G##",
	"single":     "A##",
	"left-chain": "ABCD#####",
	"right-vine": "A#B#C#D##",
	"empty":      "#",
}

func GetPreset(name string) (string, bool) {
	enc, ok := Presets[name]
	return enc, ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
