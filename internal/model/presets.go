package model

import "sort"

// Presets are the built-in upstream sources, keyed by preset name.
var Presets = map[string]Preset{
	"kids4n": {
		Key:     "kids4n",
		Desc:    "Kids 4x4",
		URL:     "https://www.sudokuonline.io/kids/numbers-4-4",
		Letters: false,
	},
	"kids4l": {
		Key:     "kids4l",
		Desc:    "Kids 4x4 with Letters",
		URL:     "https://www.sudokuonline.io/kids/letters-4-4",
		Letters: true,
	},
	"kids6": {
		Key:     "kids6",
		Desc:    "Kids 6x6",
		URL:     "https://www.sudokuonline.io/kids/numbers-6-6",
		Letters: false,
	},
	"kids6l": {
		Key:     "kids6l",
		Desc:    "Kids 6x6 with Letters",
		URL:     "https://www.sudokuonline.io/kids/letters-6-6",
		Letters: true,
	},
	"easy9": {
		Key:  "easy9",
		Desc: "Classic 9x9 (Easy)",
		URL:  "https://www.sudokuonline.io/easy",
	},
	"medium9": {
		Key:  "medium9",
		Desc: "Classic 9x9 (Medium)",
		URL:  "https://www.sudokuonline.io/medium",
	},
	"hard9": {
		Key:  "hard9",
		Desc: "Classic 9x9 (Hard)",
		URL:  "https://www.sudokuonline.io/hard",
	},
	"evil9": {
		Key:  "evil9",
		Desc: "Classic 9x9 (Evil)",
		URL:  "https://www.sudokuonline.io/evil",
	},
}

// PresetKeys returns the preset names in sorted order.
func PresetKeys(presets map[string]Preset) []string {
	keys := make([]string, 0, len(presets))
	for k := range presets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
