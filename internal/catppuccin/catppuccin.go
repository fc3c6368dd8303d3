// Package catppuccin embeds the canonical Catppuccin palette: four flavors
// (Latte, Frappé, Macchiato, Mocha), each with the same 26 colors in the
// same order. Values match the published palette at catppuccin.com.
package catppuccin

// Color is one palette entry of a flavor.
type Color struct {
	Name       string // human name, e.g. "Rosewater", "Surface 0"
	Identifier string // stable identifier, e.g. "rosewater", "surface0"
	Hex        string // lowercase #rrggbb
	Accent     bool
}

// Flavor is one of the four palette variants.
type Flavor struct {
	Name       string // human name, e.g. "Frappé"
	Identifier string // stable identifier, e.g. "frappe"
	Dark       bool
	Colors     []Color
}

// The 26 color slots shared by every flavor, in palette order.
// The first accentCount entries are accents, the rest are neutrals.
var slots = []struct {
	identifier string
	name       string
}{
	{"rosewater", "Rosewater"},
	{"flamingo", "Flamingo"},
	{"pink", "Pink"},
	{"mauve", "Mauve"},
	{"red", "Red"},
	{"maroon", "Maroon"},
	{"peach", "Peach"},
	{"yellow", "Yellow"},
	{"green", "Green"},
	{"teal", "Teal"},
	{"sky", "Sky"},
	{"sapphire", "Sapphire"},
	{"blue", "Blue"},
	{"lavender", "Lavender"},
	{"text", "Text"},
	{"subtext1", "Subtext 1"},
	{"subtext0", "Subtext 0"},
	{"overlay2", "Overlay 2"},
	{"overlay1", "Overlay 1"},
	{"overlay0", "Overlay 0"},
	{"surface2", "Surface 2"},
	{"surface1", "Surface 1"},
	{"surface0", "Surface 0"},
	{"base", "Base"},
	{"mantle", "Mantle"},
	{"crust", "Crust"},
}

const accentCount = 14

var latteHex = []string{
	"#dc8a78", "#dd7878", "#ea76cb", "#8839ef", "#d20f39", "#e64553",
	"#fe640b", "#df8e1d", "#40a02b", "#179299", "#04a5e5", "#209fb5",
	"#1e66f5", "#7287fd", "#4c4f69", "#5c5f77", "#6c6f85", "#7c7f93",
	"#8c8fa1", "#9ca0b0", "#acb0be", "#bcc0cc", "#ccd0da", "#eff1f5",
	"#e6e9ef", "#dce0e8",
}

var frappeHex = []string{
	"#f2d5cf", "#eebebe", "#f4b8e4", "#ca9ee6", "#e78284", "#ea999c",
	"#ef9f76", "#e5c890", "#a6d189", "#81c8be", "#99d1db", "#85c1dc",
	"#8caaee", "#babbf1", "#c6d0f5", "#b5bfe2", "#a5adce", "#949cbb",
	"#838ba7", "#737994", "#626880", "#51576d", "#414559", "#303446",
	"#292c3c", "#232634",
}

var macchiatoHex = []string{
	"#f4dbd6", "#f0c6c6", "#f5bde6", "#c6a0f6", "#ed8796", "#ee99a0",
	"#f5a97f", "#eed49f", "#a6da95", "#8bd5ca", "#91d7e3", "#7dc4e4",
	"#8aadf4", "#b7bdf8", "#cad3f5", "#b8c0e0", "#a5adcb", "#939ab7",
	"#8087a2", "#6e738d", "#5b6078", "#494d64", "#363a4f", "#24273a",
	"#1e2030", "#181926",
}

var mochaHex = []string{
	"#f5e0dc", "#f2cdcd", "#f5c2e7", "#cba6f7", "#f38ba8", "#eba0ac",
	"#fab387", "#f9e2af", "#a6e3a1", "#94e2d5", "#89dceb", "#74c7ec",
	"#89b4fa", "#b4befe", "#cdd6f4", "#bac2de", "#a6adc8", "#9399b2",
	"#7f849c", "#6c7086", "#585b70", "#45475a", "#313244", "#1e1e2e",
	"#181825", "#11111b",
}

func flavor(name, identifier string, dark bool, hexes []string) Flavor {
	colors := make([]Color, len(slots))
	for i, s := range slots {
		colors[i] = Color{
			Name:       s.name,
			Identifier: s.identifier,
			Hex:        hexes[i],
			Accent:     i < accentCount,
		}
	}
	return Flavor{Name: name, Identifier: identifier, Dark: dark, Colors: colors}
}

// Palette returns the four flavors in palette order (Latte first, then the
// dark flavors Frappé, Macchiato, Mocha). Each call returns a fresh copy, so
// callers may not corrupt the embedded data.
func Palette() []Flavor {
	return []Flavor{
		flavor("Latte", "latte", false, latteHex),
		flavor("Frappé", "frappe", true, frappeHex),
		flavor("Macchiato", "macchiato", true, macchiatoHex),
		flavor("Mocha", "mocha", true, mochaHex),
	}
}
