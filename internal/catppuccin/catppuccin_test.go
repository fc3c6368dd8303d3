package catppuccin

import (
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestPalette_FlavorOrder(t *testing.T) {
	flavors := Palette()

	if len(flavors) != 4 {
		t.Fatalf("expected 4 flavors, got %d", len(flavors))
	}

	want := []string{"latte", "frappe", "macchiato", "mocha"}
	for i, id := range want {
		if flavors[i].Identifier != id {
			t.Fatalf("flavor %d: got %q, want %q", i, flavors[i].Identifier, id)
		}
	}

	if flavors[0].Dark {
		t.Fatal("latte must be the light flavor")
	}
	for _, f := range flavors[1:] {
		if !f.Dark {
			t.Fatalf("flavor %s must be dark", f.Identifier)
		}
	}
}

func TestPalette_ColorSlots(t *testing.T) {
	for _, f := range Palette() {
		if len(f.Colors) != 26 {
			t.Fatalf("flavor %s: expected 26 colors, got %d", f.Identifier, len(f.Colors))
		}

		// Accents come first, neutrals after.
		for i, c := range f.Colors {
			if want := i < 14; c.Accent != want {
				t.Fatalf("flavor %s, color %s: accent = %v, want %v", f.Identifier, c.Identifier, c.Accent, want)
			}
		}

		seen := map[string]bool{}
		for _, c := range f.Colors {
			if seen[c.Identifier] {
				t.Fatalf("flavor %s: duplicate identifier %q", f.Identifier, c.Identifier)
			}
			seen[c.Identifier] = true
		}

		if f.Colors[0].Identifier != "rosewater" || f.Colors[25].Identifier != "crust" {
			t.Fatalf("flavor %s: slot order wrong: first %q, last %q",
				f.Identifier, f.Colors[0].Identifier, f.Colors[25].Identifier)
		}
	}
}

func TestPalette_HexValues(t *testing.T) {
	for _, f := range Palette() {
		for _, c := range f.Colors {
			if len(c.Hex) != 7 || c.Hex[0] != '#' {
				t.Fatalf("%s/%s: hex %q is not #rrggbb", f.Identifier, c.Identifier, c.Hex)
			}
			if c.Hex != strings.ToLower(c.Hex) {
				t.Fatalf("%s/%s: hex %q is not lowercase", f.Identifier, c.Identifier, c.Hex)
			}
			if _, err := colorful.Hex(c.Hex); err != nil {
				t.Fatalf("%s/%s: hex %q does not parse: %v", f.Identifier, c.Identifier, c.Hex, err)
			}
		}
	}
}

func TestPalette_KnownValues(t *testing.T) {
	flavors := Palette()
	mocha := flavors[3]

	if got := mocha.Colors[23]; got.Identifier != "base" || got.Hex != "#1e1e2e" {
		t.Fatalf("mocha base: got %s=%s, want base=#1e1e2e", got.Identifier, got.Hex)
	}
	if got := mocha.Colors[14]; got.Identifier != "text" || got.Hex != "#cdd6f4" {
		t.Fatalf("mocha text: got %s=%s, want text=#cdd6f4", got.Identifier, got.Hex)
	}

	latte := flavors[0]
	if got := latte.Colors[12]; got.Identifier != "blue" || got.Hex != "#1e66f5" {
		t.Fatalf("latte blue: got %s=%s, want blue=#1e66f5", got.Identifier, got.Hex)
	}
}

func TestPalette_ReturnsFreshCopies(t *testing.T) {
	a := Palette()
	a[3].Colors[0].Hex = "#000000"

	b := Palette()
	if b[3].Colors[0].Hex != "#f5e0dc" {
		t.Fatalf("mutation leaked into later calls: got %q", b[3].Colors[0].Hex)
	}
}
