package palette

import (
	"errors"
	"reflect"
	"testing"

	"repalette/internal/catppuccin"
	"repalette/internal/util"
)

// fixture: one dark and one light flavor with two colors each
func testFlavors() []catppuccin.Flavor {
	return []catppuccin.Flavor{
		{
			Name: "Dusk", Identifier: "dusk", Dark: true,
			Colors: []catppuccin.Color{
				{Name: "Base", Identifier: "base", Hex: "#1e1e2e", Accent: true},
				{Name: "Text", Identifier: "text", Hex: "#cdd6f4", Accent: false},
			},
		},
		{
			Name: "Dawn", Identifier: "dawn", Dark: false,
			Colors: []catppuccin.Color{
				{Name: "Base", Identifier: "base", Hex: "#eff1f5", Accent: true},
				{Name: "Text", Identifier: "text", Hex: "#4c4f69", Accent: false},
			},
		},
	}
}

func TestBuild_EndToEnd(t *testing.T) {
	rules := RuleSet{
		Dark:  []Edit{{Variable: "lightness", Value: 0.5, Mode: ModeValue, Accent: accent(true)}},
		Light: []Edit{},
	}

	p, err := Build(rules, testFlavors())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dusk, ok := p.Flavor("dusk")
	if !ok {
		t.Fatal("missing dusk flavor")
	}

	base := dusk.Colors[0]
	if base.Custom == "#1e1e2e" {
		t.Fatal("accent color must change when lightness is forced to 0.5")
	}
	if !base.Changed {
		t.Fatal("accent color must be flagged as changed")
	}
	if base.Original != "#1e1e2e" {
		t.Fatalf("original hex was mutated: %q", base.Original)
	}

	text := dusk.Colors[1]
	if text.Custom != "#cdd6f4" {
		t.Fatalf("non-accent color must pass through, got %q", text.Custom)
	}
	if text.Changed {
		t.Fatal("non-accent color must not be flagged as changed")
	}
}

func TestBuild_PicksRuleListPerFlavor(t *testing.T) {
	rules := RuleSet{
		Dark:  []Edit{{Variable: "lightness", Value: 0.5}},
		Light: []Edit{},
	}

	p, err := Build(rules, testFlavors())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dawn, _ := p.Flavor("dawn")
	for _, c := range dawn.Colors {
		if c.Changed || c.Custom != c.Original {
			t.Fatalf("light flavor with empty rules edited %s: %q -> %q", c.Name, c.Original, c.Custom)
		}
	}

	dusk, _ := p.Flavor("dusk")
	for _, c := range dusk.Colors {
		if !c.Changed {
			t.Fatalf("dark flavor rule skipped %s", c.Name)
		}
	}
}

func TestBuild_KeepsFlavorOrder(t *testing.T) {
	p, err := Build(RuleSet{Dark: []Edit{}, Light: []Edit{}}, testFlavors())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Flavors) != 2 || p.Flavors[0].Name != "dusk" || p.Flavors[1].Name != "dawn" {
		t.Fatalf("flavor order not preserved: %+v", p.Flavors)
	}
}

func TestBuild_EmptyRulesRoundTrip(t *testing.T) {
	p, err := Build(RuleSet{Dark: []Edit{}, Light: []Edit{}}, catppuccin.Palette())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, f := range p.Flavors {
		if len(f.Diff()) != 0 {
			t.Fatalf("flavor %s: empty rules produced a non-empty diff", f.Name)
		}
		for _, c := range f.Colors {
			if c.Custom != c.Original {
				t.Fatalf("flavor %s, color %s: %q != %q", f.Name, c.Name, c.Custom, c.Original)
			}
			if c.Changed {
				t.Fatalf("flavor %s, color %s: flagged changed without edits", f.Name, c.Name)
			}
		}
	}
}

func TestBuild_Deterministic(t *testing.T) {
	rules := RuleSet{
		Dark:  []Edit{{Variable: "lightness", Value: 1.1, Mode: ModeMultiply}},
		Light: []Edit{{Variable: "saturation", Value: 0.9, Mode: ModeMultiply}},
	}

	a, err := Build(rules, catppuccin.Palette())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Build(rules, catppuccin.Palette())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(a, b) {
		t.Fatal("two builds from the same inputs differ")
	}
	if !reflect.DeepEqual(a.Custom(), b.Custom()) {
		t.Fatal("custom views differ between builds")
	}
	if !reflect.DeepEqual(a.Diff(), b.Diff()) {
		t.Fatal("diff views differ between builds")
	}
}

func TestBuild_AbortsOnBadRule(t *testing.T) {
	rules := RuleSet{
		Dark:  []Edit{{Variable: "chroma", Value: 0.5}},
		Light: []Edit{},
	}

	p, err := Build(rules, testFlavors())
	if err == nil {
		t.Fatal("expected an error for unknown channel")
	}
	if !errors.Is(err, util.ErrUnknownChannel) {
		t.Fatalf("expected ErrUnknownChannel, got %v", err)
	}
	if p != nil {
		t.Fatal("no partial palette may escape a failed build")
	}
}

func TestFlavor_DiffMinimality(t *testing.T) {
	rules := RuleSet{
		Dark:  []Edit{{Variable: "lightness", Value: 0.5, Accent: accent(true)}},
		Light: []Edit{},
	}

	p, err := Build(rules, catppuccin.Palette())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, f := range p.Flavors {
		for orig, custom := range f.Diff() {
			if orig == custom {
				t.Fatalf("flavor %s: diff contains an unchanged entry %q", f.Name, orig)
			}
		}
	}
}

func TestPalette_Views(t *testing.T) {
	rules := RuleSet{
		Dark:  []Edit{{Variable: "lightness", Value: 0.5, Accent: accent(true)}},
		Light: []Edit{},
	}

	p, err := Build(rules, testFlavors())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	orig := p.Original()
	if orig["dusk"]["base"] != "#1e1e2e" {
		t.Fatalf("original view wrong: %q", orig["dusk"]["base"])
	}
	if orig["dawn"]["text"] != "#4c4f69" {
		t.Fatalf("original view wrong: %q", orig["dawn"]["text"])
	}

	custom := p.Custom()
	if custom["dusk"]["base"] == "#1e1e2e" {
		t.Fatal("custom view must hold the edited hex")
	}
	if custom["dusk"]["text"] != "#cdd6f4" {
		t.Fatalf("custom view must keep untouched colors: %q", custom["dusk"]["text"])
	}

	diff := p.Diff()
	if len(diff["dusk"]) != 1 {
		t.Fatalf("dusk diff size = %d, want 1", len(diff["dusk"]))
	}
	if got, ok := diff["dusk"]["#1e1e2e"]; !ok || got != custom["dusk"]["base"] {
		t.Fatalf("diff must map original to custom, got %q", got)
	}
	if len(diff["dawn"]) != 0 {
		t.Fatalf("dawn diff must be empty, got %v", diff["dawn"])
	}
}

func TestPalette_FlavorLookup(t *testing.T) {
	p, err := Build(RuleSet{Dark: []Edit{}, Light: []Edit{}}, testFlavors())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := p.Flavor("dusk"); !ok {
		t.Fatal("dusk must be found")
	}
	if _, ok := p.Flavor("espresso"); ok {
		t.Fatal("unknown flavor must not be found")
	}
}

func TestPalette_Changed(t *testing.T) {
	rules := RuleSet{
		Dark:  []Edit{{Variable: "lightness", Value: 0.5, Accent: accent(true)}},
		Light: []Edit{},
	}

	p, err := Build(rules, testFlavors())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := p.Changed(); got != 1 {
		t.Fatalf("Changed() = %d, want 1", got)
	}
}
