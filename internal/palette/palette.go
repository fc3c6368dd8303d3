package palette

import (
	"fmt"
	"strings"

	"repalette/internal/catppuccin"
)

// Color is one palette entry after its flavor's rule list ran over it.
type Color struct {
	Name     string // stable identifier, e.g. "rosewater"
	Original string // source hex, never mutated
	Custom   string // hex after edits
	Changed  bool
}

// Flavor is one flavor's edited palette, colors in dataset order.
type Flavor struct {
	Name   string
	Colors []Color
}

// Original returns color name → original hex.
func (f Flavor) Original() map[string]string {
	m := make(map[string]string, len(f.Colors))
	for _, c := range f.Colors {
		m[c.Name] = c.Original
	}
	return m
}

// Custom returns color name → edited hex.
func (f Flavor) Custom() map[string]string {
	m := make(map[string]string, len(f.Colors))
	for _, c := range f.Colors {
		m[c.Name] = c.Custom
	}
	return m
}

// Diff returns original hex → edited hex, changed colors only.
func (f Flavor) Diff() map[string]string {
	m := make(map[string]string)
	for _, c := range f.Colors {
		if c.Changed {
			m[c.Original] = c.Custom
		}
	}
	return m
}

// Palette is the full edited palette, flavors in dataset order.
// Built once per invocation and never mutated afterwards.
type Palette struct {
	Flavors []Flavor
}

// Flavor returns the flavor with the given name.
func (p *Palette) Flavor(name string) (Flavor, bool) {
	for _, f := range p.Flavors {
		if f.Name == name {
			return f, true
		}
	}
	return Flavor{}, false
}

// Original returns flavor → color name → original hex.
func (p *Palette) Original() map[string]map[string]string {
	m := make(map[string]map[string]string, len(p.Flavors))
	for _, f := range p.Flavors {
		m[f.Name] = f.Original()
	}
	return m
}

// Custom returns flavor → color name → edited hex.
func (p *Palette) Custom() map[string]map[string]string {
	m := make(map[string]map[string]string, len(p.Flavors))
	for _, f := range p.Flavors {
		m[f.Name] = f.Custom()
	}
	return m
}

// Diff returns flavor → original hex → edited hex, changed colors only.
// Flavors with no changed colors map to an empty table.
func (p *Palette) Diff() map[string]map[string]string {
	m := make(map[string]map[string]string, len(p.Flavors))
	for _, f := range p.Flavors {
		m[f.Name] = f.Diff()
	}
	return m
}

// Changed returns how many colors across all flavors the rules edited.
func (p *Palette) Changed() int {
	n := 0
	for _, f := range p.Flavors {
		for _, c := range f.Colors {
			if c.Changed {
				n++
			}
		}
	}
	return n
}

// Build constructs the edited palette. For every dataset flavor it picks
// the dark or light rule list and runs each color through Transform.
// The build aborts on the first bad rule; no partial palette escapes.
func Build(rules RuleSet, flavors []catppuccin.Flavor) (*Palette, error) {
	p := &Palette{Flavors: make([]Flavor, 0, len(flavors))}
	for _, df := range flavors {
		edits := rules.For(df.Dark)
		pf := Flavor{Name: df.Identifier, Colors: make([]Color, 0, len(df.Colors))}
		for _, dc := range df.Colors {
			custom, err := Transform(dc, edits)
			if err != nil {
				return nil, fmt.Errorf("flavor %s, color %s: %w", df.Identifier, dc.Identifier, err)
			}
			pf.Colors = append(pf.Colors, Color{
				Name:     dc.Identifier,
				Original: dc.Hex,
				Custom:   custom,
				Changed:  !strings.EqualFold(dc.Hex, custom),
			})
		}
		p.Flavors = append(p.Flavors, pf)
	}
	return p, nil
}
