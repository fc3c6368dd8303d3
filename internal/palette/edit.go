// Package palette implements the edit engine: declarative rules that
// rewrite perceptual channels of Catppuccin colors, and the edited
// palette model built by running them.
package palette

import (
	"fmt"

	"repalette/internal/util"
)

// Rule application modes as they appear in the config file.
// An empty mode means ModeValue.
const (
	ModeValue    = "value"
	ModeMultiply = "multiply"
)

// Edit is one declarative transform of one perceptual channel.
// Name and Accent are optional filters; a rule with neither set applies
// to every color. When filters are set they combine with OR: the rule
// applies as soon as either one matches.
type Edit struct {
	Variable string
	Value    float64
	Mode     string
	Name     string
	Accent   *bool
}

// Apply returns the channel value this edit produces from the current one.
// Mode validity is checked here, not at config load time.
func (e Edit) Apply(current float64) (float64, error) {
	switch e.Mode {
	case "", ModeValue:
		return e.Value, nil
	case ModeMultiply:
		return current * e.Value, nil
	default:
		return 0, fmt.Errorf("%w: %q", util.ErrInvalidRuleMode, e.Mode)
	}
}

// Matches reports whether this edit applies to the given dataset color.
// The name filter accepts either the human name or the identifier.
func (e Edit) Matches(name, identifier string, accent bool) bool {
	if e.Name == "" && e.Accent == nil {
		return true
	}
	if e.Name != "" && (e.Name == name || e.Name == identifier) {
		return true
	}
	return e.Accent != nil && *e.Accent == accent
}

// RuleSet holds the two rule lists a config file defines. A flavor's
// dark flag picks which list applies to all of its colors.
type RuleSet struct {
	Dark  []Edit
	Light []Edit
}

// For returns the rule list for a dark or light flavor.
func (r RuleSet) For(dark bool) []Edit {
	if dark {
		return r.Dark
	}
	return r.Light
}
