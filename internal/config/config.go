// Package config loads the edit-rule file consumed by the palette builder.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"repalette/internal/palette"
	"repalette/internal/util"
)

// DefaultFile is the rule file looked up when --conf is not given.
const DefaultFile = "config.toml"

// rule is the on-disk shape of one edit record. Value is a pointer so
// an absent field is distinguishable from an explicit 0.
type rule struct {
	Variable string   `toml:"variable"`
	Value    *float64 `toml:"value"`
	Mode     string   `toml:"type"`
	Name     string   `toml:"name"`
	Accent   *bool    `toml:"accent"`
}

// ruleFile is the full on-disk config shape.
type ruleFile struct {
	Dark  []rule `toml:"dark"`
	Light []rule `toml:"light"`
}

// Load reads an edit-rule file into the two rule lists. Both the "dark"
// and "light" keys must be present, though either list may be empty, and
// every rule needs its 'variable' and 'value' fields. Rule modes and
// channels are not validated here; bad ones surface during the palette
// build, when the first matching color hits them.
func Load(path string) (palette.RuleSet, error) {
	var file ruleFile

	meta, err := toml.DecodeFile(path, &file)
	if err != nil {
		if os.IsNotExist(err) {
			return palette.RuleSet{}, util.ConfigNotFoundError(path, err)
		}
		return palette.RuleSet{}, util.ConfigParseError(path, err)
	}

	for _, key := range []string{"dark", "light"} {
		if !meta.IsDefined(key) {
			return palette.RuleSet{}, util.ConfigKeyMissingError(key, path)
		}
	}

	dark, err := toEdits("dark", file.Dark, path)
	if err != nil {
		return palette.RuleSet{}, err
	}
	light, err := toEdits("light", file.Light, path)
	if err != nil {
		return palette.RuleSet{}, err
	}

	return palette.RuleSet{Dark: dark, Light: light}, nil
}

// toEdits checks the required fields of each rule and converts the list
// to the palette's edit type.
func toEdits(key string, rules []rule, path string) ([]palette.Edit, error) {
	edits := make([]palette.Edit, 0, len(rules))
	for i, r := range rules {
		if r.Variable == "" {
			return nil, util.ConfigParseError(path,
				fmt.Errorf("rule %d in %q is missing 'variable'", i+1, key))
		}
		if r.Value == nil {
			return nil, util.ConfigParseError(path,
				fmt.Errorf("rule %d in %q is missing 'value'", i+1, key))
		}
		edits = append(edits, palette.Edit{
			Variable: r.Variable,
			Value:    *r.Value,
			Mode:     r.Mode,
			Name:     r.Name,
			Accent:   r.Accent,
		})
	}
	return edits, nil
}

// sample is the starter rule file written by `repalette init`.
// Top-level keys must come before the [[dark]] tables, so the empty
// light list leads.
const sample = `# repalette edit rules.
#
# Two rule lists: "dark" applies to Frappé, Macchiato and Mocha,
# "light" applies to Latte. Rules run top to bottom; later rules see
# the channel values earlier rules left behind.
#
# Each rule has:
#   variable = "hue" | "saturation" | "lightness"  (or "h", "s", "l")
#   value    = number
#   type     = "value" (default) or "multiply"
#   name     = optional color filter, human name or identifier
#   accent   = optional accent filter
# A filtered rule applies to a color when either filter matches it.

light = []

# Pin every dark accent to the same perceived lightness.
[[dark]]
variable = "lightness"
value = 0.55
accent = true

# Then give blue a little extra punch.
[[dark]]
variable = "saturation"
value = 1.1
type = "multiply"
name = "blue"
`

// WriteSample writes the starter rule file. It refuses to overwrite an
// existing file.
func WriteSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return util.ConfigExistsError(path)
	} else if !os.IsNotExist(err) {
		return err
	}
	return os.WriteFile(path, []byte(sample), 0644)
}
