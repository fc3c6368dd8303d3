// Package rewrite substitutes edited palette colors into text files.
package rewrite

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"repalette/internal/palette"
	"repalette/internal/util"
)

// DestSuffix is appended to the source stem when no destination is given.
const DestSuffix = "-replaced"

// Pair maps one original hex to its edited replacement.
type Pair struct {
	Original string
	Custom   string
}

// FromPalette flattens every flavor's diff view into one ordered pair
// list: flavor order, then color order, duplicate originals merged.
func FromPalette(p *palette.Palette) []Pair {
	var pairs []Pair
	for _, f := range p.Flavors {
		for _, c := range f.Colors {
			if c.Changed {
				pairs = append(pairs, Pair{Original: c.Original, Custom: c.Custom})
			}
		}
	}
	return Merge(pairs)
}

// Merge collapses duplicate originals the way repeated map inserts would:
// the first occurrence keeps its position, the last one keeps its value.
func Merge(pairs []Pair) []Pair {
	merged := make([]Pair, 0, len(pairs))
	index := make(map[string]int, len(pairs))
	for _, p := range pairs {
		if i, ok := index[p.Original]; ok {
			merged[i].Custom = p.Custom
			continue
		}
		index[p.Original] = len(merged)
		merged = append(merged, p)
	}
	return merged
}

// Apply rewrites text by replacing every occurrence of each pair's
// original with its custom value, one pair after another. Each pair sees
// the text the previous one produced, so replacements cascade when one
// pair's output is a later pair's input.
func Apply(text string, pairs []Pair) string {
	for _, p := range pairs {
		text = strings.ReplaceAll(text, p.Original, p.Custom)
	}
	return text
}

// Dest returns the substitution output path: dst when given, otherwise
// the source path with the suffix appended to its stem.
func Dest(src, dst string) string {
	if dst != "" {
		return dst
	}
	ext := filepath.Ext(src)
	if filepath.Base(src) == ext {
		// dotfiles like .env have no separate extension
		ext = ""
	}
	return strings.TrimSuffix(src, ext) + DestSuffix + ext
}

// CheckDest fails when the destination already exists. An existing file
// is never overwritten.
func CheckDest(path string) error {
	if _, err := os.Stat(path); err == nil {
		return util.DestinationExistsError(path)
	} else if !os.IsNotExist(err) {
		return err
	}
	return nil
}

// File substitutes pairs into the source file and writes the result to
// the destination, returning the path written. The destination check
// runs before the source is read; the source is never modified.
func File(src, dst string, pairs []Pair) (string, error) {
	out := Dest(src, dst)
	if err := CheckDest(out); err != nil {
		return "", err
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", src, err)
	}

	text := Apply(string(data), pairs)
	if err := os.WriteFile(out, []byte(text), 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", out, err)
	}
	return out, nil
}
