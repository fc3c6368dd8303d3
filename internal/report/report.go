// Package report persists palette views as TOML and JSON file pairs.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"repalette/internal/palette"
)

// Stems of the three standard report pairs.
const (
	StemOriginal = "palette-original"
	StemCustom   = "palette-custom"
	StemDict     = "palette-dict"
)

// Write persists v twice, as <stem>.toml and <stem>.json. Both encoders
// sort map keys, so the same palette always produces the same bytes.
// Returns the paths written.
func Write(stem string, v any) ([]string, error) {
	tomlPath := stem + ".toml"
	f, err := os.Create(tomlPath)
	if err != nil {
		return nil, err
	}
	if err := toml.NewEncoder(f).Encode(v); err != nil {
		f.Close()
		return nil, fmt.Errorf("encode %s: %w", tomlPath, err)
	}
	if err := f.Close(); err != nil {
		return nil, err
	}

	jsonPath := stem + ".json"
	buf, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", jsonPath, err)
	}
	buf = append(buf, '\n')
	if err := os.WriteFile(jsonPath, buf, 0644); err != nil {
		return nil, err
	}

	return []string{tomlPath, jsonPath}, nil
}

// WriteAll writes the three standard pairs for a built palette under dir:
// the untouched palette, the edited palette, and the original-to-edited
// mapping of the changed colors.
func WriteAll(dir string, p *palette.Palette) ([]string, error) {
	reports := []struct {
		stem string
		view any
	}{
		{StemOriginal, p.Original()},
		{StemCustom, p.Custom()},
		{StemDict, p.Diff()},
	}

	var written []string
	for _, r := range reports {
		files, err := Write(filepath.Join(dir, r.stem), r.view)
		if err != nil {
			return written, err
		}
		written = append(written, files...)
	}
	return written, nil
}
