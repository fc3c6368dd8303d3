// Package palview renders a built palette: plain text tables, JSON,
// raw tab-separated output for piping, and an interactive browser with
// flavor switching, search and yank-to-clipboard.
package palview

import (
	"os"

	"golang.org/x/term"

	"repalette/internal/palette"
	"repalette/internal/ui/styles"
)

// Row is one color of one flavor, flattened for display.
type Row struct {
	Flavor   string `json:"flavor"`
	Name     string `json:"name"`
	Original string `json:"original"`
	Custom   string `json:"custom"`
	Changed  bool   `json:"changed"`
}

// Options controls how the palette is rendered.
type Options struct {
	// JSON outputs the rows as a JSON array of objects.
	JSON bool
	// Raw outputs tab-separated values (for piping).
	Raw bool
	// NoPager forces the plain table even on a TTY.
	NoPager bool
	// ChangedOnly hides colors the rules left untouched.
	ChangedOnly bool
	// Flavor restricts output to one flavor (empty = all).
	Flavor string
}

// Rows flattens the palette into display rows, honoring the flavor and
// changed-only filters. Flavor and color order follow the dataset.
func Rows(p *palette.Palette, opts Options) []Row {
	var rows []Row
	for _, f := range p.Flavors {
		if opts.Flavor != "" && f.Name != opts.Flavor {
			continue
		}
		for _, c := range f.Colors {
			if opts.ChangedOnly && !c.Changed {
				continue
			}
			rows = append(rows, Row{
				Flavor:   f.Name,
				Name:     c.Name,
				Original: c.Original,
				Custom:   c.Custom,
				Changed:  c.Changed,
			})
		}
	}
	return rows
}

// Display picks the right output mode based on options and environment.
// On a TTY without an output flag it launches the interactive browser;
// everywhere else it falls back to the plain table.
func Display(p *palette.Palette, opts Options) error {
	rows := Rows(p, opts)

	if opts.Raw {
		printRaw(rows)
		return nil
	}

	if opts.JSON {
		return printJSON(rows)
	}

	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	if !isTTY || opts.NoPager || styles.IsAccessible() || len(rows) == 0 {
		PrintPlain(rows)
		return nil
	}

	return runBrowser(p, opts)
}
