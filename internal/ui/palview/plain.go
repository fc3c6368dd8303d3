package palview

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"repalette/internal/ui/styles"
)

var columns = []string{"FLAVOR", "NAME", "ORIGINAL", "CUSTOM", ""}

// printRaw writes tab-separated rows for piping.
func printRaw(rows []Row) {
	for _, r := range rows {
		changed := ""
		if r.Changed {
			changed = "changed"
		}
		fmt.Println(strings.Join([]string{r.Flavor, r.Name, r.Original, r.Custom, changed}, "\t"))
	}
}

// printJSON writes the rows as a pretty-printed JSON array.
func printJSON(rows []Row) error {
	if rows == nil {
		rows = []Row{}
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// PrintPlain prints an aligned table for non-TTY output. Changed rows
// carry a marker and, when colors are on, swatches next to each hex.
func PrintPlain(rows []Row) {
	if len(rows) == 0 {
		fmt.Println("(no colors)")
		return
	}

	widths := make([]int, len(columns))
	for i, name := range columns {
		widths[i] = len(name)
	}
	for _, r := range rows {
		cells := []string{r.Flavor, r.Name, r.Original, r.Custom, styles.SymbolChanged}
		for i, val := range cells {
			if len(val) > widths[i] {
				widths[i] = len(val)
			}
		}
	}

	// Hex columns carry a trailing swatch when colors are on; pad the
	// header and separator of those columns to keep alignment.
	extra := 3
	if styles.NoColor() {
		extra = 0
	}

	for i, name := range columns {
		if i > 0 {
			fmt.Print("  ")
		}
		w := widths[i]
		if i == 2 || i == 3 {
			w += extra
		}
		fmt.Print(styles.PadRight(name, w))
	}
	fmt.Println()

	for i, w := range widths {
		if i > 0 {
			fmt.Print("  ")
		}
		if i == 2 || i == 3 {
			w += extra
		}
		fmt.Print(strings.Repeat("─", w))
	}
	fmt.Println()

	changed := 0
	for _, r := range rows {
		marker := ""
		if r.Changed {
			marker = styles.SymbolChanged
			changed++
		}

		fmt.Print(styles.PadRight(r.Flavor, widths[0]), "  ")
		fmt.Print(styles.PadRight(r.Name, widths[1]), "  ")
		fmt.Print(hexCell(r.Original, widths[2]), "  ")
		fmt.Print(hexCell(r.Custom, widths[3]), "  ")
		fmt.Println(styles.Yellow(marker))
	}

	fmt.Println()
	fmt.Printf("(%d colors, %d changed)\n", len(rows), changed)
}

// hexCell pads a hex value and, with colors on, appends its swatch.
func hexCell(hex string, width int) string {
	cell := styles.PadRight(hex, width)
	if styles.NoColor() {
		return cell
	}
	return cell + " " + styles.Swatch(hex)
}
