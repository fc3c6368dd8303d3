package cli

import (
	"github.com/spf13/cobra"

	"repalette/internal/catppuccin"
	"repalette/internal/config"
	"repalette/internal/palette"
)

// buildPalette loads the rule file named by --conf and builds the edited
// palette from the embedded dataset. Every command that needs the
// palette goes through here.
func buildPalette(cmd *cobra.Command) (*palette.Palette, error) {
	conf, _ := cmd.Flags().GetString("conf")

	rules, err := config.Load(conf)
	if err != nil {
		return nil, err
	}

	return palette.Build(rules, catppuccin.Palette())
}
