package cli

import (
	"github.com/spf13/cobra"

	"repalette/internal/ui/palview"
	"repalette/internal/util"
)

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [flavor]",
		Short: "Browse the edited palette",
		Long: `Show the palette after the edit rules ran over it.

On a terminal this opens an interactive browser with flavor tabs,
search and yank-to-clipboard. Piped output falls back to a plain
table; --json and --raw produce machine-readable forms.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runShow,
	}

	cmd.Flags().Bool("changed", false, "Only show colors the rules changed")
	cmd.Flags().Bool("json", false, "Output colors as a JSON array")
	cmd.Flags().Bool("raw", false, "Output raw tab-separated values (for piping)")
	cmd.Flags().Bool("no-pager", false, "Disable the interactive browser")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	opts := palview.Options{}
	opts.ChangedOnly, _ = cmd.Flags().GetBool("changed")
	opts.JSON, _ = cmd.Flags().GetBool("json")
	opts.Raw, _ = cmd.Flags().GetBool("raw")
	opts.NoPager, _ = cmd.Flags().GetBool("no-pager")

	pal, err := buildPalette(cmd)
	if err != nil {
		return err
	}

	if len(args) > 0 {
		if _, ok := pal.Flavor(args[0]); !ok {
			return util.FlavorNotFoundError(args[0])
		}
		opts.Flavor = args[0]
	}

	return palview.Display(pal, opts)
}
