package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"repalette/internal/rewrite"
	"repalette/internal/ui/styles"
)

func newReplaceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replace <src> [dst]",
		Short: "Rewrite a file, substituting edited palette colors",
		Long: `Substitute every changed palette color inside a text file.

Each original hex that the rules changed is replaced with its edited
value, across all flavors. Substitution runs pair by pair in flavor and
color order, each pair seeing the previous pair's output.

When no destination is given, the result lands next to the source with
"-replaced" appended to its stem. An existing destination is never
overwritten.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runReplace,
	}

	cmd.Flags().Bool("dry-run", false, "Print the diff instead of writing the destination")
	cmd.Flags().Int("context", 3, "Context lines in the --dry-run diff")

	return cmd
}

func runReplace(cmd *cobra.Command, args []string) error {
	src := args[0]
	dst := ""
	if len(args) > 1 {
		dst = args[1]
	}
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	contextLines, _ := cmd.Flags().GetInt("context")

	pal, err := buildPalette(cmd)
	if err != nil {
		return err
	}
	pairs := rewrite.FromPalette(pal)

	// An empty diff still resolves and guards the destination and writes
	// an unmodified copy; only the substitution set is empty.
	if len(pairs) == 0 {
		fmt.Println(styles.WarningMsg("No colors changed; the copy will be unmodified"))
	}

	if dryRun {
		data, err := os.ReadFile(src)
		if err != nil {
			return fmt.Errorf("read %s: %w", src, err)
		}
		before := string(data)
		after := rewrite.Apply(before, pairs)

		hunks := rewrite.Hunks(before, after, contextLines)
		if len(hunks) == 0 {
			fmt.Println(styles.MutedMsg("No occurrences of changed colors in " + src))
			return nil
		}
		fmt.Print(rewrite.FormatHunks(src, rewrite.Dest(src, dst), hunks))
		return nil
	}

	out, err := rewrite.File(src, dst, pairs)
	if err != nil {
		return err
	}

	fmt.Println(styles.SuccessMsg(fmt.Sprintf("Wrote %s (%d substitution pairs)", out, len(pairs))))
	return nil
}
