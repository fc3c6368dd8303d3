package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"repalette/internal/report"
	"repalette/internal/ui/styles"
	"repalette/internal/util"
)

var (
	// Version information (set at build time)
	Version   = "dev"
	CommitSHA = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "repalette",
	Short: "Edit the Catppuccin palette with perceptual color rules",
	Long: `repalette applies declarative edit rules to the Catppuccin palette.

Rules live in a TOML file with two lists, "dark" and "light", and tweak
one perceptual channel each (hue, saturation or lightness). Running
repalette with no subcommand builds the edited palette and writes three
report pairs: the original palette, the edited palette, and the
original-to-edited mapping of the changed colors.

Use 'repalette replace' to rewrite the colors inside an arbitrary text
file, and 'repalette show' to browse the edited palette.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       Version,
	RunE:          runRoot,
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		// Structured errors carry causes and suggestions
		var rerr *util.Error
		if errors.As(err, &rerr) {
			fmt.Fprintln(os.Stderr, rerr.Format())
		} else {
			fmt.Fprintln(os.Stderr, styles.ErrorMsg(err.Error()))
		}
		return err
	}
	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	out, _ := cmd.Flags().GetString("out")
	verbose, _ := cmd.Flags().GetBool("verbose")

	pal, err := buildPalette(cmd)
	if err != nil {
		return err
	}

	written, err := report.WriteAll(out, pal)
	if err != nil {
		return err
	}

	if verbose {
		for _, path := range written {
			fmt.Println(styles.MutedMsg("wrote " + path))
		}
	}

	fmt.Println(styles.SuccessMsg(fmt.Sprintf("Wrote %d report files (%d colors changed)",
		len(written), pal.Changed())))
	return nil
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringP("conf", "c", "config.toml", "Edit-rule file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	rootCmd.Flags().StringP("out", "o", ".", "Directory for the report files")

	// Version flag template to show more info
	rootCmd.SetVersionTemplate(fmt.Sprintf("repalette version %s\n  commit: %s\n  built:  %s\n", Version, CommitSHA, BuildDate))

	// Set up pre-run to handle global flags
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		noColor, _ := cmd.Flags().GetBool("no-color")
		if noColor {
			styles.SetNoColor(true)
		}
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newInitCmd(),
		newShowCmd(),
		newReplaceCmd(),
		newCompletionCmd(),
	)
}

func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for repalette.

To load completions:

Bash:
  $ source <(repalette completion bash)

Zsh:
  $ repalette completion zsh > "${fpath[1]}/_repalette"

Fish:
  $ repalette completion fish | source

PowerShell:
  PS> repalette completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return rootCmd.GenBashCompletion(os.Stdout)
			case "zsh":
				return rootCmd.GenZshCompletion(os.Stdout)
			case "fish":
				return rootCmd.GenFishCompletion(os.Stdout, true)
			case "powershell":
				return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("repalette version %s\n", Version)
			fmt.Printf("  commit: %s\n", CommitSHA)
			fmt.Printf("  built:  %s\n", BuildDate)
		},
	}
}
