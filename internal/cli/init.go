package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"repalette/internal/config"
	"repalette/internal/ui/styles"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a starter edit-rule file",
		Long: `Write a commented starter rule file to the --conf path
(config.toml by default). Refuses to overwrite an existing file.`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	conf, _ := cmd.Flags().GetString("conf")

	if err := config.WriteSample(conf); err != nil {
		return err
	}

	fmt.Println(styles.SuccessMsg("Wrote " + conf))
	fmt.Println(styles.MutedMsg("Edit the rules, then run 'repalette' to build the reports"))
	return nil
}
