package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/subsaver-dev/subsaver/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "subsaver",
		Short:   "Find and manage recurring subscription charges",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newDetectCommand())
	rootCmd.AddCommand(newCancelCommand())

	return rootCmd
}
