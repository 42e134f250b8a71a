package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/grind/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Compile if stale and verify under the memory checker",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, _ := cmd.Flags().GetBool("force")
			configFile, _ := cmd.Flags().GetString("config")
			return c.app.Build(cmd.Context(), app.BuildOptions{
				Force:      force,
				ConfigFile: configFile,
			})
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Recompile even if the artifact is up to date")
	return cmd
}
