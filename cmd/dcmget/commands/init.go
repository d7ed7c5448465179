package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/dcmget/internal/app"
	"go.trai.ch/dcmget/internal/core/domain"
)

func (c *CLI) newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [version]",
		Short: "Write a commented dcmget.yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			force, _ := cmd.Flags().GetBool("force")

			return c.app.Init(cmd.Context(), app.InitOptions{
				Path:    configPath,
				Version: domain.PackageVersion(versionArg(args)),
				Force:   force,
			})
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Replace an existing config file")
	return cmd
}
