package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/dcmget/internal/app"
	"go.trai.ch/dcmget/internal/core/domain"
)

func (c *CLI) newModulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "modules [version]",
		Short: "List the dcm4che modules and the manifests checked for a version",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			localRepo, _ := cmd.Flags().GetString("local-repo")

			return c.app.Modules(cmd.Context(), cmd.OutOrStdout(), app.ModulesOptions{
				ConfigPath:      configPath,
				Version:         domain.PackageVersion(versionArg(args)),
				LocalRepository: localRepo,
			})
		},
	}
	cmd.Flags().String("local-repo", "", "Maven local repository (default: ~/.m2/repository)")
	return cmd
}
