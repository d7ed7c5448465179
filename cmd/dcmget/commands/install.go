package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/dcmget/internal/app"
	"go.trai.ch/dcmget/internal/core/domain"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install [version]",
		Short: "Clone, build and install a dcm4che version unless it is already installed",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			buildDir, _ := cmd.Flags().GetString("build-dir")
			localRepo, _ := cmd.Flags().GetString("local-repo")
			outputMode, _ := cmd.Flags().GetString("output-mode")
			jsonLogs, _ := cmd.Flags().GetBool("json")
			ci, _ := cmd.Flags().GetBool("ci")

			// --ci is shorthand for --output-mode=pipe
			if ci {
				outputMode = domain.OutputModePipe
			}

			return c.app.Install(cmd.Context(), app.InstallOptions{
				ConfigPath:      configPath,
				Version:         domain.PackageVersion(versionArg(args)),
				BuildDir:        buildDir,
				LocalRepository: localRepo,
				OutputMode:      outputMode,
				JSON:            jsonLogs,
			})
		},
	}
	cmd.Flags().StringP("build-dir", "b", "", "Parent directory of the cloned working tree (default: build)")
	cmd.Flags().String("local-repo", "", "Maven local repository (default: ~/.m2/repository)")
	cmd.Flags().StringP("output-mode", "o", "", "Subprocess output: auto, tty, or pipe")
	cmd.Flags().Bool("json", false, "Write logs as JSON")
	cmd.Flags().Bool("ci", false, "Use pipe output mode (shorthand for --output-mode=pipe)")
	return cmd
}
