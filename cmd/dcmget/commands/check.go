package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/dcmget/internal/app"
	"go.trai.ch/dcmget/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [version]",
		Short: "Report whether a dcm4che version is installed",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			localRepo, _ := cmd.Flags().GetString("local-repo")

			res, err := c.app.Check(cmd.Context(), app.CheckOptions{
				ConfigPath:      configPath,
				Version:         domain.PackageVersion(versionArg(args)),
				LocalRepository: localRepo,
			})
			if err != nil {
				return err
			}

			printCheck(cmd.OutOrStdout(), res)
			if !res.Installed {
				return zerr.With(zerr.Wrap(domain.ErrNotInstalled, res.Version.String()),
					"missing", len(res.Missing))
			}
			return nil
		},
	}
	cmd.Flags().String("local-repo", "", "Maven local repository (default: ~/.m2/repository)")
	return cmd
}

func printCheck(w io.Writer, res app.CheckResult) {
	name := domain.PackageName + " " + res.Version.String()
	if res.Installed {
		_, _ = fmt.Fprintf(w, "%s is installed in %s\n", name, res.LocalRepository)
	} else {
		_, _ = fmt.Fprintf(w, "%s is not installed in %s\n", name, res.LocalRepository)
		_, _ = fmt.Fprintf(w, "missing %d of %d modules:\n", len(res.Missing), len(domain.Modules()))
		for _, m := range res.Missing {
			_, _ = fmt.Fprintf(w, "  %s\n", m.ArtifactID())
		}
	}

	if r := res.Receipt; r != nil {
		_, _ = fmt.Fprintf(w, "last installed %s from %s (%d modules, took %s, digest %x)\n",
			r.InstalledAt.Format(time.RFC3339), r.WorkingTree, r.Modules,
			r.Duration.Round(time.Second), r.ManifestDigest)
	}
}
