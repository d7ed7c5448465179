// Package git acquires the package family's sources with the git client.
package git

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/dcmget/internal/core/domain"
	"go.trai.ch/dcmget/internal/core/ports"
	"go.trai.ch/zerr"
)

// Acquirer implements ports.SourceAcquirer.
type Acquirer struct {
	executor ports.Executor
	url      string
}

// NewAcquirer creates an Acquirer cloning the fixed upstream repository.
func NewAcquirer(executor ports.Executor) *Acquirer {
	return &Acquirer{
		executor: executor,
		url:      domain.RepositoryURL,
	}
}

// Clone prepares parent, removes any tree left by an earlier run and clones
// the repository into parent/dcm4che with parent as working directory.
func (a *Acquirer) Clone(
	ctx context.Context,
	git domain.ExecutableLocation,
	parent string,
) (domain.WorkingTree, error) {
	if err := os.MkdirAll(parent, domain.DirPerm); err != nil {
		return domain.WorkingTree{}, zerr.With(zerr.Wrap(domain.ErrWorkingTreeCreateFailed, err.Error()), "path", parent)
	}

	tree := domain.WorkingTree{Path: filepath.Join(parent, domain.SourceDirName)}
	if err := os.RemoveAll(tree.Path); err != nil {
		return domain.WorkingTree{}, zerr.With(zerr.Wrap(domain.ErrWorkingTreeCreateFailed, err.Error()), "path", tree.Path)
	}

	out, err := a.executor.Execute(ctx, &domain.Command{
		Name: domain.ToolGit,
		Path: git.Path,
		Args: []string{"clone", a.url, domain.SourceDirName},
		Dir:  parent,
	})
	if err != nil {
		return domain.WorkingTree{}, zerr.With(zerr.Wrap(domain.ErrCloneFailed, err.Error()), "url", a.url)
	}
	if !out.Success() {
		return domain.WorkingTree{}, zerr.With(zerr.With(
			zerr.Wrap(domain.ErrCloneFailed, "git clone exited with non-zero status"),
			"url", a.url), "exit_code", out.ExitCode)
	}

	return tree, nil
}

// Checkout checks out version inside tree.
func (a *Acquirer) Checkout(
	ctx context.Context,
	git domain.ExecutableLocation,
	tree domain.WorkingTree,
	version domain.PackageVersion,
) error {
	out, err := a.executor.Execute(ctx, &domain.Command{
		Name: domain.ToolGit,
		Path: git.Path,
		Args: []string{"checkout", version.String()},
		Dir:  tree.Path,
	})
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrCheckoutFailed, err.Error()), "version", version.String())
	}
	if !out.Success() {
		return zerr.With(zerr.With(
			zerr.Wrap(domain.ErrCheckoutFailed, "git checkout exited with non-zero status"),
			"version", version.String()), "exit_code", out.ExitCode)
	}
	return nil
}
