// Package maven runs build goals against a cloned working tree.
package maven

import (
	"context"

	"go.trai.ch/dcmget/internal/core/domain"
	"go.trai.ch/dcmget/internal/core/ports"
)

const (
	goalInstall = "install"
	goalClean   = "clean"
)

// Invoker implements ports.BuildInvoker.
type Invoker struct {
	executor        ports.Executor
	localRepository string
	batchMode       bool
}

// NewInvoker creates an Invoker that installs into localRepository.
// With batchMode set, mvn runs non-interactively (-B).
func NewInvoker(executor ports.Executor, localRepository string, batchMode bool) *Invoker {
	return &Invoker{
		executor:        executor,
		localRepository: localRepository,
		batchMode:       batchMode,
	}
}

// Install runs the install goal.
func (i *Invoker) Install(
	ctx context.Context,
	mvn domain.ExecutableLocation,
	tree domain.WorkingTree,
) (domain.ProcessOutcome, error) {
	return i.run(ctx, mvn, tree, goalInstall)
}

// Clean runs the clean goal.
func (i *Invoker) Clean(
	ctx context.Context,
	mvn domain.ExecutableLocation,
	tree domain.WorkingTree,
) (domain.ProcessOutcome, error) {
	return i.run(ctx, mvn, tree, goalClean)
}

func (i *Invoker) run(
	ctx context.Context,
	mvn domain.ExecutableLocation,
	tree domain.WorkingTree,
	goal string,
) (domain.ProcessOutcome, error) {
	return i.executor.Execute(ctx, &domain.Command{
		Name: domain.ToolMaven,
		Path: mvn.Path,
		Args: i.args(tree, goal),
		Dir:  tree.Path,
	})
}

func (i *Invoker) args(tree domain.WorkingTree, goal string) []string {
	args := make([]string, 0, 5)
	if i.batchMode {
		args = append(args, "-B")
	}
	args = append(args, "-f", tree.Manifest())
	if i.localRepository != "" {
		args = append(args, "-Dmaven.repo.local="+i.localRepository)
	}
	return append(args, goal)
}
