// Package workflow implements the idempotent acquire, build and install sequence.
package workflow

import (
	"context"
	"slices"
	"time"

	"go.trai.ch/dcmget/internal/core/domain"
	"go.trai.ch/dcmget/internal/core/ports"
	"go.trai.ch/zerr"
)

// Remediation hints printed when a required executable is missing.
var installHints = []struct {
	tool string
	url  string
}{
	{tool: domain.ToolGit, url: "https://git-scm.com"},
	{tool: domain.ToolMaven, url: "http://maven.apache.org"},
}

// Workflow sequences environment validation, the cache check and the four
// subprocess steps. Every step after the cache check is fatal on failure.
type Workflow struct {
	locator  ports.ExecutableLocator
	verifier ports.InstallationVerifier
	acquirer ports.SourceAcquirer
	builder  ports.BuildInvoker
	receipts ports.ReceiptStore
	tracer   ports.Tracer
	logger   ports.Logger
	now      func() time.Time
}

// NewWorkflow creates a new Workflow.
func NewWorkflow(
	locator ports.ExecutableLocator,
	verifier ports.InstallationVerifier,
	acquirer ports.SourceAcquirer,
	builder ports.BuildInvoker,
	receipts ports.ReceiptStore,
	tracer ports.Tracer,
	logger ports.Logger,
) *Workflow {
	return &Workflow{
		locator:  locator,
		verifier: verifier,
		acquirer: acquirer,
		builder:  builder,
		receipts: receipts,
		tracer:   tracer,
		logger:   logger,
		now:      time.Now,
	}
}

// Run executes the workflow for req. The returned report is never nil.
// On failure the error wraps the sentinel of the failing step and carries
// "step" metadata, plus "exit_code" when a subprocess exited non-zero.
func (w *Workflow) Run(ctx context.Context, req domain.Request) (*domain.Report, error) {
	report := &domain.Report{Version: req.Version, StartedAt: w.now()}
	err := w.run(ctx, req, report)
	report.FinishedAt = w.now()
	return report, err
}

func (w *Workflow) run(ctx context.Context, req domain.Request, report *domain.Report) error {
	if req.Version.IsEmpty() {
		report.Fail(domain.StateStart, 0)
		return zerr.With(zerr.Wrap(domain.ErrVersionNotSet, "no version requested"), "step", domain.StateStart.String())
	}

	report.Enter(domain.StateValidatingEnv)
	tools, err := w.validate(report)
	if err != nil {
		return err
	}

	report.Enter(domain.StateCheckingCache)
	if w.verifier.IsInstalled(req.Version) {
		w.logger.Info(domain.PackageName + " " + req.Version.String() + " is already installed.")
		report.Outcome = domain.OutcomeSkipped
		report.Enter(domain.StateDone)
		return nil
	}

	w.logger.Info("installing " + domain.PackageName + " " + req.Version.String() +
		" into " + w.verifier.LocalRepository())

	report.Enter(domain.StateAcquiring)
	err = w.step(ctx, domain.StateAcquiring, report, func(ctx context.Context) error {
		tree, err := w.acquirer.Clone(ctx, tools.Git, req.BuildDir)
		report.WorkingTree = tree
		return err
	})
	if err != nil {
		return err
	}

	report.Enter(domain.StateCheckedOut)
	err = w.step(ctx, domain.StateCheckedOut, report, func(ctx context.Context) error {
		return w.acquirer.Checkout(ctx, tools.Git, report.WorkingTree, req.Version)
	})
	if err != nil {
		return err
	}

	report.Enter(domain.StateInstalling)
	err = w.step(ctx, domain.StateInstalling, report, func(ctx context.Context) error {
		out, err := w.builder.Install(ctx, tools.Maven, report.WorkingTree)
		return buildError(domain.ErrInstallFailed, out, err)
	})
	if err != nil {
		return err
	}

	report.Enter(domain.StateCleaning)
	err = w.step(ctx, domain.StateCleaning, report, func(ctx context.Context) error {
		out, err := w.builder.Clean(ctx, tools.Maven, report.WorkingTree)
		return buildError(domain.ErrCleanFailed, out, err)
	})
	if err != nil {
		return err
	}

	report.Outcome = domain.OutcomeInstalled
	report.Enter(domain.StateDone)
	w.writeReceipt(req, report)
	return nil
}

// validate resolves both executables, logging each result. Both tools are
// always probed so the report lists every missing one.
func (w *Workflow) validate(report *domain.Report) (domain.Toolchain, error) {
	w.logger.Info("validating minimum requirements to install " + domain.PackageName)

	var tools domain.Toolchain
	for _, name := range []string{domain.ToolGit, domain.ToolMaven} {
		loc, err := w.locator.Locate(name)
		if err != nil {
			w.logger.Warn(name + ": not found")
			report.Missing = append(report.Missing, name)
			continue
		}
		w.logger.Info(name + ": found")

		switch name {
		case domain.ToolGit:
			tools.Git = loc
		case domain.ToolMaven:
			tools.Maven = loc
		}
	}

	if len(report.Missing) == 0 {
		return tools, nil
	}

	w.logger.Info("Information on how to install the requirements:")
	for _, hint := range installHints {
		if slices.Contains(report.Missing, hint.tool) {
			w.logger.Info("  " + hint.tool + ": " + hint.url)
		}
	}

	report.Fail(domain.StateValidatingEnv, 0)
	err := zerr.With(zerr.Wrap(domain.ErrMissingRequirements, "required executables not found"),
		"step", domain.StateValidatingEnv.String())
	return tools, zerr.With(err, "missing", report.Missing)
}

// step runs fn inside a span named after state and records a failure on report.
func (w *Workflow) step(
	ctx context.Context,
	state domain.State,
	report *domain.Report,
	fn func(context.Context) error,
) error {
	ctx, span := w.tracer.Start(ctx, state.String())
	defer span.End()
	span.SetAttribute("step.name", state.String())

	err := fn(ctx)
	if err == nil {
		span.SetAttribute("step.exit_code", 0)
		return nil
	}

	code, ok := domain.ExitCode(err)
	if ok {
		span.SetAttribute("step.exit_code", code)
	} else {
		code = -1
	}
	span.RecordError(err)
	report.Fail(state, code)

	return zerr.With(err, "step", state.String())
}

func buildError(sentinel error, out domain.ProcessOutcome, err error) error {
	if err != nil {
		return zerr.Wrap(sentinel, err.Error())
	}
	if !out.Success() {
		return zerr.With(zerr.Wrap(sentinel, "mvn exited with non-zero status"), "exit_code", out.ExitCode)
	}
	return nil
}

// writeReceipt records the installation. Failures only warn: the artifacts
// are already in the local repository.
func (w *Workflow) writeReceipt(req domain.Request, report *domain.Report) {
	digest, err := w.verifier.Digest(req.Version)
	if err != nil {
		w.logger.Warn("could not digest installed manifests: " + err.Error())
	}

	receipt := domain.Receipt{
		Version:         req.Version,
		LocalRepository: w.verifier.LocalRepository(),
		WorkingTree:     report.WorkingTree.Path,
		Modules:         len(domain.Modules()),
		ManifestDigest:  digest,
		InstalledAt:     w.now(),
		Duration:        w.now().Sub(report.StartedAt),
	}
	if err := w.receipts.Put(req.BuildDir, receipt); err != nil {
		w.logger.Warn("could not write install receipt: " + err.Error())
	}
}
