// Package app implements the application layer for dcmget.
package app

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/dcmget/internal/adapters/detector"
	"go.trai.ch/dcmget/internal/adapters/git"
	"go.trai.ch/dcmget/internal/adapters/m2"
	"go.trai.ch/dcmget/internal/adapters/maven"
	"go.trai.ch/dcmget/internal/adapters/telemetry"
	"go.trai.ch/dcmget/internal/core/domain"
	"go.trai.ch/dcmget/internal/core/ports"
	"go.trai.ch/dcmget/internal/engine/workflow"
	"go.trai.ch/dcmget/internal/ui/style"
	"go.trai.ch/zerr"
)

// tracerName is the instrumentation scope of workflow spans.
const tracerName = "dcmget"

// jsonSetter is implemented by loggers that can switch to JSON output.
type jsonSetter interface {
	SetJSON(enable bool)
}

// ptySetter is implemented by executors that can attach a pseudo-terminal.
type ptySetter interface {
	SetPTY(enable bool)
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	executor     ports.Executor
	locator      ports.ExecutableLocator
	logger       ports.Logger
	store        ports.ReceiptStore
	workDir      string
	detect       func() detector.OutputMode
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	executor ports.Executor,
	locator ports.ExecutableLocator,
	log ports.Logger,
	store ports.ReceiptStore,
) *App {
	return &App{
		configLoader: loader,
		executor:     executor,
		locator:      locator,
		logger:       log,
		store:        store,
		detect:       detector.DetectEnvironment,
	}
}

// WithWorkDir sets the directory configuration and relative paths resolve against.
// The process working directory is used when unset.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// WithDetector replaces terminal detection. This is primarily used for testing.
func (a *App) WithDetector(detect func() detector.OutputMode) *App {
	a.detect = detect
	return a
}

// InstallOptions configuration for the Install method.
// Empty fields keep the configured value.
type InstallOptions struct {
	ConfigPath      string
	Version         domain.PackageVersion
	BuildDir        string
	LocalRepository string
	OutputMode      string
	JSON            bool
}

// Install installs one version of the package family into the local repository,
// or does nothing when it is already installed.
func (a *App) Install(ctx context.Context, opts InstallOptions) error {
	cwd, err := a.cwd()
	if err != nil {
		return err
	}

	cfg, err := a.loadConfig(cwd, opts.ConfigPath)
	if err != nil {
		return err
	}
	applyOverrides(cfg, cwd, opts)

	if opts.JSON || cfg.LogFormat == domain.LogFormatJSON {
		if js, ok := a.logger.(jsonSetter); ok {
			js.SetJSON(true)
		}
	}

	mode, err := detector.ResolveMode(a.detect(), cfg.OutputMode)
	if err != nil {
		return err
	}
	if ps, ok := a.executor.(ptySetter); ok {
		ps.SetPTY(mode == detector.ModeTTY)
	}

	// Spans end through the bridge, which reports each step and its duration.
	shutdown := telemetry.Setup(telemetry.NewBridge(a.logger))
	defer func() {
		_ = shutdown(context.WithoutCancel(ctx))
	}()
	tracer := telemetry.NewOTelTracer(tracerName)

	verifier := m2.NewVerifier(cfg.LocalRepository)
	wf := workflow.NewWorkflow(
		a.locator,
		verifier,
		git.NewAcquirer(a.executor),
		maven.NewInvoker(a.executor, verifier.LocalRepository(), cfg.BatchMode),
		a.store,
		tracer,
		a.logger,
	)

	report, err := wf.Run(ctx, domain.Request{
		Version:  cfg.Version,
		BuildDir: resolvePath(cwd, cfg.BuildDir),
	})
	if err != nil {
		return err
	}

	if report.Outcome == domain.OutcomeInstalled {
		a.logger.Info(style.Check + " installed " + domain.PackageName + " " + report.Version.String() +
			" in " + telemetry.FormatDuration(report.Duration()))
	}
	return nil
}

// CheckOptions configuration for the Check method.
type CheckOptions struct {
	ConfigPath      string
	Version         domain.PackageVersion
	LocalRepository string
}

// CheckResult describes the installation state of one version.
type CheckResult struct {
	Version         domain.PackageVersion
	LocalRepository string
	Installed       bool
	Missing         []domain.Module
	Receipt         *domain.Receipt
}

// Check reports whether a version is installed without running any subprocess.
func (a *App) Check(_ context.Context, opts CheckOptions) (CheckResult, error) {
	cwd, err := a.cwd()
	if err != nil {
		return CheckResult{}, err
	}

	cfg, err := a.loadConfig(cwd, opts.ConfigPath)
	if err != nil {
		return CheckResult{}, err
	}
	applyOverrides(cfg, cwd, InstallOptions{Version: opts.Version, LocalRepository: opts.LocalRepository})

	if cfg.Version.IsEmpty() {
		return CheckResult{}, zerr.Wrap(domain.ErrVersionNotSet, "no version requested")
	}

	verifier := m2.NewVerifier(cfg.LocalRepository)
	result := CheckResult{
		Version:         cfg.Version,
		LocalRepository: verifier.LocalRepository(),
	}
	if result.LocalRepository == "" {
		a.logger.Warn("home directory could not be resolved; treating " +
			domain.PackageName + " " + cfg.Version.String() + " as not installed")
	}

	result.Installed = verifier.IsInstalled(cfg.Version)
	if !result.Installed {
		result.Missing = verifier.Missing(cfg.Version)
	}

	receipt, err := a.store.Get(resolvePath(cwd, cfg.BuildDir), cfg.Version)
	if err != nil {
		a.logger.Warn("could not read install receipt: " + err.Error())
	}
	result.Receipt = receipt

	return result, nil
}

// ModulesOptions configuration for the Modules method.
type ModulesOptions struct {
	ConfigPath      string
	Version         domain.PackageVersion
	LocalRepository string
}

// Modules writes the module list to w. With a version, each module is
// followed by the manifest path checked for it.
func (a *App) Modules(_ context.Context, w io.Writer, opts ModulesOptions) error {
	cwd, err := a.cwd()
	if err != nil {
		return err
	}

	cfg, err := a.loadConfig(cwd, opts.ConfigPath)
	if err != nil {
		return err
	}
	applyOverrides(cfg, cwd, InstallOptions{Version: opts.Version, LocalRepository: opts.LocalRepository})

	return RenderModules(w, cfg.Version, m2.NewVerifier(cfg.LocalRepository).LocalRepository())
}

// InitOptions configuration for the Init method.
type InitOptions struct {
	Path    string
	Version domain.PackageVersion
	Force   bool
}

// Init writes a commented configuration file.
func (a *App) Init(_ context.Context, opts InitOptions) error {
	cwd, err := a.cwd()
	if err != nil {
		return err
	}

	path := opts.Path
	if path == "" {
		path = domain.ConfigFileName
	}
	path = resolvePath(cwd, path)

	if _, err := os.Stat(path); err == nil && !opts.Force {
		return zerr.With(zerr.Wrap(domain.ErrConfigExists, "use --force to replace it"), "path", path)
	}

	cfg, err := a.configLoader.LoadDefaults()
	if err != nil {
		return err
	}
	if !opts.Version.IsEmpty() {
		cfg.Version = opts.Version
	}

	if err := a.configLoader.WriteTemplate(path, cfg, opts.Force); err != nil {
		return err
	}

	a.logger.Info(style.Check + " wrote " + path)
	return nil
}

func (a *App) cwd() (string, error) {
	if a.workDir != "" {
		return a.workDir, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", zerr.Wrap(err, "failed to get current working directory")
	}
	return cwd, nil
}

func (a *App) loadConfig(cwd, path string) (*domain.Config, error) {
	cfg, err := a.configLoader.Load(cwd, path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

// applyOverrides layers flag values over cfg and makes the local repository
// absolute against cwd. mvn runs inside the working tree, not in cwd.
func applyOverrides(cfg *domain.Config, cwd string, opts InstallOptions) {
	if !opts.Version.IsEmpty() {
		cfg.Version = opts.Version
	}
	if opts.BuildDir != "" {
		cfg.BuildDir = opts.BuildDir
	}
	if opts.LocalRepository != "" {
		cfg.LocalRepository = opts.LocalRepository
	}
	if opts.OutputMode != "" {
		cfg.OutputMode = opts.OutputMode
	}
	cfg.LocalRepository = resolvePath(cwd, cfg.LocalRepository)
}

func resolvePath(cwd, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(cwd, path)
}
