// Package config provides the layered configuration loader for dcmget.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"
	"go.trai.ch/dcmget/internal/core/domain"
	"go.trai.ch/dcmget/internal/core/ports"
	"go.trai.ch/zerr"
)

// EnvPrefix is the prefix of environment variables overriding config keys.
const EnvPrefix = "DCMGET"

// Config keys.
const (
	KeyVersion         = "version"
	KeyBuildDir        = "build_dir"
	KeyLocalRepository = "local_repository"
	KeyBatchMode       = "batch_mode"
	KeyOutputMode      = "output_mode"
	KeyLogFormat       = "log_format"
)

var knownKeys = []string{
	KeyVersion,
	KeyBuildDir,
	KeyLocalRepository,
	KeyBatchMode,
	KeyOutputMode,
	KeyLogFormat,
}

// Loader implements ports.ConfigLoader with viper.
type Loader struct {
	Logger ports.Logger
	home   func() (string, error)
}

// Option configures a Loader.
type Option func(*Loader)

// WithHome overrides the home directory lookup.
func WithHome(home func() (string, error)) Option {
	return func(l *Loader) {
		l.home = home
	}
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger, opts ...Option) *Loader {
	l := &Loader{
		Logger: logger,
		home:   os.UserHomeDir,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Defaults returns the configuration used when nothing overrides a key.
// The local repository is left empty when the home directory is unknown.
func (l *Loader) Defaults() *domain.Config {
	cfg := &domain.Config{
		BuildDir:   domain.DefaultBuildDir,
		BatchMode:  true,
		OutputMode: domain.OutputModeAuto,
		LogFormat:  domain.LogFormatPretty,
	}
	if home, err := l.home(); err == nil && home != "" {
		cfg.LocalRepository = domain.DefaultLocalRepository(home)
	}
	return cfg
}

// Load resolves defaults < config file < DCMGET_* environment.
// Without path, dcmget.yaml in cwd is used when present. An explicit path must exist.
// Empty build_dir and local_repository values fall back to their defaults.
func (l *Loader) Load(cwd, path string) (*domain.Config, error) {
	v, defaults := l.newViper()

	configPath, err := l.findConfiguration(cwd, path)
	if err != nil {
		return nil, err
	}
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", configPath)
		}
		l.warnUnknownKeys(v, configPath)
	}

	return decode(v, defaults)
}

// LoadDefaults resolves defaults < DCMGET_* environment without reading any file.
func (l *Loader) LoadDefaults() (*domain.Config, error) {
	v, defaults := l.newViper()
	return decode(v, defaults)
}

func (l *Loader) newViper() (*viper.Viper, *domain.Config) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	defaults := l.Defaults()
	v.SetDefault(KeyVersion, defaults.Version.String())
	v.SetDefault(KeyBuildDir, defaults.BuildDir)
	v.SetDefault(KeyLocalRepository, defaults.LocalRepository)
	v.SetDefault(KeyBatchMode, defaults.BatchMode)
	v.SetDefault(KeyOutputMode, defaults.OutputMode)
	v.SetDefault(KeyLogFormat, defaults.LogFormat)
	return v, defaults
}

func decode(v *viper.Viper, defaults *domain.Config) (*domain.Config, error) {
	var cfg domain.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, zerr.Wrap(domain.ErrConfigParseFailed, err.Error())
	}

	cfg.Version = domain.PackageVersion(strings.TrimSpace(cfg.Version.String()))
	if cfg.BuildDir == "" {
		cfg.BuildDir = defaults.BuildDir
	}
	if cfg.LocalRepository == "" {
		cfg.LocalRepository = defaults.LocalRepository
	}

	return &cfg, nil
}

func (l *Loader) findConfiguration(cwd, path string) (string, error) {
	if path != "" {
		if !filepath.IsAbs(path) {
			path = filepath.Join(cwd, path)
		}
		if _, err := os.Stat(path); err != nil {
			return "", zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
		}
		return path, nil
	}

	candidate := filepath.Join(cwd, domain.ConfigFileName)
	_, err := os.Stat(candidate)
	switch {
	case err == nil:
		return candidate, nil
	case errors.Is(err, fs.ErrNotExist):
		return "", nil
	default:
		return "", zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", candidate)
	}
}

func (l *Loader) warnUnknownKeys(v *viper.Viper, configPath string) {
	if l.Logger == nil {
		return
	}
	for _, key := range v.AllKeys() {
		top, _, _ := strings.Cut(key, ".")
		if !slices.Contains(knownKeys, top) {
			l.Logger.Warn("ignoring unknown key '" + key + "' in " + configPath)
		}
	}
}
