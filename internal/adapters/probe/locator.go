package probe

import (
	"os"
	"runtime"

	"go.trai.ch/dcmget/internal/core/domain"
)

// Locator implements ports.ExecutableLocator over the process environment.
type Locator struct {
	getenv func(string) string
	rules  domain.Platform
	stat   StatFunc
}

// LocatorOption configures a Locator.
type LocatorOption func(*Locator)

// WithGetenv replaces the environment lookup.
func WithGetenv(getenv func(string) string) LocatorOption {
	return func(l *Locator) {
		l.getenv = getenv
	}
}

// WithPlatform replaces the platform rules derived from runtime.GOOS.
func WithPlatform(rules domain.Platform) LocatorOption {
	return func(l *Locator) {
		l.rules = rules
	}
}

// NewLocator creates a Locator for the running platform.
func NewLocator(opts ...LocatorOption) *Locator {
	l := &Locator{
		getenv: os.Getenv,
		rules:  domain.PlatformFor(runtime.GOOS),
		stat:   os.Stat,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Locate resolves name against the current PATH.
func (l *Locator) Locate(name string) (domain.ExecutableLocation, error) {
	return ResolvePath(l.getenv("PATH"), name, l.rules, l.stat)
}

// HasExecutable reports whether name resolves on the current PATH.
func (l *Locator) HasExecutable(name string) bool {
	_, err := l.Locate(name)
	return err == nil
}
