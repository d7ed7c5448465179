// Package m2 inspects the Maven local repository for installed modules.
package m2

import (
	"io"
	"os"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/dcmget/internal/core/domain"
	"go.trai.ch/zerr"
)

// Verifier implements ports.InstallationVerifier.
type Verifier struct {
	localRepository string
	home            func() (string, error)
}

// Option configures a Verifier.
type Option func(*Verifier)

// WithHome replaces the home directory lookup used when no explicit local
// repository is configured.
func WithHome(home func() (string, error)) Option {
	return func(v *Verifier) {
		v.home = home
	}
}

// NewVerifier creates a Verifier. An empty localRepository selects
// <home>/.m2/repository.
func NewVerifier(localRepository string, opts ...Option) *Verifier {
	v := &Verifier{
		localRepository: localRepository,
		home:            os.UserHomeDir,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// LocalRepository returns the inspected repository, or "" when the home
// directory cannot be resolved.
func (v *Verifier) LocalRepository() string {
	repo, err := v.resolveRepository()
	if err != nil {
		return ""
	}
	return repo
}

// IsInstalled reports whether the manifest of every module exists for version.
// Any failure to resolve or read the cache root counts as not installed.
func (v *Verifier) IsInstalled(version domain.PackageVersion) bool {
	root, ok := v.cacheRoot()
	if !ok {
		return false
	}

	for _, entry := range domain.CacheEntries(root, version) {
		if !isRegularFile(entry.ExpectedPath) {
			return false
		}
	}
	return true
}

// Missing returns the modules without a manifest for version, in module order.
func (v *Verifier) Missing(version domain.PackageVersion) []domain.Module {
	root, ok := v.cacheRoot()
	if !ok {
		return domain.Modules()
	}

	var missing []domain.Module
	for _, entry := range domain.CacheEntries(root, version) {
		if !isRegularFile(entry.ExpectedPath) {
			missing = append(missing, entry.Module)
		}
	}
	return missing
}

// Digest hashes the manifests of every module for version, in module order.
func (v *Verifier) Digest(version domain.PackageVersion) (uint64, error) {
	root, ok := v.cacheRoot()
	if !ok {
		return 0, zerr.With(zerr.Wrap(domain.ErrManifestReadFailed, "local repository not available"), "version", version.String())
	}

	hasher := xxhash.New()
	for _, entry := range domain.CacheEntries(root, version) {
		if err := hashFile(hasher, entry.ExpectedPath); err != nil {
			return 0, err
		}
		_, _ = hasher.Write([]byte{0})
	}
	return hasher.Sum64(), nil
}

func (v *Verifier) resolveRepository() (string, error) {
	if v.localRepository != "" {
		return v.localRepository, nil
	}

	home, err := v.home()
	if err != nil {
		return "", zerr.Wrap(domain.ErrHomeNotResolved, err.Error())
	}
	if strings.TrimSpace(home) == "" {
		return "", domain.ErrHomeNotResolved
	}
	return domain.DefaultLocalRepository(home), nil
}

// cacheRoot returns the package family directory if it exists as a directory.
func (v *Verifier) cacheRoot() (string, bool) {
	repo, err := v.resolveRepository()
	if err != nil {
		return "", false
	}

	root := domain.CacheRoot(repo)
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return "", false
	}
	return root, true
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func hashFile(hasher *xxhash.Digest, path string) error {
	f, err := os.Open(path) //nolint:gosec // path derived from the cache layout
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrManifestReadFailed, err.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // read-only file

	if _, err := io.Copy(hasher, f); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrManifestReadFailed, err.Error()), "path", path)
	}
	return nil
}
