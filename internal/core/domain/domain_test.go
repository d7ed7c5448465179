package domain_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dcmget/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestModules(t *testing.T) {
	mods := domain.Modules()
	require.Len(t, mods, 37)
	assert.Equal(t, domain.Module("assembly"), mods[0])
	assert.Equal(t, domain.Module("xdsi"), mods[len(mods)-1])

	seen := make(map[domain.Module]bool, len(mods))
	for _, m := range mods {
		assert.NotEmpty(t, m)
		assert.False(t, seen[m], "duplicate module %q", m)
		seen[m] = true
	}
	assert.False(t, seen["dict-arc"])

	// Callers get a copy.
	mods[0] = "changed"
	assert.Equal(t, domain.Module("assembly"), domain.Modules()[0])
}

func TestNewCacheEntry(t *testing.T) {
	root := filepath.Join("/home", "u", ".m2", "repository", "org", "dcm4che")
	e := domain.NewCacheEntry(root, "core", "5.20.0")

	assert.Equal(t, domain.Module("core"), e.Module)
	assert.Equal(t, "dcm4che-core", e.ModuleDir)
	assert.Equal(t, "dcm4che-core-5.20.0.pom", e.ManifestName)
	assert.Equal(t, filepath.Join(root, "dcm4che-core", "5.20.0", "dcm4che-core-5.20.0.pom"), e.ExpectedPath)

	// Deterministic for the same inputs.
	assert.Equal(t, e, domain.NewCacheEntry(root, "core", "5.20.0"))
}

func TestCacheEntries(t *testing.T) {
	entries := domain.CacheEntries("/r", "1.0")
	mods := domain.Modules()
	require.Len(t, entries, len(mods))
	for i, e := range entries {
		assert.Equal(t, mods[i], e.Module)
	}
}

func TestPackageVersion_IsEmpty(t *testing.T) {
	assert.True(t, domain.PackageVersion("").IsEmpty())
	assert.True(t, domain.PackageVersion("  ").IsEmpty())
	assert.False(t, domain.PackageVersion("5.20.0").IsEmpty())
}

func TestPlatformFor(t *testing.T) {
	t.Run("unix uses bare name and exec bit", func(t *testing.T) {
		p := domain.PlatformFor("linux")
		assert.Equal(t, []string{"mvn"}, p.Candidates("mvn"))
		assert.True(t, p.RequireExecBit)
	})

	t.Run("windows prefers cmd then bat", func(t *testing.T) {
		p := domain.PlatformFor("windows")
		assert.Equal(t, []string{"mvn.cmd", "mvn.bat", "mvn.exe", "mvn"}, p.Candidates("mvn"))
		assert.False(t, p.RequireExecBit)
	})

	t.Run("no extensions falls back to name", func(t *testing.T) {
		assert.Equal(t, []string{"git"}, domain.Platform{}.Candidates("git"))
	})
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "clone", domain.StateAcquiring.String())
	assert.Equal(t, "checkout", domain.StateCheckedOut.String())
	assert.Equal(t, "unknown", domain.State(99).String())
	assert.True(t, domain.StateFailed.IsTerminal())
	assert.False(t, domain.StateCleaning.IsTerminal())
}

func TestReport(t *testing.T) {
	r := &domain.Report{}
	assert.Equal(t, domain.StateStart, r.Current())

	r.Enter(domain.StateValidatingEnv)
	r.Fail(domain.StateValidatingEnv, 0)

	assert.Equal(t, domain.StateFailed, r.Current())
	assert.Equal(t, domain.StateValidatingEnv, r.FailedStep)
	assert.Equal(t, "skipped", domain.OutcomeSkipped.String())
}

func TestExitCode(t *testing.T) {
	err := zerr.With(zerr.Wrap(domain.ErrCloneFailed, "clone"), "exit_code", 128)
	code, ok := domain.ExitCode(zerr.Wrap(err, "outer"))
	require.True(t, ok)
	assert.Equal(t, 128, code)
	require.ErrorIs(t, err, domain.ErrCloneFailed)

	_, ok = domain.ExitCode(errors.New("plain"))
	assert.False(t, ok)

	_, ok = domain.ExitCode(nil)
	assert.False(t, ok)
}
