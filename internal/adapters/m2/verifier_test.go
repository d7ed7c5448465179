package m2_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dcmget/internal/adapters/m2"
	"go.trai.ch/dcmget/internal/core/domain"
)

const version domain.PackageVersion = "5.20.0"

// populate writes every module manifest of v below home/.m2/repository.
func populate(t *testing.T, home string, v domain.PackageVersion) []domain.CacheEntry {
	t.Helper()
	root := domain.CacheRoot(domain.DefaultLocalRepository(home))
	entries := domain.CacheEntries(root, v)
	for _, e := range entries {
		require.NoError(t, os.MkdirAll(filepath.Dir(e.ExpectedPath), 0o750))
		require.NoError(t, os.WriteFile(e.ExpectedPath, []byte("<project>"+e.ModuleDir+"</project>"), 0o600))
	}
	return entries
}

func homeAt(dir string) m2.Option {
	return m2.WithHome(func() (string, error) { return dir, nil })
}

func TestVerifier_AllManifestsPresent(t *testing.T) {
	home := t.TempDir()
	populate(t, home, version)

	v := m2.NewVerifier("", homeAt(home))
	assert.True(t, v.IsInstalled(version))
	assert.Empty(t, v.Missing(version))
	assert.Equal(t, domain.DefaultLocalRepository(home), v.LocalRepository())
}

func TestVerifier_AllOrNothing(t *testing.T) {
	home := t.TempDir()
	entries := populate(t, home, version)
	v := m2.NewVerifier("", homeAt(home))

	// Removing any single manifest flips the result.
	for _, idx := range []int{0, len(entries) / 2, len(entries) - 1} {
		e := entries[idx]
		t.Run(string(e.Module), func(t *testing.T) {
			data, err := os.ReadFile(e.ExpectedPath)
			require.NoError(t, err)
			require.NoError(t, os.Remove(e.ExpectedPath))
			t.Cleanup(func() {
				require.NoError(t, os.WriteFile(e.ExpectedPath, data, 0o600))
			})

			assert.False(t, v.IsInstalled(version))
			assert.Equal(t, []domain.Module{e.Module}, v.Missing(version))
		})
	}

	assert.True(t, v.IsInstalled(version))
}

func TestVerifier_ManifestMustBeRegularFile(t *testing.T) {
	home := t.TempDir()
	entries := populate(t, home, version)
	require.NoError(t, os.Remove(entries[3].ExpectedPath))
	require.NoError(t, os.Mkdir(entries[3].ExpectedPath, 0o750))

	assert.False(t, m2.NewVerifier("", homeAt(home)).IsInstalled(version))
}

func TestVerifier_OtherVersionNotInstalled(t *testing.T) {
	home := t.TempDir()
	populate(t, home, version)

	assert.False(t, m2.NewVerifier("", homeAt(home)).IsInstalled("5.21.0"))
}

func TestVerifier_MissingCacheRoot(t *testing.T) {
	tests := []struct {
		name string
		opt  m2.Option
	}{
		{name: "empty home directory", opt: homeAt(t.TempDir())},
		{name: "home lookup fails", opt: m2.WithHome(func() (string, error) { return "", errors.New("no home") })},
		{name: "home is blank", opt: homeAt("  ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := m2.NewVerifier("", tt.opt)
			assert.NotPanics(t, func() {
				assert.False(t, v.IsInstalled(version))
			})
			assert.Equal(t, domain.Modules(), v.Missing(version))
		})
	}
}

func TestVerifier_CacheRootIsAFile(t *testing.T) {
	home := t.TempDir()
	root := domain.CacheRoot(domain.DefaultLocalRepository(home))
	require.NoError(t, os.MkdirAll(filepath.Dir(root), 0o750))
	require.NoError(t, os.WriteFile(root, nil, 0o600))

	assert.False(t, m2.NewVerifier("", homeAt(home)).IsInstalled(version))
}

func TestVerifier_ExplicitLocalRepository(t *testing.T) {
	home := t.TempDir()
	populate(t, home, version)
	repo := domain.DefaultLocalRepository(home)

	v := m2.NewVerifier(repo, m2.WithHome(func() (string, error) {
		return "", errors.New("must not be called")
	}))
	assert.True(t, v.IsInstalled(version))
	assert.Equal(t, repo, v.LocalRepository())
}

func TestVerifier_Digest(t *testing.T) {
	home := t.TempDir()
	entries := populate(t, home, version)
	v := m2.NewVerifier("", homeAt(home))

	first, err := v.Digest(version)
	require.NoError(t, err)

	again, err := v.Digest(version)
	require.NoError(t, err)
	assert.Equal(t, first, again)

	require.NoError(t, os.WriteFile(entries[0].ExpectedPath, []byte("changed"), 0o600))
	changed, err := v.Digest(version)
	require.NoError(t, err)
	assert.NotEqual(t, first, changed)

	require.NoError(t, os.Remove(entries[1].ExpectedPath))
	_, err = v.Digest(version)
	require.ErrorIs(t, err, domain.ErrManifestReadFailed)
}
