package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dcmget/internal/adapters/config"
	"go.trai.ch/dcmget/internal/core/domain"
	"go.trai.ch/dcmget/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
	"gopkg.in/yaml.v3"
)

func fixedHome(dir string) config.Option {
	return config.WithHome(func() (string, error) { return dir, nil })
}

func createFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.PrivateFilePerm))
	return path
}

func TestLoader_Load_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	cwd := t.TempDir()
	cfg, err := config.NewLoader(mockLogger, fixedHome("/home/u")).Load(cwd, "")
	require.NoError(t, err)

	assert.True(t, cfg.Version.IsEmpty())
	assert.Equal(t, "build", cfg.BuildDir)
	assert.Equal(t, filepath.Join("/home/u", ".m2", "repository"), cfg.LocalRepository)
	assert.True(t, cfg.BatchMode)
	assert.Equal(t, domain.OutputModeAuto, cfg.OutputMode)
	assert.Equal(t, domain.LogFormatPretty, cfg.LogFormat)
}

func TestLoader_Load_File(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	cwd := t.TempDir()
	createFile(t, cwd, domain.ConfigFileName, `
version: " 5.20.0 "
build_dir: /tmp/dcm-build
local_repository: /srv/m2
batch_mode: false
output_mode: pipe
`)

	cfg, err := config.NewLoader(mockLogger, fixedHome("/home/u")).Load(cwd, "")
	require.NoError(t, err)

	assert.Equal(t, domain.PackageVersion("5.20.0"), cfg.Version)
	assert.Equal(t, "/tmp/dcm-build", cfg.BuildDir)
	assert.Equal(t, "/srv/m2", cfg.LocalRepository)
	assert.False(t, cfg.BatchMode)
	assert.Equal(t, domain.OutputModePipe, cfg.OutputMode)
	assert.Equal(t, domain.LogFormatPretty, cfg.LogFormat)
}

func TestLoader_Load_EnvOverridesFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	cwd := t.TempDir()
	createFile(t, cwd, domain.ConfigFileName, "version: 5.18.0\nbatch_mode: true\n")
	t.Setenv("DCMGET_VERSION", "5.20.0")
	t.Setenv("DCMGET_BATCH_MODE", "false")

	cfg, err := config.NewLoader(mockLogger, fixedHome("/home/u")).Load(cwd, "")
	require.NoError(t, err)

	assert.Equal(t, domain.PackageVersion("5.20.0"), cfg.Version)
	assert.False(t, cfg.BatchMode)
}

func TestLoader_Load_ExplicitPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	loader := config.NewLoader(mockLogger, fixedHome("/home/u"))

	cwd := t.TempDir()
	createFile(t, cwd, "ci.yaml", "version: 5.19.1\n")

	t.Run("relative to cwd", func(t *testing.T) {
		cfg, err := loader.Load(cwd, "ci.yaml")
		require.NoError(t, err)
		assert.Equal(t, domain.PackageVersion("5.19.1"), cfg.Version)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := loader.Load(cwd, "absent.yaml")
		require.ErrorIs(t, err, domain.ErrConfigReadFailed)
	})
}

func TestLoader_Load_Malformed(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	cwd := t.TempDir()
	createFile(t, cwd, domain.ConfigFileName, "version: [unclosed\n")

	_, err := config.NewLoader(mockLogger, fixedHome("/home/u")).Load(cwd, "")
	require.ErrorIs(t, err, domain.ErrConfigParseFailed)
}

func TestLoader_Load_UnknownKeyWarns(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	cwd := t.TempDir()
	path := createFile(t, cwd, domain.ConfigFileName, "version: 5.20.0\nrepo_url: https://example.com\n")
	mockLogger.EXPECT().Warn("ignoring unknown key 'repo_url' in " + path)

	_, err := config.NewLoader(mockLogger, fixedHome("/home/u")).Load(cwd, "")
	require.NoError(t, err)
}

func TestLoader_Load_EmptyValuesUseDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	cwd := t.TempDir()
	createFile(t, cwd, domain.ConfigFileName, "version: 5.20.0\nbuild_dir: \"\"\nlocal_repository: \"\"\n")

	cfg, err := config.NewLoader(mockLogger, fixedHome("/home/u")).Load(cwd, "")
	require.NoError(t, err)
	assert.Equal(t, "build", cfg.BuildDir)
	assert.Equal(t, filepath.Join("/home/u", ".m2", "repository"), cfg.LocalRepository)
}

func TestLoader_Defaults_HomeUnknown(t *testing.T) {
	loader := config.NewLoader(nil, config.WithHome(func() (string, error) {
		return "", errors.New("$HOME is not defined")
	}))

	assert.Empty(t, loader.Defaults().LocalRepository)
}

func TestLoader_WriteTemplate(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	loader := config.NewLoader(mockLogger, fixedHome("/home/u"))

	dir := t.TempDir()
	path := filepath.Join(dir, domain.ConfigFileName)

	cfg := loader.Defaults()
	cfg.Version = "5.20.0"
	require.NoError(t, loader.WriteTemplate(path, cfg, false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# dcmget configuration.")
	assert.Contains(t, string(data), "# Run mvn in non-interactive batch mode (-B).")

	var raw map[string]any
	require.NoError(t, yaml.Unmarshal(data, &raw))
	assert.Equal(t, "5.20.0", raw["version"])
	assert.Equal(t, "build", raw["build_dir"])
	assert.Equal(t, true, raw["batch_mode"])

	// The written file loads back to the same values.
	loaded, err := loader.Load(dir, "")
	require.NoError(t, err)
	assert.Equal(t, cfg.Version, loaded.Version)
	assert.Equal(t, cfg.LocalRepository, loaded.LocalRepository)

	t.Run("refuses to overwrite", func(t *testing.T) {
		err := loader.WriteTemplate(path, cfg, false)
		require.ErrorIs(t, err, domain.ErrConfigExists)
	})

	t.Run("replaces in place", func(t *testing.T) {
		next := loader.Defaults()
		next.Version = "5.21.0"
		require.NoError(t, loader.WriteTemplate(path, next, true))

		loaded, err := loader.Load(dir, "")
		require.NoError(t, err)
		assert.Equal(t, domain.PackageVersion("5.21.0"), loaded.Version)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1, "no temp file is left behind")
	})
}

func TestLoader_WriteTemplate_FailedReplaceKeepsFile(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}
	loader := config.NewLoader(nil, fixedHome("/home/u"))

	dir := t.TempDir()
	path := filepath.Join(dir, domain.ConfigFileName)
	original := []byte("version: 1.0.0\n")
	require.NoError(t, os.WriteFile(path, original, 0o600))

	// A read-only directory refuses the temp file.
	require.NoError(t, os.Chmod(dir, 0o500))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o750) })

	err := loader.WriteTemplate(path, loader.Defaults(), true)
	require.ErrorIs(t, err, domain.ErrConfigWriteFailed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, data)
}

func TestLoader_LoadDefaults_IgnoresFile(t *testing.T) {
	cwd := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(cwd, domain.ConfigFileName), []byte("version: 1.0.0\n"), 0o600))
	t.Setenv("DCMGET_BUILD_DIR", "out")

	t.Chdir(cwd)
	cfg, err := config.NewLoader(nil, fixedHome("/home/u")).LoadDefaults()
	require.NoError(t, err)
	assert.True(t, cfg.Version.IsEmpty())
	assert.Equal(t, "out", cfg.BuildDir)
	assert.Equal(t, filepath.Join("/home/u", ".m2", "repository"), cfg.LocalRepository)
}
