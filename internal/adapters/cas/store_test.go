package cas_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dcmget/internal/adapters/cas"
	"go.trai.ch/dcmget/internal/core/domain"
)

func TestStore_PutGet(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := cas.NewStore()

	receipt := domain.Receipt{
		Version:         "5.20.0",
		LocalRepository: "/home/u/.m2/repository",
		WorkingTree:     filepath.Join(root, "dcm4che"),
		Modules:         len(domain.Modules()),
		ManifestDigest:  0xdeadbeef,
		// Truncate because JSON unmarshal drops the monotonic clock reading.
		InstalledAt: time.Now().Truncate(time.Second).UTC(),
		Duration:    90 * time.Second,
	}

	t.Run("put and get", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, store.Put(root, receipt))

		got, err := store.Get(root, "5.20.0")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, receipt, *got)
	})

	t.Run("get missing", func(t *testing.T) {
		t.Parallel()
		got, err := store.Get(root, "0.0.1")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestStore_Overwrite(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := cas.NewStore()

	require.NoError(t, store.Put(root, domain.Receipt{Version: "5.20.0", Modules: 1}))
	require.NoError(t, store.Put(root, domain.Receipt{Version: "5.20.0", Modules: 37}))

	got, err := store.Get(root, "5.20.0")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 37, got.Modules)

	entries, err := os.ReadDir(domain.ReceiptStorePath(root))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStore_VersionWithSeparator(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := cas.NewStore()

	require.NoError(t, store.Put(root, domain.Receipt{Version: "feature/dicom-2024"}))

	got, err := store.Get(root, "feature/dicom-2024")
	require.NoError(t, err)
	require.NotNil(t, got)

	entries, err := os.ReadDir(domain.ReceiptStorePath(root))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.False(t, entries[0].IsDir())
}

func TestStore_GetCorrupt(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := cas.NewStore()
	require.NoError(t, store.Put(root, domain.Receipt{Version: "5.20.0"}))

	dir := domain.ReceiptStorePath(root)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NoError(t, os.WriteFile(filepath.Join(dir, entries[0].Name()), []byte("{not json"), 0o600))

	_, err = store.Get(root, "5.20.0")
	require.ErrorIs(t, err, domain.ErrStoreUnmarshalFailed)
}

func TestStore_PutUnwritableRoot(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	blocker := filepath.Join(root, ".dcmget")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	err := cas.NewStore().Put(root, domain.Receipt{Version: "5.20.0"})
	require.ErrorIs(t, err, domain.ErrStoreCreateFailed)
}
