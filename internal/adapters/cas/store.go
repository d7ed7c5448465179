// Package cas stores install receipts, one file per installed version.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/dcmget/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.ReceiptStore using a file-per-version strategy.
type Store struct{}

// NewStore creates a new ReceiptStore. The directory is supplied per call.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the receipt for a version under root.
func (s *Store) Get(root string, version domain.PackageVersion) (*domain.Receipt, error) {
	filename := s.getFilename(root, version)
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrStoreReadFailed, err.Error()), "path", filename)
	}

	var receipt domain.Receipt
	if err := json.Unmarshal(data, &receipt); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrStoreUnmarshalFailed, err.Error()), "path", filename)
	}

	return &receipt, nil
}

// Put stores the receipt under root, replacing any earlier one for the same version.
func (s *Store) Put(root string, receipt domain.Receipt) error {
	data, err := json.MarshalIndent(receipt, "", "  ")
	if err != nil {
		return zerr.Wrap(domain.ErrStoreMarshalFailed, err.Error())
	}

	filename := s.getFilename(root, receipt.Version)
	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreCreateFailed, err.Error()), "path", filepath.Dir(filename))
	}

	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", filename)
	}

	return nil
}

// Version strings may contain path separators, so files are named by hash.
func (s *Store) getFilename(root string, version domain.PackageVersion) string {
	name := strconv.FormatUint(xxhash.Sum64String(version.String()), 16)
	return filepath.Join(domain.ReceiptStorePath(root), name+".json")
}
