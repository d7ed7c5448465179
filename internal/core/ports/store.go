package ports

import "go.trai.ch/dcmget/internal/core/domain"

// ReceiptStore defines the interface for storing and retrieving install receipts.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ReceiptStore interface {
	// Get retrieves the receipt for a version.
	// Returns nil, nil if not found.
	Get(root string, version domain.PackageVersion) (*domain.Receipt, error)

	// Put stores the receipt.
	Put(root string, receipt domain.Receipt) error
}
