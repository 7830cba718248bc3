package repositories

import (
	"context"

	"github.com/SscSPs/receipt_processor/internal/core/domain"
)

// ReceiptPointsReader defines read operations for scored receipts
type ReceiptPointsReader interface {
	// FindReceiptPointsByID retrieves a scored receipt by its identifier.
	// It returns apperrors.ErrNotFound when no receipt has that identifier.
	FindReceiptPointsByID(ctx context.Context, receiptID string) (*domain.ScoredReceipt, error)

	// CountReceipts returns the number of stored receipts.
	CountReceipts(ctx context.Context) (int, error)
}

// ReceiptPointsWriter defines write operations for scored receipts
type ReceiptPointsWriter interface {
	// SaveReceiptPoints inserts the scored receipt, overwriting any entry with the same ID.
	SaveReceiptPoints(ctx context.Context, scored domain.ScoredReceipt) error
}

// ReceiptPointsRepositoryFacade combines all scored receipt repository interfaces
type ReceiptPointsRepositoryFacade interface {
	ReceiptPointsReader
	ReceiptPointsWriter
}
