package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/SscSPs/receipt_processor/internal/apperrors"
	"github.com/SscSPs/receipt_processor/internal/core/domain"
	portsrepo "github.com/SscSPs/receipt_processor/internal/core/ports/repositories"
)

// ReceiptPointsRepository keeps scored receipts in process memory.
// Entries live until the process exits.
type ReceiptPointsRepository struct {
	mu      sync.RWMutex
	receipt map[string]domain.ScoredReceipt
}

// NewReceiptPointsRepository creates an empty in-memory repository.
func NewReceiptPointsRepository() *ReceiptPointsRepository {
	return &ReceiptPointsRepository{receipt: make(map[string]domain.ScoredReceipt)}
}

// Ensure implementation matches interface
var _ portsrepo.ReceiptPointsRepositoryFacade = (*ReceiptPointsRepository)(nil)

// SaveReceiptPoints inserts or overwrites the scored receipt under its ID.
func (r *ReceiptPointsRepository) SaveReceiptPoints(_ context.Context, scored domain.ScoredReceipt) error {
	if scored.ID == "" {
		return fmt.Errorf("%w: receipt ID is required", apperrors.ErrValidation)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.receipt[scored.ID] = scored
	return nil
}

// FindReceiptPointsByID returns a copy of the stored receipt or apperrors.ErrNotFound.
func (r *ReceiptPointsRepository) FindReceiptPointsByID(_ context.Context, receiptID string) (*domain.ScoredReceipt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	scored, ok := r.receipt[receiptID]
	if !ok {
		return nil, fmt.Errorf("receipt %s: %w", receiptID, apperrors.ErrNotFound)
	}
	return &scored, nil
}

// CountReceipts returns the number of stored receipts.
func (r *ReceiptPointsRepository) CountReceipts(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.receipt), nil
}
