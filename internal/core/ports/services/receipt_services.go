package services

import (
	"context"

	"github.com/SscSPs/receipt_processor/internal/core/domain"
	"github.com/SscSPs/receipt_processor/internal/dto"
)

// ReceiptReaderSvc defines read operations for processed receipts
type ReceiptReaderSvc interface {
	// GetReceiptPoints retrieves the scored receipt for an identifier.
	GetReceiptPoints(ctx context.Context, receiptID string) (*domain.ScoredReceipt, error)

	// CountReceipts returns how many receipts have been processed.
	CountReceipts(ctx context.Context) (int, error)
}

// ReceiptWriterSvc defines write operations for receipts
type ReceiptWriterSvc interface {
	// ProcessReceipt validates, scores and stores a submitted receipt.
	// Validation failures are returned as *apperrors.ValidationError.
	ProcessReceipt(ctx context.Context, req dto.ProcessReceiptRequest) (*domain.ScoredReceipt, error)
}

// ReceiptSvcFacade combines all receipt-related service interfaces
type ReceiptSvcFacade interface {
	ReceiptReaderSvc
	ReceiptWriterSvc
}
