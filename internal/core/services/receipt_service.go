package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/receipt_processor/internal/apperrors"
	"github.com/SscSPs/receipt_processor/internal/core/domain"
	portsrepo "github.com/SscSPs/receipt_processor/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/receipt_processor/internal/core/ports/services"
	"github.com/SscSPs/receipt_processor/internal/dto"
	"github.com/SscSPs/receipt_processor/internal/utils/mapping"
	"github.com/SscSPs/receipt_processor/internal/utils/rewards"
	"github.com/SscSPs/receipt_processor/internal/utils/validation"
	"github.com/google/uuid"
)

// receiptService implements the ReceiptSvcFacade interface
type receiptService struct {
	BaseService
	receiptRepo portsrepo.ReceiptPointsRepositoryFacade
	newID       func() string
	now         func() time.Time
}

// ReceiptServiceOption is a functional option for configuring the receipt service
type ReceiptServiceOption func(*receiptService)

// WithIDGenerator replaces the uuid v4 generator used for receipt IDs
func WithIDGenerator(fn func() string) ReceiptServiceOption {
	return func(s *receiptService) {
		s.newID = fn
	}
}

// WithClock replaces time.Now for ProcessedAt timestamps
func WithClock(fn func() time.Time) ReceiptServiceOption {
	return func(s *receiptService) {
		s.now = fn
	}
}

// NewReceiptService creates a new receipt service with the provided options
func NewReceiptService(repo portsrepo.ReceiptPointsRepositoryFacade, options ...ReceiptServiceOption) portssvc.ReceiptSvcFacade {
	svc := &receiptService{
		receiptRepo: repo,
		newID:       uuid.NewString,
		now:         time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure receiptService implements the ReceiptSvcFacade interface
var _ portssvc.ReceiptSvcFacade = (*receiptService)(nil)

func (s *receiptService) ProcessReceipt(ctx context.Context, req dto.ProcessReceiptRequest) (*domain.ScoredReceipt, error) {
	if msgs := validation.ValidateReceipt(req); len(msgs) > 0 {
		s.LogDebug(ctx, "Receipt failed validation", slog.Int("error_count", len(msgs)))
		return nil, apperrors.NewValidationError(msgs)
	}

	receipt, err := mapping.ToDomainReceipt(req)
	if err != nil {
		s.LogError(ctx, err, "Validated receipt could not be converted")
		return nil, fmt.Errorf("failed to convert receipt: %w", err)
	}

	scored := domain.ScoredReceipt{
		ID:          s.newID(),
		Points:      rewards.CalculatePoints(receipt),
		ProcessedAt: s.now().UTC(),
	}

	if err := s.receiptRepo.SaveReceiptPoints(ctx, scored); err != nil {
		s.LogError(ctx, err, "Failed to save receipt points", slog.String("receipt_id", scored.ID))
		return nil, fmt.Errorf("failed to save receipt points: %w", err)
	}

	s.LogInfo(ctx, "Receipt processed",
		slog.String("receipt_id", scored.ID),
		slog.Int64("points", scored.Points),
		slog.Int("item_count", len(receipt.Items)))
	return &scored, nil
}

func (s *receiptService) GetReceiptPoints(ctx context.Context, receiptID string) (*domain.ScoredReceipt, error) {
	scored, err := s.receiptRepo.FindReceiptPointsByID(ctx, receiptID)
	if err != nil {
		return nil, fmt.Errorf("failed to get receipt points in service: %w", err)
	}
	return scored, nil
}

func (s *receiptService) CountReceipts(ctx context.Context) (int, error) {
	count, err := s.receiptRepo.CountReceipts(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count receipts in service: %w", err)
	}
	return count, nil
}
