package mapping

import (
	"fmt"
	"time"

	"github.com/SscSPs/receipt_processor/internal/apperrors"
	"github.com/SscSPs/receipt_processor/internal/core/domain"
	"github.com/SscSPs/receipt_processor/internal/dto"
	"github.com/SscSPs/receipt_processor/internal/utils/validation"
	"github.com/shopspring/decimal"
)

// ToDomainReceipt converts a validated request into a domain.Receipt.
// It expects validation.ValidateReceipt to have returned no errors; anything
// that still fails to convert is reported as apperrors.ErrValidation.
func ToDomainReceipt(req dto.ProcessReceiptRequest) (domain.Receipt, error) {
	if req.Retailer == nil || req.PurchaseDate == nil || req.PurchaseTime == nil || req.Items == nil || req.Total == nil {
		return domain.Receipt{}, fmt.Errorf("%w: receipt is missing required fields", apperrors.ErrValidation)
	}

	purchaseDate, err := time.Parse(validation.PurchaseDateLayout, *req.PurchaseDate)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("%w: purchaseDate %q: %v", apperrors.ErrValidation, *req.PurchaseDate, err)
	}
	purchaseTime, err := time.Parse(validation.PurchaseTimeLayout, *req.PurchaseTime)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("%w: purchaseTime %q: %v", apperrors.ErrValidation, *req.PurchaseTime, err)
	}
	total, err := decimal.NewFromString(*req.Total)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("%w: total %q: %v", apperrors.ErrValidation, *req.Total, err)
	}

	items := make([]domain.Item, len(*req.Items))
	for i, item := range *req.Items {
		mapped, err := toDomainItem(item)
		if err != nil {
			return domain.Receipt{}, fmt.Errorf("item %d: %w", i, err)
		}
		items[i] = mapped
	}

	return domain.Receipt{
		Retailer:     *req.Retailer,
		PurchaseDate: purchaseDate,
		PurchaseTime: purchaseTime,
		Items:        items,
		Total:        total,
	}, nil
}

func toDomainItem(item dto.ItemRequest) (domain.Item, error) {
	if item.ShortDescription == nil || item.Price == nil {
		return domain.Item{}, fmt.Errorf("%w: item is missing required fields", apperrors.ErrValidation)
	}
	price, err := decimal.NewFromString(*item.Price)
	if err != nil {
		return domain.Item{}, fmt.Errorf("%w: price %q: %v", apperrors.ErrValidation, *item.Price, err)
	}
	return domain.Item{
		ShortDescription: *item.ShortDescription,
		Price:            price,
	}, nil
}
