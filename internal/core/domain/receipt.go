package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is a single line entry within a Receipt.
type Item struct {
	ShortDescription string          `json:"shortDescription"` // Untrimmed, as submitted
	Price            decimal.Decimal `json:"price"`            // Positive; precise decimal type
}

// Receipt is a purchase record that has passed validation.
type Receipt struct {
	Retailer     string          `json:"retailer"`
	PurchaseDate time.Time       `json:"purchaseDate"` // Date only, UTC midnight
	PurchaseTime time.Time       `json:"purchaseTime"` // Only hour and minute are meaningful
	Items        []Item          `json:"items"`        // At least one entry
	Total        decimal.Decimal `json:"total"`        // Positive; precise decimal type
}

// ScoredReceipt is what the store keeps for a processed receipt.
// It is never modified after creation.
type ScoredReceipt struct {
	ID          string    `json:"id"`
	Points      int64     `json:"points"`
	ProcessedAt time.Time `json:"processedAt"`
}
