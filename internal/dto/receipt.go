package dto

import (
	"github.com/SscSPs/receipt_processor/internal/core/domain"
)

// ProcessReceiptRequest is the submitted receipt as decoded from JSON or YAML.
// Fields are pointers so an absent field can be told apart from an empty one.
type ProcessReceiptRequest struct {
	Retailer     *string        `json:"retailer" yaml:"retailer" validate:"required"`
	PurchaseDate *string        `json:"purchaseDate" yaml:"purchaseDate" validate:"required"`
	PurchaseTime *string        `json:"purchaseTime" yaml:"purchaseTime" validate:"required"`
	Items        *[]ItemRequest `json:"items" yaml:"items" validate:"required"`
	Total        *string        `json:"total" yaml:"total" validate:"required"`
}

// ItemRequest is a single submitted line item.
type ItemRequest struct {
	ShortDescription *string `json:"shortDescription" yaml:"shortDescription"`
	Price            *string `json:"price" yaml:"price"`
}

// ProcessReceiptResponse is returned after a receipt has been scored and stored.
type ProcessReceiptResponse struct {
	ID string `json:"id" example:"7fb1377b-b223-49d9-a31a-5a02701dd310"`
}

// ReceiptPointsResponse is returned when looking up a receipt's points.
type ReceiptPointsResponse struct {
	Points int64 `json:"points" example:"28"`
}

// ValidationErrorResponse lists every validation failure for a submitted receipt.
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}

// ErrorResponse is a single top-level error message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Receipts int    `json:"receipts" example:"3"`
}

// ToProcessReceiptResponse converts a domain.ScoredReceipt to ProcessReceiptResponse DTO
func ToProcessReceiptResponse(scored *domain.ScoredReceipt) ProcessReceiptResponse {
	return ProcessReceiptResponse{ID: scored.ID}
}

// ToReceiptPointsResponse converts a domain.ScoredReceipt to ReceiptPointsResponse DTO
func ToReceiptPointsResponse(scored *domain.ScoredReceipt) ReceiptPointsResponse {
	return ReceiptPointsResponse{Points: scored.Points}
}

// StringPtr returns a pointer to s. Handy for building requests in code.
func StringPtr(s string) *string {
	return &s
}
