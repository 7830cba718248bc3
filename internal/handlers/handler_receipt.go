package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/receipt_processor/internal/apperrors"
	portssvc "github.com/SscSPs/receipt_processor/internal/core/ports/services"
	"github.com/SscSPs/receipt_processor/internal/dto"
	"github.com/SscSPs/receipt_processor/internal/middleware"
	"github.com/SscSPs/receipt_processor/internal/utils/validation"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const (
	errNoJSONData      = "No JSON data provided"
	errReceiptNotFound = "Receipt not found"
)

// receiptHandler handles HTTP requests related to receipts.
type receiptHandler struct {
	receiptService portssvc.ReceiptSvcFacade
}

// newReceiptHandler creates a new receiptHandler.
func newReceiptHandler(rs portssvc.ReceiptSvcFacade) *receiptHandler {
	return &receiptHandler{
		receiptService: rs,
	}
}

// RegisterReceiptRoutes registers routes related to receipts.
func RegisterReceiptRoutes(rg *gin.RouterGroup, receiptService portssvc.ReceiptSvcFacade) {
	h := newReceiptHandler(receiptService)

	receipts := rg.Group("/receipts")
	{
		receipts.POST("/process", h.processReceipt)
		receipts.GET("/:id/points", h.getReceiptPoints)
	}
}

// processReceipt godoc
// @Summary Process a receipt
// @Description Validates a receipt, scores it and stores the points under a new ID
// @Tags receipts
// @Accept  json
// @Produce  json
// @Param   receipt body dto.ProcessReceiptRequest true "Receipt"
// @Success 200 {object} dto.ProcessReceiptResponse
// @Failure 400 {object} dto.ErrorResponse "No JSON data provided"
// @Failure 400 {object} dto.ValidationErrorResponse "Validation errors"
// @Failure 500 {object} dto.ErrorResponse "Failed to process receipt"
// @Router /receipts/process [post]
func (h *receiptHandler) processReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	raw, err := c.GetRawData()
	fields, ok := jsonObjectFields(raw)
	if err != nil || !ok {
		logger.Warn("Receipt body missing or not a JSON object")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: errNoJSONData})
		return
	}

	var req dto.ProcessReceiptRequest
	if err := binding.JSON.BindBody(raw, &req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			if missing := validation.MissingFieldsInObject(req, fields); len(missing) > 0 {
				logger.Warn("Receipt is missing required fields", slog.Any("errors", missing))
				c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{Errors: missing})
				return
			}
			logger.Warn("Receipt field has the wrong JSON type", slog.String("field", typeErr.Field))
			c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{Errors: []string{validation.TypeMismatchMessage(typeErr.Field)}})
			return
		}
		logger.Warn("Failed to bind receipt JSON", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: errNoJSONData})
		return
	}

	scored, err := h.receiptService.ProcessReceipt(c.Request.Context(), req)
	if err != nil {
		var validationErr *apperrors.ValidationError
		if errors.As(err, &validationErr) {
			logger.Warn("Receipt failed validation", slog.Any("errors", validationErr.Messages))
			c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{Errors: validationErr.Messages})
			return
		}
		logger.Error("Failed to process receipt in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to process receipt"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProcessReceiptResponse(scored))
}

// getReceiptPoints godoc
// @Summary Get points for a receipt
// @Description Returns the points awarded to a previously processed receipt
// @Tags receipts
// @Produce  json
// @Param   id path string true "Receipt ID"
// @Success 200 {object} dto.ReceiptPointsResponse
// @Failure 404 {object} dto.ErrorResponse "Receipt not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve receipt points"
// @Router /receipts/{id}/points [get]
func (h *receiptHandler) getReceiptPoints(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	receiptID := c.Param("id")
	logger = logger.With(slog.String("receipt_id", receiptID))

	scored, err := h.receiptService.GetReceiptPoints(c.Request.Context(), receiptID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Receipt not found")
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: errReceiptNotFound})
		} else {
			logger.Error("Failed to get receipt points from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve receipt points"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToReceiptPointsResponse(scored))
}

// jsonObjectFields splits raw into its top-level members. ok is false unless
// raw is a JSON object with at least one key: null, arrays, scalars and {}
// all count as no data.
func jsonObjectFields(raw []byte) (fields map[string]json.RawMessage, ok bool) {
	if len(raw) == 0 {
		return nil, false
	}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, false
	}
	return fields, len(fields) > 0
}
