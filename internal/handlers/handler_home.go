package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/receipt_processor/internal/core/ports/services"
	"github.com/SscSPs/receipt_processor/internal/dto"
	"github.com/SscSPs/receipt_processor/internal/middleware"
	"github.com/gin-gonic/gin"
)

// getHealth godoc
// @Summary Show the status of server.
// @Description Reports liveness and the number of stored receipts.
// @Tags root
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func getHealth(receiptService portssvc.ReceiptReaderSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := receiptService.CountReceipts(c.Request.Context())
		if err != nil {
			middleware.GetLoggerFromContext(c).Error("Failed to count receipts", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to count receipts"})
			return
		}
		c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Receipts: count})
	}
}
