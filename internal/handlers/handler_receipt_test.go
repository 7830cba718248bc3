package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SscSPs/receipt_processor/internal/adapters/database/memory"
	"github.com/SscSPs/receipt_processor/internal/apperrors"
	"github.com/SscSPs/receipt_processor/internal/core/domain"
	portssvc "github.com/SscSPs/receipt_processor/internal/core/ports/services"
	"github.com/SscSPs/receipt_processor/internal/core/services"
	"github.com/SscSPs/receipt_processor/internal/dto"
	"github.com/SscSPs/receipt_processor/internal/handlers"
	"github.com/SscSPs/receipt_processor/internal/middleware"
	"github.com/SscSPs/receipt_processor/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Mock ReceiptService ---
type MockReceiptService struct {
	mock.Mock
}

func (m *MockReceiptService) ProcessReceipt(ctx context.Context, req dto.ProcessReceiptRequest) (*domain.ScoredReceipt, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScoredReceipt), args.Error(1)
}

func (m *MockReceiptService) GetReceiptPoints(ctx context.Context, receiptID string) (*domain.ScoredReceipt, error) {
	args := m.Called(ctx, receiptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScoredReceipt), args.Error(1)
}

func (m *MockReceiptService) CountReceipts(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.ReceiptSvcFacade = (*MockReceiptService)(nil)

const targetReceiptJSON = `{
  "retailer": "Target",
  "purchaseDate": "2022-01-01",
  "purchaseTime": "13:01",
  "items": [
    {"shortDescription": "Mountain Dew 12PK", "price": "6.49"},
    {"shortDescription": "Emils Cheese Pizza", "price": "12.25"},
    {"shortDescription": "Knorr Creamy Chicken", "price": "1.26"},
    {"shortDescription": "Doritos Nacho Cheese", "price": "3.35"},
    {"shortDescription": "   Klarbrunn 12-PK 12 FL OZ  ", "price": "12.00"}
  ],
  "total": "35.35"
}`

const cornerMarketReceiptJSON = `{
  "retailer": "M&M Corner Market",
  "purchaseDate": "2022-03-20",
  "purchaseTime": "14:33",
  "items": [
    {"shortDescription": "Gatorade", "price": "2.25"},
    {"shortDescription": "Gatorade", "price": "2.25"},
    {"shortDescription": "Gatorade", "price": "2.25"},
    {"shortDescription": "Gatorade", "price": "2.25"}
  ],
  "total": "9.00"
}`

// --- Test Suite ---
type ReceiptHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockReceiptService *MockReceiptService
}

func (suite *ReceiptHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.Use(middleware.StructuredLoggingMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))))

	suite.mockReceiptService = new(MockReceiptService)
	handlers.RegisterReceiptRoutes(&suite.router.RouterGroup, suite.mockReceiptService)
}

func (suite *ReceiptHandlerTestSuite) post(body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, "/receipts/process", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ReceiptHandlerTestSuite) get(path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *ReceiptHandlerTestSuite) TestProcessReceipt_Success() {
	receiptID := uuid.NewString()
	suite.mockReceiptService.On("ProcessReceipt", mock.Anything, mock.MatchedBy(func(req dto.ProcessReceiptRequest) bool {
		return req.Retailer != nil && *req.Retailer == "Target" && req.Items != nil && len(*req.Items) == 5
	})).Return(&domain.ScoredReceipt{ID: receiptID, Points: 28}, nil).Once()

	w := suite.post(targetReceiptJSON)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ProcessReceiptResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(receiptID, resp.ID)
	suite.NotEmpty(w.Header().Get(middleware.RequestIDHeader))
	suite.mockReceiptService.AssertExpectations(suite.T())
}

func (suite *ReceiptHandlerTestSuite) TestProcessReceipt_NoData() {
	bodies := map[string]string{
		"empty body":   "",
		"invalid json": "{not json",
		"empty object": "{}",
		"array":        `[{"retailer": "Target"}]`,
		"null":         "null",
		"string":       `"receipt"`,
	}

	for name, body := range bodies {
		suite.Run(name, func() {
			w := suite.post(body)

			suite.Equal(http.StatusBadRequest, w.Code)
			suite.JSONEq(`{"error": "No JSON data provided"}`, w.Body.String())
		})
	}
	suite.mockReceiptService.AssertNotCalled(suite.T(), "ProcessReceipt", mock.Anything, mock.Anything)
}

func (suite *ReceiptHandlerTestSuite) TestProcessReceipt_WrongFieldType() {
	tests := map[string]struct {
		body string
		want string
	}{
		"numeric retailer": {
			body: `{"retailer": 42, "purchaseDate": "2022-01-01", "purchaseTime": "13:01", "items": [{"shortDescription": "Gum", "price": "1.00"}], "total": "1.00"}`,
			want: `{"errors": ["retailer must be a string"]}`,
		},
		"items not a list": {
			body: `{"retailer": "Target", "purchaseDate": "2022-01-01", "purchaseTime": "13:01", "items": "gum", "total": "1.00"}`,
			want: `{"errors": ["items must be a non-empty list"]}`,
		},
		"wrong-typed retailer with other fields absent": {
			body: `{"retailer": 5}`,
			want: `{"errors": [
				"Missing field: purchaseDate",
				"Missing field: purchaseTime",
				"Missing field: items",
				"Missing field: total"
			]}`,
		},
		"several wrong types with one field absent": {
			body: `{"retailer": 5, "purchaseDate": "2022-01-01", "purchaseTime": "13:01", "total": 1}`,
			want: `{"errors": ["Missing field: items"]}`,
		},
		"numeric total": {
			body: `{"retailer": "Target", "purchaseDate": "2022-01-01", "purchaseTime": "13:01", "items": [{"shortDescription": "Gum", "price": "1.00"}], "total": 1.00}`,
			want: `{"errors": ["Invalid total format"]}`,
		},
	}

	for name, tt := range tests {
		suite.Run(name, func() {
			w := suite.post(tt.body)

			suite.Equal(http.StatusBadRequest, w.Code)
			suite.JSONEq(tt.want, w.Body.String())
		})
	}
	suite.mockReceiptService.AssertNotCalled(suite.T(), "ProcessReceipt", mock.Anything, mock.Anything)
}

func (suite *ReceiptHandlerTestSuite) TestProcessReceipt_ValidationErrors() {
	messages := []string{"Missing field: items", "Missing field: total"}
	suite.mockReceiptService.On("ProcessReceipt", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewValidationError(messages)).Once()

	w := suite.post(`{"retailer": "Target", "purchaseDate": "2022-01-01", "purchaseTime": "13:01"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`{"errors": ["Missing field: items", "Missing field: total"]}`, w.Body.String())
	suite.mockReceiptService.AssertExpectations(suite.T())
}

func (suite *ReceiptHandlerTestSuite) TestProcessReceipt_ServiceError() {
	suite.mockReceiptService.On("ProcessReceipt", mock.Anything, mock.Anything).
		Return(nil, assert.AnError).Once()

	w := suite.post(targetReceiptJSON)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.JSONEq(`{"error": "Failed to process receipt"}`, w.Body.String())
	suite.mockReceiptService.AssertExpectations(suite.T())
}

func (suite *ReceiptHandlerTestSuite) TestGetReceiptPoints_Success() {
	receiptID := uuid.NewString()
	suite.mockReceiptService.On("GetReceiptPoints", mock.Anything, receiptID).
		Return(&domain.ScoredReceipt{ID: receiptID, Points: 109}, nil).Once()

	w := suite.get("/receipts/" + receiptID + "/points")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"points": 109}`, w.Body.String())
	suite.mockReceiptService.AssertExpectations(suite.T())
}

func (suite *ReceiptHandlerTestSuite) TestGetReceiptPoints_NotFound() {
	suite.mockReceiptService.On("GetReceiptPoints", mock.Anything, "unknown").
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.get("/receipts/unknown/points")

	suite.Equal(http.StatusNotFound, w.Code)
	suite.JSONEq(`{"error": "Receipt not found"}`, w.Body.String())
	suite.mockReceiptService.AssertExpectations(suite.T())
}

func (suite *ReceiptHandlerTestSuite) TestGetReceiptPoints_ServiceError() {
	suite.mockReceiptService.On("GetReceiptPoints", mock.Anything, "broken").
		Return(nil, assert.AnError).Once()

	w := suite.get("/receipts/broken/points")

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.mockReceiptService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestReceiptHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ReceiptHandlerTestSuite))
}

// newTestRouter wires the real service and in-memory store the same way the server does.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))))
	cfg := &config.Config{Host: "127.0.0.1", Port: "8080", IsProduction: true, CORSAllowedOrigins: []string{"*"}}
	handlers.RegisterRoutes(r, cfg, services.NewServiceContainer(memory.NewRepositoryProvider()))
	return r
}

func processAndFetch(t *testing.T, r *gin.Engine, body string) int64 {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/receipts/process", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var processed dto.ProcessReceiptResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &processed))
	_, err := uuid.Parse(processed.ID)
	require.NoError(t, err, "receipt IDs are uuids")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/receipts/"+processed.ID+"/points", nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var points dto.ReceiptPointsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &points))
	return points.Points
}

func TestReceiptRoundTrip(t *testing.T) {
	r := newTestRouter(t)

	assert.Equal(t, int64(28), processAndFetch(t, r, targetReceiptJSON))
	assert.Equal(t, int64(109), processAndFetch(t, r, cornerMarketReceiptJSON))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok", "receipts": 2}`, w.Body.String())
}

func TestReceiptRoundTrip_UnknownID(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/receipts/"+uuid.NewString()+"/points", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "Receipt not found"}`, w.Body.String())
}

func TestReceiptRoundTrip_ValidationErrors(t *testing.T) {
	r := newTestRouter(t)
	body := `{"retailer": "Target", "purchaseDate": "2022-01-01", "purchaseTime": "13:01", "items": [{"shortDescription": "  ", "price": "0"}], "total": "abc"}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/receipts/process", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"errors": [
		"Item 0 description is empty after trimming",
		"Item 0 price must be positive",
		"Invalid total format"
	]}`, w.Body.String())
}

func TestReceiptRoundTrip_HugeExponentRejected(t *testing.T) {
	r := newTestRouter(t)
	body := `{"retailer": "Target", "purchaseDate": "2022-01-01", "purchaseTime": "13:01", "items": [{"shortDescription": "Gum", "price": "1e100000000"}], "total": "1e100000000"}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/receipts/process", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"errors": ["Item 0 has invalid price format", "Invalid total format"]}`, w.Body.String())
}

func TestSwaggerRouteOnlyOutsideProduction(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cfg := &config.Config{IsProduction: false}
	handlers.RegisterRoutes(r, cfg, services.NewServiceContainer(memory.NewRepositoryProvider()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/receipts/process")

	w = httptest.NewRecorder()
	r = newTestRouter(t)
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
