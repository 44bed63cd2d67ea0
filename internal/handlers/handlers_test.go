package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SscSPs/hardware_shop_erp/internal/core/services"
	"github.com/SscSPs/hardware_shop_erp/internal/dto"
	"github.com/SscSPs/hardware_shop_erp/internal/handlers"
	"github.com/SscSPs/hardware_shop_erp/internal/platform/config"
	"github.com/SscSPs/hardware_shop_erp/internal/repositories/memory"
	"github.com/SscSPs/hardware_shop_erp/internal/utils/export"
	"github.com/SscSPs/hardware_shop_erp/internal/utils/pagination"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type HandlersTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func (s *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	container := services.NewServiceContainer(memory.NewRepositoryProvider(memory.NewStore()))
	s.router = gin.New()
	handlers.RegisterRoutes(s.router, &config.Config{IsProduction: true}, container)
}

func (s *HandlersTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlersTestSuite) create(path string, body any) string {
	w := s.do(http.MethodPost, path, body)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.CreatedResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Require().NotEmpty(resp.ID)
	return resp.ID
}

func (s *HandlersTestSuite) stock() []dto.StockLevelResponse {
	w := s.do(http.MethodGet, "/stock", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var levels []dto.StockLevelResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &levels))
	return levels
}

func (s *HandlersTestSuite) TestHome() {
	w := s.do(http.MethodGet, "/", nil)
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"message":"Hardware Shop ERP Backend Running"}`, w.Body.String())
}

func (s *HandlersTestSuite) TestPurchaseThenSaleUpdatesStock() {
	itemID := s.create("/items", map[string]any{"name": "Hammer", "sku": "HAM-1", "opening_stock": 10})
	vendorID := s.create("/vendors", map[string]any{"name": "Acme Tools"})

	s.create("/purchases", map[string]any{
		"vendor_id": vendorID,
		"items":     []map[string]any{{"item_id": itemID, "qty": 5, "cost": 100}},
	})
	levels := s.stock()
	s.Require().Len(levels, 1)
	s.True(decimal.NewFromInt(15).Equal(levels[0].OnHand), levels[0].OnHand.String())
	s.Equal("pcs", levels[0].Unit)

	s.create("/sales", map[string]any{
		"items": []map[string]any{{"item_id": strings.ToUpper(itemID), "qty": 3, "price": 150}},
	})
	levels = s.stock()
	s.True(decimal.NewFromInt(12).Equal(levels[0].OnHand), levels[0].OnHand.String())

	w := s.do(http.MethodGet, "/purchases", nil)
	s.Equal(http.StatusOK, w.Code)
	var purchases []dto.PurchaseResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &purchases))
	s.Require().Len(purchases, 1)
	s.Equal(vendorID, purchases[0].VendorID)
}

func (s *HandlersTestSuite) TestDuplicateSKU() {
	s.create("/items", map[string]any{"name": "Hammer", "sku": "HAM-1"})

	w := s.do(http.MethodPost, "/items", map[string]any{"name": "Other", "sku": "HAM-1"})
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, "/items", nil)
	var items []dto.ItemResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &items))
	s.Len(items, 1)
}

func (s *HandlersTestSuite) TestBadRequests() {
	tests := []struct {
		name string
		path string
		body any
	}{
		{"malformed json", "/items", `{"name":`},
		{"missing sku", "/items", map[string]any{"name": "Hammer"}},
		{"bad vendor email", "/vendors", map[string]any{"name": "Acme", "email": "nope"}},
		{"malformed vendor id", "/purchases", map[string]any{"vendor_id": "abc", "items": []any{}}},
		{"malformed item id", "/purchases", map[string]any{
			"vendor_id": "8a0c8a4e-7f61-4b5e-9a52-4c3f0f2f6a11",
			"items":     []map[string]any{{"item_id": "abc", "qty": 1, "cost": 1}},
		}},
		{"zero qty", "/sales", map[string]any{
			"items": []map[string]any{{"item_id": "8a0c8a4e-7f61-4b5e-9a52-4c3f0f2f6a11", "qty": 0, "price": 1}},
		}},
		{"unknown payment ref type", "/payments", map[string]any{
			"ref_type": "refund", "ref_id": "8a0c8a4e-7f61-4b5e-9a52-4c3f0f2f6a11", "amount": 10,
		}},
		{"malformed payment ref id", "/payments", map[string]any{"ref_type": "sale", "ref_id": "abc", "amount": 10}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := s.do(http.MethodPost, tt.path, tt.body)
			s.Equal(http.StatusBadRequest, w.Code, w.Body.String())
			var resp dto.ErrorResponse
			s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
			s.NotEmpty(resp.Error)
		})
	}

	w := s.do(http.MethodGet, "/purchases", nil)
	s.JSONEq(`[]`, w.Body.String())
	s.Empty(s.stock())
}

func (s *HandlersTestSuite) TestSchemaAndHealth() {
	w := s.do(http.MethodGet, "/schema", nil)
	s.Equal(http.StatusOK, w.Code)
	var schema dto.SchemaResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &schema))
	s.Contains(schema.Collections, "stockmovement")

	w = s.do(http.MethodGet, "/test", nil)
	s.Equal(http.StatusOK, w.Code)
	var health dto.HealthResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &health))
	s.Equal(services.BackendRunning, health.Backend)
	s.Equal(services.DatabaseConnected, health.Database)

	w = s.do(http.MethodGet, "/health", nil)
	s.Equal("OK", w.Body.String())
}

func (s *HandlersTestSuite) TestMovementPaging() {
	itemID := s.create("/items", map[string]any{"name": "Nails", "sku": "N-1"})
	s.create("/sales", map[string]any{
		"items": []map[string]any{
			{"item_id": itemID, "qty": 1, "price": 1},
			{"item_id": itemID, "qty": 2, "price": 1},
			{"item_id": itemID, "qty": 3, "price": 1},
		},
	})

	w := s.do(http.MethodGet, "/stock/movements?limit=2&item_id="+itemID, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var page dto.ListMovementsResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &page))
	s.Require().Len(page.Movements, 2)
	s.Require().NotNil(page.NextToken)
	s.Equal("out", page.Movements[0].Type)
	s.True(decimal.NewFromInt(1).Equal(page.Movements[0].Qty))

	w = s.do(http.MethodGet, "/stock/movements?limit=2&next_token="+*page.NextToken, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var rest dto.ListMovementsResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &rest))
	s.Require().Len(rest.Movements, 1)
	s.True(decimal.NewFromInt(3).Equal(rest.Movements[0].Qty))
	s.Nil(rest.NextToken)

	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/stock/movements?limit=500", nil).Code)
	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/stock/movements?item_id=abc", nil).Code)
	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/stock/movements?next_token=@@@", nil).Code)
	notUUID := pagination.EncodeMultiFieldToken("2024-01-01T00:00:00Z", "x", "0", "zz")
	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/stock/movements?next_token="+notUUID, nil).Code)

	w = s.do(http.MethodGet, "/stock/movements?item_id="+strings.ToUpper(itemID), nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var upper dto.ListMovementsResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &upper))
	s.Len(upper.Movements, 3)
}

func (s *HandlersTestSuite) TestStockExport() {
	s.create("/items", map[string]any{"name": "Hammer", "sku": "HAM-1"})

	w := s.do(http.MethodGet, "/stock/export", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal(export.XLSXContentType, w.Header().Get("Content-Type"))
	s.Contains(w.Header().Get("Content-Disposition"), "attachment")
	s.NotZero(w.Body.Len())
}
