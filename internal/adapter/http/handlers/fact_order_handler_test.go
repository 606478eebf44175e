package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/zach-gitere/olist-warehouse/internal/adapter/http/handlers/mocks"
	"github.com/zach-gitere/olist-warehouse/internal/domain/entities"
	"github.com/zach-gitere/olist-warehouse/internal/usecase"
)

func TestFactOrderHandler_ListFactOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("published snapshot returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPipelineUseCase(ctrl)
		h := NewFactOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/fact-orders", h.ListFactOrders)

		item := 15.0
		shipping := 3.0
		total := 18.0
		uc.EXPECT().ListPublishedFactOrders(gomock.Any(), 0).Return([]entities.FactOrder{
			{OrderID: "o-1", CustomerID: "c-1", Status: entities.OrderStatusDelivered, TotalItemRevenue: &item, TotalShippingRevenue: &shipping, TotalOrderValue: &total},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/fact-orders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["order_id"] != "o-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if body[0]["total_order_value"] != 18.0 {
			t.Fatalf("unexpected total_order_value: %s", w.Body.String())
		}
	})

	t.Run("limit forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPipelineUseCase(ctrl)
		h := NewFactOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/fact-orders", h.ListFactOrders)

		uc.EXPECT().ListPublishedFactOrders(gomock.Any(), 5).Return([]entities.FactOrder{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/fact-orders?limit=5", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPipelineUseCase(ctrl)
		h := NewFactOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/fact-orders", h.ListFactOrders)

		req := httptest.NewRequest(http.MethodGet, "/v1/fact-orders?limit=abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("negative limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPipelineUseCase(ctrl)
		h := NewFactOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/fact-orders", h.ListFactOrders)

		req := httptest.NewRequest(http.MethodGet, "/v1/fact-orders?limit=-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("nothing published yet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPipelineUseCase(ctrl)
		h := NewFactOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/fact-orders", h.ListFactOrders)

		uc.EXPECT().ListPublishedFactOrders(gomock.Any(), 0).Return(nil, usecase.ErrNoPublishedFactTable)

		req := httptest.NewRequest(http.MethodGet, "/v1/fact-orders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMapFactOrderError(t *testing.T) {
	if got := mapFactOrderError(usecase.ErrNoPublishedFactTable); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapFactOrderError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
