package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/zach-gitere/olist-warehouse/internal/adapter/http/handlers/mocks"
	"github.com/zach-gitere/olist-warehouse/internal/domain/entities"
	"github.com/zach-gitere/olist-warehouse/internal/usecase"
)

func TestPipelineHandler_TriggerRun(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPipelineUseCase(ctrl)
		h := NewPipelineHandler(uc)

		r := gin.New()
		r.POST("/v1/runs", h.TriggerRun)

		req := httptest.NewRequest(http.MethodPost, "/v1/runs", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty body triggers default run", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPipelineUseCase(ctrl)
		h := NewPipelineHandler(uc)

		r := gin.New()
		r.POST("/v1/runs", h.TriggerRun)

		now := time.Now().UTC()
		uc.EXPECT().RunPipeline(gomock.Any(), usecase.RunOptions{}).Return(entities.PipelineRun{ID: "run-1", Status: entities.RunStatusSucceeded, StartedAt: now, FinishedAt: &now, FactRowCount: 3}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/runs", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["run_id"] != "run-1" || body["status"] != "succeeded" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("dry run flag forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPipelineUseCase(ctrl)
		h := NewPipelineHandler(uc)

		r := gin.New()
		r.POST("/v1/runs", h.TriggerRun)

		uc.EXPECT().RunPipeline(gomock.Any(), usecase.RunOptions{DryRun: true}).Return(entities.PipelineRun{ID: "run-1", Status: entities.RunStatusSucceeded, DryRun: true}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/runs", bytes.NewBufferString(`{"dry_run":true}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("blocked run answers 422 with the full record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPipelineUseCase(ctrl)
		h := NewPipelineHandler(uc)

		r := gin.New()
		r.POST("/v1/runs", h.TriggerRun)

		blocked := entities.PipelineRun{
			ID:         "run-1",
			Status:     entities.RunStatusBlocked,
			Violations: []entities.QualityViolation{{OrderID: "o-2", TotalOrderValue: -110}},
		}
		uc.EXPECT().RunPipeline(gomock.Any(), usecase.RunOptions{}).Return(blocked, usecase.ErrRunBlocked)

		req := httptest.NewRequest(http.MethodPost, "/v1/runs", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "blocked" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if body["violation_count"] != float64(1) {
			t.Fatalf("expected one violation in body, got: %s", w.Body.String())
		}
	})

	t.Run("schema error answers 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPipelineUseCase(ctrl)
		h := NewPipelineHandler(uc)

		r := gin.New()
		r.POST("/v1/runs", h.TriggerRun)

		schemaErr := entities.NewSchemaError("raw_order_items", "price", "abc", "not a decimal")
		uc.EXPECT().RunPipeline(gomock.Any(), usecase.RunOptions{}).Return(entities.PipelineRun{}, schemaErr)

		req := httptest.NewRequest(http.MethodPost, "/v1/runs", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("unexpected error answers 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPipelineUseCase(ctrl)
		h := NewPipelineHandler(uc)

		r := gin.New()
		r.POST("/v1/runs", h.TriggerRun)

		uc.EXPECT().RunPipeline(gomock.Any(), usecase.RunOptions{}).Return(entities.PipelineRun{}, errors.New("dynamo down"))

		req := httptest.NewRequest(http.MethodPost, "/v1/runs", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestPipelineHandler_GetRun(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPipelineUseCase(ctrl)
		h := NewPipelineHandler(uc)

		r := gin.New()
		r.GET("/v1/runs/:run_id", h.GetRun)

		uc.EXPECT().GetRun(gomock.Any(), "run-1").Return(entities.PipelineRun{ID: "run-1", Status: entities.RunStatusSucceeded}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/runs/run-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPipelineUseCase(ctrl)
		h := NewPipelineHandler(uc)

		r := gin.New()
		r.GET("/v1/runs/:run_id", h.GetRun)

		uc.EXPECT().GetRun(gomock.Any(), "missing").Return(entities.PipelineRun{}, usecase.ErrRunNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/runs/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestPipelineHandler_ListViolations(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("clean run answers empty array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPipelineUseCase(ctrl)
		h := NewPipelineHandler(uc)

		r := gin.New()
		r.GET("/v1/runs/:run_id/violations", h.ListViolations)

		uc.EXPECT().ListViolations(gomock.Any(), "run-1").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/runs/run-1/violations", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "[]" {
			t.Fatalf("expected empty array, got %s", w.Body.String())
		}
	})

	t.Run("violations returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPipelineUseCase(ctrl)
		h := NewPipelineHandler(uc)

		r := gin.New()
		r.GET("/v1/runs/:run_id/violations", h.ListViolations)

		uc.EXPECT().ListViolations(gomock.Any(), "run-1").Return([]entities.QualityViolation{{OrderID: "o-2", TotalOrderValue: -110}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/runs/run-1/violations", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["order_id"] != "o-2" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("invalid run id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPipelineUseCase(ctrl)
		h := NewPipelineHandler(uc)

		r := gin.New()
		r.GET("/v1/runs/:run_id/violations", h.ListViolations)

		uc.EXPECT().ListViolations(gomock.Any(), "  ").Return(nil, usecase.ErrInvalidRunID)

		req := httptest.NewRequest(http.MethodGet, "/v1/runs/%20%20/violations", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestMapRunError(t *testing.T) {
	if got := mapRunError(usecase.ErrInvalidRunID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapRunError(usecase.ErrRunNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapRunError(entities.NewSchemaError("raw_orders", "order_id", "", "empty key")); got.HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422")
	}
	if got := mapRunError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
