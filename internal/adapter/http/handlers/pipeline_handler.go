package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zach-gitere/olist-warehouse/internal/adapter/http/dto/request"
	"github.com/zach-gitere/olist-warehouse/internal/adapter/http/dto/response"
	"github.com/zach-gitere/olist-warehouse/internal/domain/entities"
	"github.com/zach-gitere/olist-warehouse/internal/usecase"
	"github.com/zach-gitere/olist-warehouse/pkg"
)

var errInvalidRunPayload = pkg.NewDomainErrorSimple("INVALID_RUN_INPUT", "Invalid run payload", http.StatusBadRequest)

// PipelineHandler exposes pipeline runs over HTTP: triggering a run and
// inspecting its record and quality gate output afterwards.

type PipelineHandler struct {
	usecase usecase.IPipelineUseCase
}

func NewPipelineHandler(uc usecase.IPipelineUseCase) *PipelineHandler {
	return &PipelineHandler{usecase: uc}
}

// TriggerRun executes the full transform chain synchronously and returns the
// run record. A run blocked by the quality gate answers 422 with the full
// record, violations included, so the caller gets the pass/fail signal and
// the offending rows in one response.
func (h *PipelineHandler) TriggerRun(c *gin.Context) {
	var payload request.RunRequest
	// The body is optional; an empty trigger means a default run.
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidRunPayload.HTTPStatus, errInvalidRunPayload.ToHTTPError())
		return
	}

	run, err := h.usecase.RunPipeline(c.Request.Context(), usecase.RunOptions{DryRun: payload.DryRun})
	if errors.Is(err, usecase.ErrRunBlocked) {
		c.JSON(http.StatusUnprocessableEntity, response.FromPipelineRun(run))
		return
	}
	if err != nil {
		appErr := mapRunError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPipelineRun(run))
}

func (h *PipelineHandler) GetRun(c *gin.Context) {
	run, err := h.usecase.GetRun(c.Request.Context(), c.Param("run_id"))
	if err != nil {
		appErr := mapRunError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPipelineRun(run))
}

// ListViolations returns the quality gate row-set of a run; an empty array
// means the gate passed.
func (h *PipelineHandler) ListViolations(c *gin.Context) {
	violations, err := h.usecase.ListViolations(c.Request.Context(), c.Param("run_id"))
	if err != nil {
		appErr := mapRunError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res := response.FromQualityViolations(violations)
	if res == nil {
		res = []response.ViolationResponse{}
	}
	c.JSON(http.StatusOK, res)
}

func mapRunError(err error) *pkg.AppError {
	var schemaErr *entities.SchemaError
	switch {
	case errors.Is(err, usecase.ErrInvalidRunID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRunNotFound):
		return pkg.NewDomainErrorSimple("RUN_NOT_FOUND", "Pipeline run not found", http.StatusNotFound)
	case errors.As(err, &schemaErr):
		return pkg.NewDomainError("SOURCE_SCHEMA_ERROR", schemaErr.Error(), err, http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
