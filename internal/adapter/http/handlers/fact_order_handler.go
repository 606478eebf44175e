package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/zach-gitere/olist-warehouse/internal/adapter/http/dto/response"
	"github.com/zach-gitere/olist-warehouse/internal/usecase"
	"github.com/zach-gitere/olist-warehouse/pkg"
)

// FactOrderHandler serves the published fct_orders snapshot, the sole
// artifact consumed by downstream reporting tools.

type FactOrderHandler struct {
	usecase usecase.IPipelineUseCase
}

func NewFactOrderHandler(uc usecase.IPipelineUseCase) *FactOrderHandler {
	return &FactOrderHandler{usecase: uc}
}

func (h *FactOrderHandler) ListFactOrders(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid limit", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		limit = parsed
	}

	facts, err := h.usecase.ListPublishedFactOrders(c.Request.Context(), limit)
	if err != nil {
		appErr := mapFactOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFactOrders(facts))
}

func mapFactOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNoPublishedFactTable):
		return pkg.NewDomainErrorSimple("NO_PUBLISHED_FACT_TABLE", "No fact table has been published yet", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
