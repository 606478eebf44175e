package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/zach-gitere/olist-warehouse/internal/adapter/http/handlers"
)

const (
	PathRuns       = "/runs"
	PathFactOrders = "/fact-orders"
)

func addWarehouseRoutes(rg *gin.RouterGroup, pipelineHandler *handlers.PipelineHandler, factOrderHandler *handlers.FactOrderHandler) {
	runs := rg.Group(PathRuns)
	{
		runs.POST("", pipelineHandler.TriggerRun)
		runs.GET("/:run_id", pipelineHandler.GetRun)
		runs.GET("/:run_id/violations", pipelineHandler.ListViolations)
	}

	factOrders := rg.Group(PathFactOrders)
	{
		factOrders.GET("", factOrderHandler.ListFactOrders)
	}
}
