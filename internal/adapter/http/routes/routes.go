package routes

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/zach-gitere/olist-warehouse/docs" // swag-generated OpenAPI spec
	"github.com/zach-gitere/olist-warehouse/internal/adapter/http/handlers"
	"github.com/zach-gitere/olist-warehouse/internal/adapter/messaging"
	"github.com/zach-gitere/olist-warehouse/internal/adapter/persistence/repository"
	"github.com/zach-gitere/olist-warehouse/internal/infrastructure/database"
	kafkainfra "github.com/zach-gitere/olist-warehouse/internal/infrastructure/messaging"
	"github.com/zach-gitere/olist-warehouse/internal/usecase"
	"github.com/zach-gitere/olist-warehouse/internal/usecase/interfaces"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	sourceRepo := repository.NewSourceDynamoRepository(ddb)
	warehouseRepo := repository.NewWarehouseDynamoRepository(ddb)
	runRepo := repository.NewRunDynamoRepository(ddb)

	// The run notifier is optional: without brokers the pipeline still runs,
	// it just emits no completion signal.
	var notifier interfaces.IRunNotifier
	writer, err := kafkainfra.NewRunsKafkaWriter()
	if err != nil {
		log.Printf("Run notifier not configured: %v", err)
	} else {
		notifier = messaging.NewKafkaRunNotifier(writer)
	}

	pipelineUseCase := usecase.NewPipelineUseCase(sourceRepo, warehouseRepo, runRepo, notifier)

	pipelineHandler := handlers.NewPipelineHandler(pipelineUseCase)
	factOrderHandler := handlers.NewFactOrderHandler(pipelineUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWarehouseRoutes(v1, pipelineHandler, factOrderHandler)
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
