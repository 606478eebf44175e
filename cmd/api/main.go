package main

import (
	"github.com/zach-gitere/olist-warehouse/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Olist Warehouse API
// @version         1.0
// @description     ELT service staging the Olist e-commerce export tables and publishing the fct_orders fact table, with a non-negative order value quality gate.

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
