package main

import (
	"log"
	"salomao_ai/internal/adapter/http/routes"
	"salomao_ai/internal/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Salomão AI API
// @version         1.0
// @description     Guided financial conversation that ends in a financial report.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	routes.Run(cfg)
}
