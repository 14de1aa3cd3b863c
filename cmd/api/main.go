package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"bookly-backend/internal/config"
	"bookly-backend/pkg/logger"
)

func main() {
	// .env is for local development; production relies on real
	// environment variables.
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	Serve(cfg)
}
