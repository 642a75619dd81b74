package main

import (
	"atlas/pkg/config"
	app "atlas/services/atlas/internal/app"
)

// @title           Atlas API
// @version         1.0
// @description     Learning platform: accounts, courses, classes, community feed, premium plans and donations.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

const defaultJWTSecret = "your-secret-key-change-in-production"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if cfg.JWTSecret == "" || (cfg.JWTSecret == defaultJWTSecret && !cfg.IsDevelopment()) {
		panic("JWT_SECRET must be set in environment variables")
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		panic(err)
	}

	if err := application.Run(); err != nil {
		panic(err)
	}

	application.Wait()

	if err := application.Shutdown(); err != nil {
		panic(err)
	}
}
