// Package main is the entry point for the switchbox-service application.
//
// @title           Switchbox Service API
// @version         1.0.0
// @description     API for configuring electrical installation boxes.
//
//	The service manages boxes with fixed module capacities, installs
//	compatible switch and socket products into them, derives the frames
//	and adapters each box needs, and produces a per-SKU cost summary.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/switchbox-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Project
// @tag.description Project state and client operations
//
// @tag.name        Boxes
// @tag.description Box and installed product operations
//
// @tag.name        Catalog
// @tag.description Product catalog lookups
//
// @tag.name        Complementary
// @tag.description Complementary (non-boxed) product operations
//
// @tag.name        Summary
// @tag.description Summary, frames/adapters and export endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	_ "github.com/guttosm/switchbox-service/docs" // swagger docs

	"github.com/guttosm/switchbox-service/config"
	"github.com/guttosm/switchbox-service/internal/app"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
