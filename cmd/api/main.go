package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/atreyakamat/VistaraBI-sub002/internal/config"
	"github.com/atreyakamat/VistaraBI-sub002/ui"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	app := ui.NewApp(cfg)

	if err := app.Run(); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
