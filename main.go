package main

import (
	"log"

	"github.com/starboy1402/GreenMed/config"
	"github.com/starboy1402/GreenMed/routes"
)

func main() {
	cfg := config.LoadConfig()

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := config.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	if err := config.SeedAdmin(db, cfg); err != nil {
		log.Fatal("Failed to seed admin user:", err)
	}

	app := routes.NewApp(db, cfg)

	log.Printf("🚀 Server starting on host %s in port %s mode", cfg.Host, cfg.AppPort)

	if err := app.Listen(cfg.Host + ":" + cfg.AppPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
