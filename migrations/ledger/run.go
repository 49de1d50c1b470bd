package main

import (
	"embed"

	"github.com/sitebooks/backend/pkg/config"
	"github.com/sitebooks/backend/pkg/migrator"
)

//go:embed *.sql
var MigrationsFS embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if cfg.InMemory() {
		panic("DATABASE_URL must be set to run migrations")
	}
	if err := migrator.RunMigrations(cfg.DatabaseURL, MigrationsFS); err != nil {
		panic(err)
	}
}
