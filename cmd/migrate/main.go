package main

import (
	"context"
	"letsconnect/internal/db"
	"letsconnect/internal/implementations/logging"
	"os"

	"github.com/caarlos0/env/v6"

	dl "letsconnect/internal/core/domain/logging"
)

type config struct {
	PostgresqlURL  string `env:"POSTGRESQL_URL,required"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"migrations"`
}

func main() {
	log := logging.NewZapLogger(false)

	cfg := config{}
	if err := env.Parse(&cfg); err != nil {
		log.Error(context.Background(), "Could not parse migration config.", dl.Entry("err", err))
		os.Exit(1)
	}

	if err := db.ApplyMigrations(cfg.PostgresqlURL, cfg.MigrationsPath); err != nil {
		log.Error(context.Background(), "Could not apply migrations.", dl.Entry("err", err))
		os.Exit(1)
	}
	log.Info(context.Background(), "Migrations applied.", dl.Entry("path", cfg.MigrationsPath))
}
