package main

import (
	"errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/jhoicas/Comercio-api/pkg/config"
	"github.com/jhoicas/Comercio-api/pkg/logger"
)

// Aplica las migraciones SQL de ./migrations contra la base configurada.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})

	m, err := migrate.New("file://migrations", cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("crear migrador")
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info().Msg("sin migraciones pendientes")
			return
		}
		log.Fatal().Err(err).Msg("aplicar migraciones")
	}

	log.Info().Msg("migraciones aplicadas")
}
