// Comando migrate: aplica (up, por defecto) o lista (status) las migraciones embebidas.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/woodini-site/internal/infrastructure/postgres"
	"github.com/jhoicas/woodini-site/pkg/config"
	"github.com/jhoicas/woodini-site/pkg/logger"
)

func main() {
	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "migrate"})
	if err := cfg.RequireDatabase(); err != nil {
		log.Fatal().Err(err).Msg("configuración incompleta")
	}

	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	switch cmd {
	case "up":
		err = postgres.Migrate(pool, log)
	case "status":
		err = postgres.MigrationStatus(pool, log)
	default:
		fmt.Fprintf(os.Stderr, "comando desconocido %q (use up | status)\n", cmd)
		pool.Close()
		os.Exit(2)
	}
	if err != nil {
		log.Error().Err(err).Str("cmd", cmd).Msg("migraciones")
		pool.Close()
		os.Exit(1)
	}
	log.Info().Str("cmd", cmd).Msg("migraciones completadas")
}
