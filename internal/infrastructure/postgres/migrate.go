package postgres

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/jhoicas/woodini-site/pkg/logger"
)

//go:embed migrations/*.sql
var migrations embed.FS

const migrationsDir = "migrations"

// Migrate aplica las migraciones pendientes sobre el pool.
func Migrate(pool *pgxpool.Pool, log *logger.Logger) error {
	return withGoose(pool, log, func(db *sql.DB) error {
		if err := goose.Up(db, migrationsDir); err != nil {
			return fmt.Errorf("aplicar migraciones: %w", err)
		}
		return nil
	})
}

// MigrationStatus escribe en el log el estado de cada migración.
func MigrationStatus(pool *pgxpool.Pool, log *logger.Logger) error {
	return withGoose(pool, log, func(db *sql.DB) error {
		if err := goose.Status(db, migrationsDir); err != nil {
			return fmt.Errorf("estado de migraciones: %w", err)
		}
		return nil
	})
}

func withGoose(pool *pgxpool.Pool, log *logger.Logger, fn func(*sql.DB) error) error {
	goose.SetBaseFS(migrations)
	goose.SetLogger(gooseLogger{log: log.Component("migrations")})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("dialecto goose: %w", err)
	}
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()
	return fn(db)
}

// gooseLogger adapta goose.Logger al logger de la aplicación.
type gooseLogger struct {
	log *logger.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.log.Info().Msgf(format, v...)
}

func (g gooseLogger) Fatalf(format string, v ...any) {
	g.log.Fatal().Msgf(format, v...)
}
