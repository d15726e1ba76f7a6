package db

import (
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"

	_ "github.com/jackc/pgx/v5/stdlib"

	"claritymeet.app/api-server/core/config"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies embedded migrations using goose over the pgx stdlib driver.
func Migrate(cfg config.DatabaseConfig) error {
	sqldb, err := goose.OpenDBWithDriver("pgx", cfg.URL)
	if err != nil {
		return fmt.Errorf("opening migration connection: %w", err)
	}
	defer sqldb.Close()

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}

	if err := goose.Up(sqldb, "migrations"); err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}
	return nil
}
