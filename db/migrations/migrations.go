package migrations

import (
	"database/sql"
	"embed"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
)

//go:embed sql/*.sql
var embedMigrations embed.FS

const migrationDir = "sql"

// Run выполняет все встроенные миграции
func Run(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "failed to set dialect")
	}
	if err := goose.Up(db, migrationDir); err != nil {
		return errors.Wrap(err, "failed to run migrations")
	}
	return nil
}

// Status печатает состояние миграций через логгер goose
func Status(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "failed to set dialect")
	}
	return goose.Status(db, migrationDir)
}

// SetLogger направляет вывод goose в логгер приложения
func SetLogger(l goose.Logger) {
	goose.SetLogger(l)
}
