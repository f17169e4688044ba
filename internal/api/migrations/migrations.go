// Package migrations embeds the goose SQL migrations of the api database.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var FS embed.FS

// Apply runs every pending migration.
func Apply(connStr string) error {
	return run(connStr, func(db *sql.DB) error {
		if err := goose.Up(db, "."); err != nil {
			return fmt.Errorf("goose up: %w", err)
		}
		return nil
	})
}

// Status logs the applied state of every migration.
func Status(connStr string) error {
	return run(connStr, func(db *sql.DB) error {
		return goose.Status(db, ".")
	})
}

func run(connStr string, fn func(db *sql.DB) error) error {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return fn(db)
}
