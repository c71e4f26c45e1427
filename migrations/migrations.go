// Package migrations aplica o esquema do banco com goose.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// Up aplica todas as migrações pendentes usando uma conexão própria, separada
// do pool do pgx que atende as requisições.
func Up(dsn string) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("erro ao configurar o dialeto do goose: %w", err)
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("erro ao abrir conexão para migração: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("erro ao aplicar migrações: %w", err)
	}

	return nil
}
