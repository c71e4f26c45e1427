package seeders

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"servicos-dashboard/pkg/utils"
)

// SeedAdminCredential cria o usuário administrador do painel, se ainda não
// existir. A senha entra como hash bcrypt.
func SeedAdminCredential(ctx context.Context, db *pgxpool.Pool, email, senha string) error {
	log.Println("  - Criando credencial do administrador...")

	var id int64
	err := db.QueryRow(ctx, "SELECT id FROM credential WHERE email = $1", email).Scan(&id)
	if err == nil {
		log.Println("    - Credencial já existe. Pulando.")
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("erro ao verificar credencial existente: %w", err)
	}

	hash, err := utils.HashPassword(senha)
	if err != nil {
		return err
	}

	if _, err := db.Exec(ctx,
		"INSERT INTO credential (email, senha) VALUES ($1, $2)", email, hash,
	); err != nil {
		return fmt.Errorf("erro ao inserir credencial: %w", err)
	}

	log.Println("    - Credencial criada:", email)
	return nil
}
