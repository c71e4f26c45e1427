package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"servicos-dashboard/internal/entities"
	apperrors "servicos-dashboard/pkg/errors"
)

type CredentialRepositoryInterface interface {
	FindByEmail(ctx context.Context, email string) (*entities.Credential, error)
}

type CredentialRepository struct {
	storage *pgxpool.Pool
}

func NewCredentialRepository(storage *pgxpool.Pool) CredentialRepositoryInterface {
	return &CredentialRepository{storage: storage}
}

func (r *CredentialRepository) FindByEmail(ctx context.Context, email string) (*entities.Credential, error) {
	var cred entities.Credential
	err := r.storage.QueryRow(ctx,
		`SELECT id, email, senha FROM credential WHERE email = $1`, email,
	).Scan(&cred.ID, &cred.Email, &cred.Senha)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("erro ao buscar credencial: %w", err)
	}
	return &cred, nil
}
