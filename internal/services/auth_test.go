package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"servicos-dashboard/internal/dto"
	"servicos-dashboard/internal/entities"
	apperrors "servicos-dashboard/pkg/errors"
	"servicos-dashboard/pkg/utils"
)

type stubCredentialRepository struct {
	cred *entities.Credential
	err  error
}

func (s *stubCredentialRepository) FindByEmail(_ context.Context, _ string) (*entities.Credential, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.cred, nil
}

type stubSessionRepository struct {
	createdFor string
	deleted    []string
	createErr  error
}

func (s *stubSessionRepository) Create(_ context.Context, email string) (string, error) {
	if s.createErr != nil {
		return "", s.createErr
	}
	s.createdFor = email
	return "sessao-de-teste", nil
}

func (s *stubSessionRepository) Get(_ context.Context, _ string) (string, error) {
	return "", apperrors.ErrSessionNotFound
}

func (s *stubSessionRepository) Delete(_ context.Context, sessionID string) error {
	s.deleted = append(s.deleted, sessionID)
	return nil
}

func hashFor(t *testing.T, senha string) string {
	t.Helper()
	hash, err := utils.HashPassword(senha)
	require.NoError(t, err)
	return hash
}

func TestLogin_CredenciaisCorretas(t *testing.T) {
	creds := &stubCredentialRepository{cred: &entities.Credential{
		ID:    1,
		Email: "admin@exemplo.com",
		Senha: hashFor(t, "segredo"),
	}}
	sessions := &stubSessionRepository{}
	svc := NewAuthService(creds, sessions, zap.NewNop())

	sessionID, err := svc.Login(context.Background(), dto.LoginDTO{
		Email: "admin@exemplo.com",
		Senha: "segredo",
	})
	require.NoError(t, err)
	assert.Equal(t, "sessao-de-teste", sessionID)
	assert.Equal(t, "admin@exemplo.com", sessions.createdFor)
}

func TestLogin_SenhaErrada(t *testing.T) {
	creds := &stubCredentialRepository{cred: &entities.Credential{
		Email: "admin@exemplo.com",
		Senha: hashFor(t, "segredo"),
	}}
	svc := NewAuthService(creds, &stubSessionRepository{}, zap.NewNop())

	_, err := svc.Login(context.Background(), dto.LoginDTO{
		Email: "admin@exemplo.com",
		Senha: "outra-coisa",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

// E-mail inexistente produz o mesmo erro de senha errada, sem revelar qual
// dos dois falhou.
func TestLogin_EmailInexistente(t *testing.T) {
	creds := &stubCredentialRepository{err: apperrors.ErrNotFound}
	svc := NewAuthService(creds, &stubSessionRepository{}, zap.NewNop())

	_, err := svc.Login(context.Background(), dto.LoginDTO{
		Email: "ninguem@exemplo.com",
		Senha: "tanto-faz",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_ErroDeBancoNaoViraCredencialInvalida(t *testing.T) {
	dbErr := errors.New("connection refused")
	creds := &stubCredentialRepository{err: dbErr}
	svc := NewAuthService(creds, &stubSessionRepository{}, zap.NewNop())

	_, err := svc.Login(context.Background(), dto.LoginDTO{
		Email: "admin@exemplo.com",
		Senha: "segredo",
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogout(t *testing.T) {
	sessions := &stubSessionRepository{}
	svc := NewAuthService(&stubCredentialRepository{}, sessions, zap.NewNop())

	require.NoError(t, svc.Logout(context.Background(), "abc-123"))
	assert.Equal(t, []string{"abc-123"}, sessions.deleted)

	// Sem cookie não há o que apagar.
	require.NoError(t, svc.Logout(context.Background(), ""))
	assert.Len(t, sessions.deleted, 1)
}
