package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"servicos-dashboard/internal/dto"
	"servicos-dashboard/internal/repositories"
	apperrors "servicos-dashboard/pkg/errors"
	"servicos-dashboard/pkg/utils"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (string, error)
	Logout(ctx context.Context, sessionID string) error
}

type AuthService struct {
	credentialRepository repositories.CredentialRepositoryInterface
	sessionRepository    repositories.SessionRepositoryInterface
	logger               *zap.Logger
}

func NewAuthService(
	credentialRepository repositories.CredentialRepositoryInterface,
	sessionRepository repositories.SessionRepositoryInterface,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{
		credentialRepository: credentialRepository,
		sessionRepository:    sessionRepository,
		logger:               logger,
	}
}

// Login confere as credenciais e abre a sessão, devolvendo o ID opaco que vai
// no cookie. Credencial inexistente e senha errada produzem o mesmo erro.
func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (string, error) {
	cred, err := s.credentialRepository.FindByEmail(ctx, payload.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.ErrInvalidCredentials
		}
		s.logger.Error("erro ao buscar credencial", zap.String("email", payload.Email), zap.Error(err))
		return "", err
	}

	if err := utils.ComparePasswords(cred.Senha, payload.Senha); err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	sessionID, err := s.sessionRepository.Create(ctx, cred.Email)
	if err != nil {
		s.logger.Error("erro ao criar sessão", zap.String("email", cred.Email), zap.Error(err))
		return "", err
	}

	s.logger.Info("login efetuado", zap.String("email", cred.Email))
	return sessionID, nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessionRepository.Delete(ctx, sessionID)
}
