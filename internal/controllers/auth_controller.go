package controllers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"servicos-dashboard/internal/dto"
	"servicos-dashboard/internal/services"
	"servicos-dashboard/pkg/config"
	"servicos-dashboard/pkg/contextkeys"
	apperrors "servicos-dashboard/pkg/errors"
)

type AuthController struct {
	authService services.AuthServiceInterface
	sessionCfg  config.SessionConfig
	logger      *zap.Logger
}

func NewAuthController(authService services.AuthServiceInterface, sessionCfg config.SessionConfig, logger *zap.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		sessionCfg:  sessionCfg,
		logger:      logger,
	}
}

// LoginPage atende GET /: só renderiza o formulário.
func (ctrl *AuthController) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", nil)
}

// Login atende POST /. Falha de credencial não é exceção: a resposta é a
// própria página de login com a mensagem inline, status 200.
func (ctrl *AuthController) Login(c echo.Context) error {
	var payload dto.LoginDTO
	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Warn("Login: erro ao ler o formulário", zap.Error(err))
		return ctrl.renderLoginError(c, "Por favor, preencha todos os campos")
	}
	if err := c.Validate(&payload); err != nil {
		return ctrl.renderLoginError(c, "Por favor, preencha todos os campos")
	}

	sessionID, err := ctrl.authService.Login(c.Request().Context(), payload)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			return ctrl.renderLoginError(c, "Usuário ou senha inválidos")
		}
		ctrl.logger.Error("Login: erro inesperado", zap.Error(err))
		return ctrl.renderLoginError(c, apperrors.MsgDatabaseUnavailable)
	}

	c.SetCookie(&http.Cookie{
		Name:     ctrl.sessionCfg.CookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(ctrl.sessionCfg.TTL.Seconds()),
		HttpOnly: true,
		Secure:   ctrl.sessionCfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	return c.Redirect(http.StatusFound, "/dashboard")
}

// Dashboard atende GET /dashboard. O middleware de sessão já barrou quem não
// está autenticado.
func (ctrl *AuthController) Dashboard(c echo.Context) error {
	email, _ := c.Request().Context().Value(contextkeys.UserEmailKey).(string)
	return c.Render(http.StatusOK, "services.html", map[string]interface{}{
		"Usuario": email,
	})
}

// Logout atende GET /logout: apaga a sessão no servidor, expira o cookie e
// volta para o login.
func (ctrl *AuthController) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(ctrl.sessionCfg.CookieName); err == nil {
		if err := ctrl.authService.Logout(c.Request().Context(), cookie.Value); err != nil {
			ctrl.logger.Warn("Logout: erro ao remover sessão", zap.Error(err))
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     ctrl.sessionCfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   ctrl.sessionCfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	return c.Redirect(http.StatusFound, "/")
}

func (ctrl *AuthController) renderLoginError(c echo.Context, message string) error {
	return c.Render(http.StatusOK, "login.html", map[string]interface{}{
		"Error": message,
	})
}
