package middleware

import (
	"context"
	"net/http"
	"strings"

	"servicos-dashboard/pkg/contextkeys"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// SessionStore é o que o middleware precisa do armazenamento de sessões:
// trocar o ID opaco do cookie pelo e-mail do usuário autenticado.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (string, error)
}

type SessionMiddleware struct {
	store      SessionStore
	cookieName string
	logger     *zap.Logger
}

func NewSessionMiddleware(store SessionStore, cookieName string, logger *zap.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		store:      store,
		cookieName: cookieName,
		logger:     logger,
	}
}

// Auth valida o cookie de sessão e injeta o usuário no contexto da requisição.
// Rotas de página redirecionam para o login; rotas /api respondem 401 em JSON.
func (m *SessionMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(m.cookieName)
		if err != nil || cookie.Value == "" {
			return m.reject(c)
		}

		email, err := m.store.Get(c.Request().Context(), cookie.Value)
		if err != nil {
			m.logger.Warn("SessionMiddleware: sessão inválida ou expirada", zap.Error(err))
			return m.reject(c)
		}

		ctx := c.Request().Context()
		ctx = context.WithValue(ctx, contextkeys.UserEmailKey, email)
		ctx = context.WithValue(ctx, contextkeys.SessionIDKey, cookie.Value)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

func (m *SessionMiddleware) reject(c echo.Context) error {
	if strings.HasPrefix(c.Request().URL.Path, "/api") {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Não autorizado"})
	}
	return c.Redirect(http.StatusFound, "/")
}
