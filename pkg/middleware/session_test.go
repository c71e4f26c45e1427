package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"servicos-dashboard/pkg/contextkeys"
	apperrors "servicos-dashboard/pkg/errors"
)

type stubSessionStore struct {
	sessions map[string]string
}

func (s *stubSessionStore) Get(_ context.Context, sessionID string) (string, error) {
	email, ok := s.sessions[sessionID]
	if !ok {
		return "", apperrors.ErrSessionNotFound
	}
	return email, nil
}

func runAuth(t *testing.T, target, cookieValue string) (*httptest.ResponseRecorder, echo.Context, bool) {
	t.Helper()

	store := &stubSessionStore{sessions: map[string]string{
		"sessao-valida": "admin@exemplo.com",
	}}
	mw := NewSessionMiddleware(store, "session_id", zap.NewNop())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if cookieValue != "" {
		req.AddCookie(&http.Cookie{Name: "session_id", Value: cookieValue})
	}
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	called := false
	var inner echo.Context
	handler := mw.Auth(func(c echo.Context) error {
		called = true
		inner = c
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(ctx))

	if inner == nil {
		inner = ctx
	}
	return rec, inner, called
}

func TestAuth_SessaoValidaInjetaUsuario(t *testing.T) {
	rec, inner, called := runAuth(t, "/dashboard", "sessao-valida")

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)

	reqCtx := inner.Request().Context()
	assert.Equal(t, "admin@exemplo.com", reqCtx.Value(contextkeys.UserEmailKey))
	assert.Equal(t, "sessao-valida", reqCtx.Value(contextkeys.SessionIDKey))
}

func TestAuth_SemCookie_PaginaRedireciona(t *testing.T) {
	rec, _, called := runAuth(t, "/dashboard", "")

	assert.False(t, called)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestAuth_SessaoDesconhecida_PaginaRedireciona(t *testing.T) {
	rec, _, called := runAuth(t, "/imprimir_relatorio", "sessao-expirada")

	assert.False(t, called)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

// Rotas de API respondem 401 em JSON em vez de redirecionar, para o
// JavaScript do painel distinguir sessão expirada de erro de rede.
func TestAuth_SemSessao_APIRecebe401(t *testing.T) {
	rec, _, called := runAuth(t, "/api/services", "")

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error": "Não autorizado"}`, rec.Body.String())
}

func TestAuth_SessaoInvalida_APIRecebe401(t *testing.T) {
	rec, _, called := runAuth(t, "/api/totais", "sessao-inexistente")

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
