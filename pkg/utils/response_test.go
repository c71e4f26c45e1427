package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "servicos-dashboard/pkg/errors"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestErrorResponse_HttpError(t *testing.T) {
	ctx, rec := newTestContext()

	err := apperrors.NewDatabaseError(errors.New("connection refused"))
	require.NoError(t, ErrorResponse(ctx, err, zap.NewNop()))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t,
		`{"error": "Erro ao conectar com o banco de dados. Tente novamente mais tarde."}`,
		rec.Body.String())
}

func TestErrorResponse_BadRequest(t *testing.T) {
	ctx, rec := newTestContext()

	require.NoError(t, ErrorResponse(ctx, apperrors.NewBadRequestError("Payload inválido"), zap.NewNop()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error": "Payload inválido"}`, rec.Body.String())
}

func TestErrorResponse_ErroDesconhecido(t *testing.T) {
	ctx, rec := newTestContext()

	require.NoError(t, ErrorResponse(ctx, errors.New("algo inesperado"), zap.NewNop()))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error": "Erro interno do servidor"}`, rec.Body.String())
}

func TestHashECompareDeSenha(t *testing.T) {
	hash, err := HashPassword("segredo")
	require.NoError(t, err)
	assert.NotEqual(t, "segredo", hash)

	assert.NoError(t, ComparePasswords(hash, "segredo"))
	assert.Error(t, ComparePasswords(hash, "errada"))
}
