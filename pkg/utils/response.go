package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	apperrors "servicos-dashboard/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ErrorResponse converte um erro interno na resposta JSON {"error": ...}.
// HttpError define o status e a mensagem; o erro embrulhado vai só para o log.
func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Error("Erro HTTP",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
				zap.Any("context", httpErr.Context),
			)
		}
		return c.JSON(httpErr.Code, map[string]string{"error": httpErr.Message})
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var msgs []string
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("Campo '%s' não passou na validação '%s'", e.Field(), e.Tag()))
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": strings.Join(msgs, "; ")})
	}

	logger.Error("Erro inesperado", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Erro interno do servidor"})
}
