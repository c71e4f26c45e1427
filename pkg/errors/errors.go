package errors

import (
	"fmt"
	"net/http"
)

// Mensagem genérica devolvida ao cliente quando o banco está indisponível.
// O diagnóstico real fica só no log do servidor.
const MsgDatabaseUnavailable = "Erro ao conectar com o banco de dados. Tente novamente mais tarde."

var (
	// Autenticação e sessão
	ErrInvalidCredentials = fmt.Errorf("usuário ou senha inválidos")
	ErrSessionNotFound    = fmt.Errorf("sessão não encontrada")
	ErrUnauthorized       = fmt.Errorf("não autorizado")

	// Gerais
	ErrNotFound   = fmt.Errorf("registro não encontrado")
	ErrBadRequest = fmt.Errorf("requisição inválida")
)

// HttpError carrega o status HTTP e a mensagem destinada ao usuário,
// mantendo o erro interno e o contexto apenas para o log.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Context: context}
}

func NewBadRequestError(message string) *HttpError {
	return &HttpError{Code: http.StatusBadRequest, Message: message}
}

// NewDatabaseError embala qualquer falha de comunicação com o banco na
// condição única "banco indisponível": 500 + mensagem fixa.
func NewDatabaseError(err error) *HttpError {
	return &HttpError{Code: http.StatusInternalServerError, Message: MsgDatabaseUnavailable, Err: err}
}
