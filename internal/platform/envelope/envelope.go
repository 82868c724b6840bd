// Package envelope writes the uniform JSON response body
// {"mensagem", "codigo", "dados"?} and holds the single translation table
// from error kinds to HTTP status codes.
package envelope

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/clientehm/api/internal/platform/apperr"
	"github.com/clientehm/api/internal/platform/validation"
)

const (
	MsgValidation = "Erro de validação nos dados fornecidos"
	MsgInternal   = "Ocorreu um erro inesperado no servidor."
)

// Body is the response envelope. Exactly one of Dados, AdminData or Erros
// is set, depending on the endpoint.
type Body struct {
	Mensagem  string            `json:"mensagem"`
	Codigo    int               `json:"codigo"`
	Dados     interface{}       `json:"dados,omitempty"`
	AdminData interface{}       `json:"adminData,omitempty"`
	Erros     map[string]string `json:"erros,omitempty"`
}

// Success writes {mensagem, codigo, dados?}. A nil payload omits dados.
func Success(c echo.Context, status int, msg string, dados interface{}) error {
	return c.JSON(status, Body{Mensagem: msg, Codigo: status, Dados: dados})
}

// Admin writes {mensagem, codigo, adminData}.
func Admin(c echo.Context, status int, msg string, adminData interface{}) error {
	return c.JSON(status, Body{Mensagem: msg, Codigo: status, AdminData: adminData})
}

// Error writes {mensagem, codigo}.
func Error(c echo.Context, status int, msg string) error {
	return c.JSON(status, Body{Mensagem: msg, Codigo: status})
}

// StatusFor maps an error kind to its HTTP status.
func StatusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindInvalidCredentials,
		apperr.KindWeakPassword,
		apperr.KindDuplicate,
		apperr.KindInvalidArgument:
		return http.StatusBadRequest
	case apperr.KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// ErrorHandler is installed as echo's HTTPErrorHandler. Every error a
// handler or middleware returns is rendered here.
func ErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := translate(err)
		if status == http.StatusInternalServerError {
			rid, _ := c.Get("request_id").(string)
			logger.Error().Err(err).
				Str("request_id", rid).
				Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Msg("unhandled error")
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, body)
		}
		if writeErr != nil {
			logger.Error().Err(writeErr).Msg("write error response")
		}
	}
}

func translate(err error) (int, Body) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return http.StatusBadRequest, Body{
			Mensagem: MsgValidation,
			Codigo:   http.StatusBadRequest,
			Erros:    verrs,
		}
	}

	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		status := StatusFor(appErr.Kind)
		msg := appErr.Message
		if status == http.StatusInternalServerError || msg == "" {
			msg = defaultMessage(status)
		}
		return status, Body{Mensagem: msg, Codigo: status}
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg := defaultMessage(he.Code)
		if s, ok := he.Message.(string); ok && s != "" && s != http.StatusText(he.Code) &&
			he.Code != http.StatusInternalServerError {
			msg = s
		}
		return he.Code, Body{Mensagem: msg, Codigo: he.Code}
	}

	return http.StatusInternalServerError, Body{Mensagem: MsgInternal, Codigo: http.StatusInternalServerError}
}

func defaultMessage(status int) string {
	switch status {
	case http.StatusNotFound:
		return "Recurso não encontrado"
	case http.StatusUnauthorized:
		return "Não autenticado"
	case http.StatusMethodNotAllowed:
		return "Método não permitido"
	case http.StatusTooManyRequests:
		return "Muitas requisições. Tente novamente mais tarde."
	case http.StatusBadRequest:
		return "Requisição inválida"
	}
	if status >= http.StatusInternalServerError {
		return MsgInternal
	}
	return http.StatusText(status)
}
