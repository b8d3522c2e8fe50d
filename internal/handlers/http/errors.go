package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/fcamara/consultores-api/internal/domain/errors"
	"github.com/fcamara/consultores-api/internal/domain/ports"
	"github.com/fcamara/consultores-api/internal/handlers/dto"
)

// ErrorWriter traduz erros de domínio em respostas RFC 7807
type ErrorWriter struct {
	logger ports.Logger
}

// NewErrorWriter cria um novo ErrorWriter
func NewErrorWriter(logger ports.Logger) *ErrorWriter {
	return &ErrorWriter{logger: logger}
}

// Write escreve o erro e interrompe a cadeia de handlers
func (w *ErrorWriter) Write(c *gin.Context, err error) {
	domainErr, ok := domainerrors.As(err)
	if !ok {
		w.logger.Error("unexpected error", "path", c.Request.URL.Path, "error", err)
		dto.WriteError(c, http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	if domainErr.Err != nil {
		w.logger.Debug("request failed",
			"path", c.Request.URL.Path,
			"kind", string(domainErr.Kind),
			"error", domainErr.Err,
		)
	}

	status, response := dto.DomainErrorResponseI18n(c, domainErr)
	dto.WriteError(c, status, response)
}
