package dto

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	domainerrors "github.com/fcamara/consultores-api/internal/domain/errors"
)

// ErrorResponse segue RFC 7807 (Problem Details for HTTP APIs)
type ErrorResponse struct {
	*problems.DefaultProblem
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationError representa um erro de validação de campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
}

// NewErrorResponseI18n cria uma resposta de erro usando i18n
func NewErrorResponseI18n(c *gin.Context, problemType, titleKey, detailKey string, status int, params ...map[string]interface{}) ErrorResponse {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	problem := problems.NewDetailedProblem(status, T(c, detailKey, params...))
	problem.Type = baseURL + problemType
	problem.Title = T(c, titleKey, params...)
	problem.Instance = c.Request.URL.Path

	return ErrorResponse{DefaultProblem: problem}
}

// StatusFromKind mapeia a categoria do erro de domínio para o status HTTP.
// E-mail duplicado responde 400 (e não 409) por compatibilidade com os clientes existentes.
func StatusFromKind(kind domainerrors.Kind) int {
	switch kind {
	case domainerrors.KindAuthorization:
		return http.StatusForbidden
	case domainerrors.KindNotFound:
		return http.StatusNotFound
	case domainerrors.KindUnauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusBadRequest
	}
}

func problemTypeFromKind(kind domainerrors.Kind) (problemType, titleKey string) {
	switch kind {
	case domainerrors.KindValidation:
		return domainerrors.ProblemTypeValidation, "error.validation.title"
	case domainerrors.KindConflict:
		return domainerrors.ProblemTypeConflict, "error.conflict.title"
	case domainerrors.KindAuthorization:
		return domainerrors.ProblemTypeForbidden, "error.forbidden.title"
	case domainerrors.KindNotFound:
		return domainerrors.ProblemTypeNotFound, "error.not_found.title"
	case domainerrors.KindUnauthenticated:
		return domainerrors.ProblemTypeUnauthorized, "error.unauthorized.title"
	case domainerrors.KindStorage:
		return domainerrors.ProblemTypeStorage, "error.storage.title"
	case domainerrors.KindState:
		return domainerrors.ProblemTypeState, "error.state.title"
	default:
		return domainerrors.ProblemTypeBadRequest, "error.bad_request.title"
	}
}

// DomainErrorResponseI18n converte um DomainError em status + Problem Details.
// A causa (Err) nunca é exposta ao cliente.
func DomainErrorResponseI18n(c *gin.Context, err *domainerrors.DomainError) (int, ErrorResponse) {
	status := StatusFromKind(err.Kind)
	problemType, titleKey := problemTypeFromKind(err.Kind)

	response := NewErrorResponseI18n(c, problemType, titleKey, err.Key, status)
	if len(err.Fields) > 0 {
		response.Errors = ValidationErrorsI18n(c, err.Fields)
	}
	return status, response
}

// ValidationErrorsI18n traduz os campos rejeitados (validation.<tag>)
func ValidationErrorsI18n(c *gin.Context, fields []domainerrors.FieldError) []ValidationError {
	result := make([]ValidationError, 0, len(fields))
	for _, field := range fields {
		params := map[string]interface{}{"Field": field.Field, "Param": field.Param}

		key := "validation." + field.Tag
		if !HasTranslation(c, key) {
			key = "validation.default"
		}

		result = append(result, ValidationError{
			Field:   field.Field,
			Message: T(c, key, params),
			Tag:     field.Tag,
		})
	}
	return result
}

// InternalErrorResponseI18n cria uma resposta de erro 500
func InternalErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeInternalError,
		"error.internal.title",
		"error.internal.detail",
		http.StatusInternalServerError,
	)
}

// WriteError escreve a resposta de erro com o media type application/problem+json
func WriteError(c *gin.Context, status int, response ErrorResponse) {
	c.Header("Content-Type", problems.ProblemMediaType)
	c.AbortWithStatusJSON(status, response)
}
