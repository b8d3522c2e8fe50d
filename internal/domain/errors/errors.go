package errors

import "errors"

// Kind classifica os erros de domínio. O mapeamento para status HTTP
// acontece apenas na camada de handlers.
type Kind string

const (
	KindValidation      Kind = "validation"
	KindConflict        Kind = "conflict"
	KindAuthorization   Kind = "authorization"
	KindNotFound        Kind = "not_found"
	KindStorage         Kind = "storage"
	KindState           Kind = "state"
	KindUnauthenticated Kind = "unauthenticated"
)

// Códigos de erro (message IDs para i18n).
// As traduções estão em internal/infrastructure/i18n/locales/*.json
const (
	MsgValidation             = "error.validation.detail"
	MsgUpdateRequiresField    = "error.update_requires_field"
	MsgInvalidImage           = "error.invalid_image"
	MsgInvalidID              = "error.invalid_id"
	MsgEmailAlreadyRegistered = "error.email_already_registered"
	MsgConsultorNotIdentified = "error.consultor_not_identified"
	MsgConsultorNotFound      = "error.consultor_not_found"
	MsgListFailed             = "error.list_failed"
	MsgLoadFailed             = "error.load_failed"
	MsgCreateFailed           = "error.create_failed"
	MsgUpdateFailed           = "error.update_failed"
	MsgDeleteFailed           = "error.delete_failed"
	MsgAvatarDeleteFailed     = "error.avatar_delete_failed"
	MsgAvatarUploadFailed     = "error.avatar_upload_failed"
	MsgPasswordFailed         = "error.password_failed"
	MsgInvalidBody            = "error.invalid_body"
	MsgUnauthenticated        = "error.unauthorized.detail"
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
//
//nolint:misspell
const (
	ProblemTypeValidation    = "/problems/validation-error"
	ProblemTypeNotFound      = "/problems/not-found"
	ProblemTypeConflict      = "/problems/conflict"
	ProblemTypeUnauthorized  = "/problems/unauthorized"
	ProblemTypeForbidden     = "/problems/forbidden"
	ProblemTypeStorage       = "/problems/storage-error"
	ProblemTypeState         = "/problems/state-error"
	ProblemTypeBadRequest    = "/problems/bad-request"
	ProblemTypeInternalError = "/problems/internal-error"
)

// FieldError descreve um campo rejeitado pelo validador
type FieldError struct {
	Field string
	Tag   string
	Param string
}

// DomainError representa um erro de domínio com contexto adicional
type DomainError struct {
	Kind   Kind
	Key    string
	Err    error
	Fields []FieldError
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Key + ": " + e.Err.Error()
	}
	return e.Key
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// New cria um DomainError sem causa
func New(kind Kind, key string) *DomainError {
	return &DomainError{Kind: kind, Key: key}
}

// Wrap cria um DomainError preservando a causa original
func Wrap(kind Kind, key string, err error) *DomainError {
	return &DomainError{Kind: kind, Key: key, Err: err}
}

// Validation cria um erro de validação com os campos rejeitados
func Validation(key string, fields ...FieldError) *DomainError {
	return &DomainError{Kind: KindValidation, Key: key, Fields: fields}
}

// As extrai o DomainError de uma cadeia de erros
func As(err error) (*DomainError, bool) {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr, true
	}
	return nil, false
}

// KindOf retorna a categoria do erro, ou vazio se não for de domínio
func KindOf(err error) Kind {
	if domainErr, ok := As(err); ok {
		return domainErr.Kind
	}
	return ""
}

// IsKind verifica se o erro pertence à categoria informada
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
