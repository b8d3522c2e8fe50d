package valueobjects

import (
	"errors"
	"strings"
	"unicode"
)

var (
	ErrInvalidEmail = errors.New("invalid email format")
)

const maxEmailLength = 254

// Email é um value object de email normalizado em minúsculas, o que torna a
// comparação case-insensitive. O formato completo é validado na borda
// (validator/v10); aqui só se garante a estrutura local@domínio.
type Email struct {
	value string
}

// NewEmail cria um novo Email a partir de entrada externa
func NewEmail(email string) (Email, error) {
	email = normalizeEmail(email)

	if !hasEmailShape(email) {
		return Email{}, ErrInvalidEmail
	}

	return Email{value: email}, nil
}

// EmailFromStorage reconstrói um Email já persistido, sem revalidar o formato
func EmailFromStorage(email string) Email {
	return Email{value: normalizeEmail(email)}
}

// String retorna o valor do email
func (e Email) String() string {
	return e.value
}

// Equals compara dois emails normalizados
func (e Email) Equals(other Email) bool {
	return e.value == other.value
}

// IsZero indica se o email não foi inicializado
func (e Email) IsZero() bool {
	return e.value == ""
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

// hasEmailShape exige um único @ separando partes não vazias, sem espaços
func hasEmailShape(email string) bool {
	if len(email) < 3 || len(email) > maxEmailLength {
		return false
	}
	if strings.IndexFunc(email, unicode.IsSpace) >= 0 {
		return false
	}

	local, domain, found := strings.Cut(email, "@")
	if !found || local == "" || domain == "" {
		return false
	}
	return !strings.Contains(domain, "@")
}
