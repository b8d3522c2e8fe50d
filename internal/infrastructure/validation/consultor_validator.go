// Package validation valida os dados de entrada de consultores com go-playground/validator.
package validation

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	domainerrors "github.com/fcamara/consultores-api/internal/domain/errors"
	"github.com/fcamara/consultores-api/internal/domain/ports"
)

type cadastro struct {
	Apelido string `json:"apelido" validate:"required,min=2,max=50"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Senha   string `json:"senha" validate:"required,min=8,max=72,max_bytes=72"`
}

type atualizacao struct {
	Apelido *string `json:"apelido" validate:"omitempty,min=2,max=50"`
	Senha   *string `json:"senha" validate:"omitempty,min=8,max=72,max_bytes=72"`
}

// ConsultorValidator implementa ports.ConsultorValidator
type ConsultorValidator struct {
	validate *validator.Validate
}

var _ ports.ConsultorValidator = (*ConsultorValidator)(nil)

// NewConsultorValidator cria o validador; os campos são reportados pelo nome JSON
func NewConsultorValidator() *ConsultorValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// bcrypt só considera os primeiros 72 bytes da senha
	_ = v.RegisterValidation("max_bytes", maxBytes)

	return &ConsultorValidator{validate: v}
}

// maxBytes limita o tamanho em bytes (max conta runas)
func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}

func (v *ConsultorValidator) ValidateCadastro(apelido, email, senha string) error {
	return v.check(cadastro{
		Apelido: strings.TrimSpace(apelido),
		Email:   strings.TrimSpace(email),
		Senha:   senha,
	})
}

func (v *ConsultorValidator) ValidateAtualizacao(apelido, senha *string) error {
	input := atualizacao{Senha: senha}
	if apelido != nil {
		trimmed := strings.TrimSpace(*apelido)
		input.Apelido = &trimmed
	}
	return v.check(input)
}

func (v *ConsultorValidator) check(input any) error {
	err := v.validate.Struct(input)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return domainerrors.Wrap(domainerrors.KindValidation, domainerrors.MsgValidation, err)
	}

	fields := make([]domainerrors.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, domainerrors.FieldError{
			Field: fe.Field(),
			Tag:   fe.Tag(),
			Param: fe.Param(),
		})
	}

	return domainerrors.Validation(domainerrors.MsgValidation, fields...)
}
