package entities

import (
	"errors"

	"github.com/fcamara/consultores-api/internal/domain/valueobjects"
)

var (
	ErrInvalidConsultorData = errors.New("invalid consultor data")
)

// Consultor representa a conta local de um consultor (tabela consultores)
type Consultor struct {
	ID           int64
	SecundarioID string
	Apelido      string
	Email        valueobjects.Email
	SenhaHash    string
	Imagem       *string
	Admin        bool
}

// HasAvatar verifica se o consultor já possui imagem de perfil
func (c *Consultor) HasAvatar() bool {
	return c.Imagem != nil && *c.Imagem != ""
}

// AvatarKey retorna a chave de armazenamento do avatar do consultor
func (c *Consultor) AvatarKey() valueobjects.AvatarKey {
	return valueobjects.NewAvatarKey(c.ID)
}

// Validate valida regras de negócio da entidade Consultor
func (c *Consultor) Validate() error {
	if c.Email.String() == "" {
		return errors.New("email is required")
	}

	if c.Apelido == "" {
		return errors.New("apelido is required")
	}

	if c.SenhaHash == "" {
		return errors.New("senha hash is required")
	}

	if c.SecundarioID == "" {
		return ErrInvalidConsultorData
	}

	return nil
}

// ColaboradorFCamara é a entrada do diretório de funcionários (tabela dados_fcamara).
// Somente leitura para este serviço.
type ColaboradorFCamara struct {
	Email        string
	NomeCompleto string
}

// ConsultorPerfil é a projeção pública de um consultor junto ao diretório
type ConsultorPerfil struct {
	NomeCompleto string
	Apelido      string
	Email        string
	Imagem       *string
	Admin        bool
}
