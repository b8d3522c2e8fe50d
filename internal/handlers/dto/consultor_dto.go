package dto

import (
	"github.com/fcamara/consultores-api/internal/domain/entities"
	"github.com/fcamara/consultores-api/internal/services"
)

// CreateConsultorRequest representa a requisição de cadastro.
// As regras de cada campo ficam no validador de consultores.
type CreateConsultorRequest struct {
	Apelido string `json:"apelido" example:"joao123"`
	Email   string `json:"email" example:"joao@empresa.com"`
	Senha   string `json:"senha" example:"Secret123!"`
}

// ToInput converte a requisição para o input do serviço
func (r CreateConsultorRequest) ToInput() services.CreateConsultorInput {
	return services.CreateConsultorInput{
		Apelido: r.Apelido,
		Email:   r.Email,
		Senha:   r.Senha,
	}
}

// UpdateConsultorRequest representa a atualização do próprio perfil.
// Imagem aceita base64 puro ou data URL (data:image/png;base64,...).
type UpdateConsultorRequest struct {
	Apelido *string `json:"apelido,omitempty" example:"joaozinho"`
	Imagem  *string `json:"imagem,omitempty"`
	Senha   *string `json:"senha,omitempty"`
}

func (r UpdateConsultorRequest) ToInput() services.UpdateConsultorInput {
	return services.UpdateConsultorInput{
		Apelido: r.Apelido,
		Imagem:  r.Imagem,
		Senha:   r.Senha,
	}
}

// ConsultorResponse representa o perfil público de um consultor
type ConsultorResponse struct {
	NomeCompleto string  `json:"nome_completo" example:"João da Silva"`
	Apelido      string  `json:"apelido" example:"joao123"`
	Email        string  `json:"email" example:"joao@empresa.com"`
	Imagem       *string `json:"imagem"`
	Admin        bool    `json:"admin"`
}

// ToConsultorResponse converte um ConsultorPerfil para ConsultorResponse
func ToConsultorResponse(perfil *entities.ConsultorPerfil) ConsultorResponse {
	return ConsultorResponse{
		NomeCompleto: perfil.NomeCompleto,
		Apelido:      perfil.Apelido,
		Email:        perfil.Email,
		Imagem:       perfil.Imagem,
		Admin:        perfil.Admin,
	}
}

// ToConsultorResponses converte uma lista de perfis
func ToConsultorResponses(perfis []*entities.ConsultorPerfil) []ConsultorResponse {
	responses := make([]ConsultorResponse, len(perfis))
	for i, perfil := range perfis {
		responses[i] = ToConsultorResponse(perfil)
	}
	return responses
}
