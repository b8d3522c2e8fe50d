package ports

// ConsultorValidator valida os dados de entrada de cadastro e atualização.
// Os erros retornados são *errors.DomainError com Kind de validação.
type ConsultorValidator interface {
	ValidateCadastro(apelido, email, senha string) error
	ValidateAtualizacao(apelido, senha *string) error
}
