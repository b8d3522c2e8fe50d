package ports

// PasswordHasher gera hashes lentos e com salt para senhas
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) bool
}

// TokenVerifier valida um bearer token e retorna o ID do consultor (subject)
type TokenVerifier interface {
	Verify(token string) (int64, error)
}
