package security

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/fcamara/consultores-api/internal/domain/ports"
)

// BcryptCost é o fator de custo usado para novas senhas
const BcryptCost = 10

// BcryptHasher implementa ports.PasswordHasher com bcrypt
type BcryptHasher struct {
	cost int
}

var _ ports.PasswordHasher = (*BcryptHasher)(nil)

// NewBcryptHasher cria um hasher; custo fora do intervalo do bcrypt usa BcryptCost
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = BcryptCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Compare retorna true se a senha corresponde ao hash
func (h *BcryptHasher) Compare(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
