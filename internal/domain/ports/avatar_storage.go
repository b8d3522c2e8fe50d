package ports

import (
	"context"

	"github.com/fcamara/consultores-api/internal/domain/valueobjects"
)

// AvatarStorage é o armazenamento de blobs das imagens de perfil
type AvatarStorage interface {
	// Upload grava o conteúdo na chave informada e retorna a URL pública
	Upload(ctx context.Context, key valueobjects.AvatarKey, data []byte, contentType string) (string, error)
	// Delete remove o blob; remover uma chave inexistente não é erro
	Delete(ctx context.Context, key valueobjects.AvatarKey) error
	// KeyFromURL deriva a chave de armazenamento a partir da URL pública
	KeyFromURL(rawURL string) (valueobjects.AvatarKey, error)
}
