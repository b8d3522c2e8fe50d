package valueobjects

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	ErrInvalidAvatarURL = errors.New("invalid avatar url")
)

// AvatarKey é a chave de um avatar no armazenamento de blobs.
// Formato: consultor{id}/avatar
type AvatarKey string

// NewAvatarKey gera a chave determinística do avatar de um consultor
func NewAvatarKey(consultorID int64) AvatarKey {
	return AvatarKey(fmt.Sprintf("consultor%d/avatar", consultorID))
}

// String retorna a chave como string
func (k AvatarKey) String() string {
	return string(k)
}

// AvatarKeyFromURL extrai a chave de armazenamento a partir da URL pública.
// Se baseURL for prefixo da URL, a chave é o restante; caso contrário usa o path.
func AvatarKeyFromURL(baseURL, rawURL string) (AvatarKey, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", ErrInvalidAvatarURL
	}

	base := strings.TrimRight(baseURL, "/")
	if base != "" && strings.HasPrefix(rawURL, base+"/") {
		key := strings.TrimPrefix(rawURL, base+"/")
		if key == "" {
			return "", ErrInvalidAvatarURL
		}
		return AvatarKey(stripQuery(key)), nil
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidAvatarURL, err)
	}

	key := strings.TrimPrefix(parsed.Path, "/")
	if key == "" {
		return "", ErrInvalidAvatarURL
	}

	return AvatarKey(key), nil
}

func stripQuery(key string) string {
	if idx := strings.IndexAny(key, "?#"); idx != -1 {
		return key[:idx]
	}
	return key
}
