package services

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
)

var errInvalidImagePayload = errors.New("invalid image payload")

// avatarPayload é a imagem decodificada recebida na atualização de perfil
type avatarPayload struct {
	data        []byte
	contentType string
}

// decodeAvatarPayload aceita base64 puro ou data URL (data:image/png;base64,...)
func decodeAvatarPayload(raw string) (*avatarPayload, error) {
	raw = strings.TrimSpace(raw)

	var declaredType string
	if strings.HasPrefix(raw, "data:") {
		header, body, found := strings.Cut(raw, ",")
		if !found || !strings.HasSuffix(header, ";base64") {
			return nil, errInvalidImagePayload
		}
		declaredType = strings.TrimSuffix(strings.TrimPrefix(header, "data:"), ";base64")
		raw = body
	}

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(raw)
		if err != nil {
			return nil, errInvalidImagePayload
		}
	}
	if len(data) == 0 {
		return nil, errInvalidImagePayload
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		// alguns formatos (ex.: svg) não são detectados pelo sniffing
		if !strings.HasPrefix(declaredType, "image/") {
			return nil, errInvalidImagePayload
		}
		contentType = declaredType
	}

	return &avatarPayload{data: data, contentType: contentType}, nil
}
