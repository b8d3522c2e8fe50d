package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/fcamara/consultores-api/internal/handlers/middleware"
	"github.com/fcamara/consultores-api/internal/infrastructure/i18n"
)

// T traduz uma mensagem no idioma da requisição.
// Sem serviço i18n no contexto, retorna a própria chave.
func T(c *gin.Context, key string, params ...map[string]interface{}) string {
	service, ok := serviceFromContext(c)
	if !ok {
		return key
	}

	return service.T(GetLanguage(c), key, params...)
}

// HasTranslation verifica se a chave existe no idioma da requisição ou no padrão
func HasTranslation(c *gin.Context, key string) bool {
	service, ok := serviceFromContext(c)
	if !ok {
		return false
	}

	return service.HasKey(GetLanguage(c), key) || service.HasKey(service.GetDefaultLanguage(), key)
}

// GetLanguage retorna o idioma configurado no contexto da requisição
func GetLanguage(c *gin.Context) string {
	if lang := c.GetString(middleware.LanguageContextKey); lang != "" {
		return lang
	}

	if service, ok := serviceFromContext(c); ok {
		return service.GetDefaultLanguage()
	}
	return "pt-BR"
}

func serviceFromContext(c *gin.Context) (*i18n.Service, bool) {
	value, exists := c.Get(middleware.I18nServiceContextKey)
	if !exists {
		return nil, false
	}

	service, ok := value.(*i18n.Service)
	return service, ok
}
