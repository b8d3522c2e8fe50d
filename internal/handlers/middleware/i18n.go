package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fcamara/consultores-api/internal/infrastructure/i18n"
)

const (
	// LanguageContextKey é a chave usada para armazenar o idioma no contexto do Gin
	LanguageContextKey = "language"
	// I18nServiceContextKey é a chave usada para armazenar o serviço i18n no contexto
	I18nServiceContextKey = "i18n_service"
)

// I18nMiddleware gerencia a detecção de idioma nas requisições
type I18nMiddleware struct {
	i18nService *i18n.Service
}

// NewI18nMiddleware cria um novo middleware de i18n
func NewI18nMiddleware(i18nService *i18n.Service) *I18nMiddleware {
	return &I18nMiddleware{
		i18nService: i18nService,
	}
}

// DetectLanguage detecta e configura o idioma da requisição
// Prioridade:
// 1. Query parameter ?lang=pt-BR
// 2. Accept-Language header
// 3. Idioma padrão
func (m *I18nMiddleware) DetectLanguage() gin.HandlerFunc {
	return func(c *gin.Context) {
		var lang string

		if queryLang := c.Query("lang"); queryLang != "" && m.i18nService.IsLanguageSupported(queryLang) {
			lang = queryLang
		}

		if lang == "" {
			lang = m.parseAcceptLanguage(c.GetHeader("Accept-Language"))
		}

		if lang == "" {
			lang = m.i18nService.GetDefaultLanguage()
		}

		c.Set(LanguageContextKey, lang)
		c.Set(I18nServiceContextKey, m.i18nService)
		c.Header("Content-Language", lang)

		c.Next()
	}
}

// parseAcceptLanguage retorna o primeiro idioma suportado do header, na ordem enviada.
// Exemplo: "pt,en-US;q=0.8" -> "pt-BR" (pt casa com a variante regional suportada)
func (m *I18nMiddleware) parseAcceptLanguage(acceptLang string) string {
	if acceptLang == "" {
		return ""
	}

	for _, lang := range strings.Split(acceptLang, ",") {
		lang = strings.TrimSpace(lang)
		if idx := strings.Index(lang, ";"); idx != -1 {
			lang = lang[:idx]
		}
		if lang == "" || lang == "*" {
			continue
		}

		if m.i18nService.IsLanguageSupported(lang) {
			return lang
		}

		base := lang
		if idx := strings.Index(lang, "-"); idx != -1 {
			base = lang[:idx]
		}
		if supported := m.matchBase(base); supported != "" {
			return supported
		}
	}

	return ""
}

// matchBase procura um idioma suportado com a mesma base (pt -> pt ou pt-BR)
func (m *I18nMiddleware) matchBase(base string) string {
	if m.i18nService.IsLanguageSupported(base) {
		return base
	}

	for _, supported := range m.i18nService.GetSupportedLanguages() {
		if strings.EqualFold(strings.SplitN(supported, "-", 2)[0], base) {
			return supported
		}
	}
	return ""
}
