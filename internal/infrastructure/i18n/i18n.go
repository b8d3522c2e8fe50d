package i18n

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
	"sync"
	"text/template"
)

//go:embed locales/*.json
var embeddedLocales embed.FS

// catalog guarda as mensagens de um idioma; mensagens com {{ }} já ficam
// compiladas em templates
type catalog struct {
	messages  map[string]string
	templates map[string]*template.Template
}

// Service gerencia traduções e internacionalização
type Service struct {
	mu              sync.RWMutex
	catalogs        map[string]*catalog
	defaultLanguage string
}

// NewService cria um novo serviço de i18n a partir de um diretório
func NewService(localesDir, defaultLang string) (*Service, error) {
	return NewServiceFromFS(os.DirFS(localesDir), ".", defaultLang)
}

// NewEmbeddedService usa as traduções embutidas no binário (locales/*.json)
func NewEmbeddedService(defaultLang string) (*Service, error) {
	return NewServiceFromFS(embeddedLocales, "locales", defaultLang)
}

// NewServiceFromFS carrega os arquivos <idioma>.json de dir dentro de fsys
func NewServiceFromFS(fsys fs.FS, dir, defaultLang string) (*Service, error) {
	files, err := fs.Glob(fsys, path.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to find locale files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no locale files found in %s", dir)
	}

	s := &Service{
		catalogs:        make(map[string]*catalog, len(files)),
		defaultLanguage: defaultLang,
	}

	for _, file := range files {
		lang := strings.TrimSuffix(path.Base(file), ".json")

		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read locale file %s: %w", file, err)
		}

		var messages map[string]string
		if err := json.Unmarshal(data, &messages); err != nil {
			return nil, fmt.Errorf("failed to parse locale file %s: %w", file, err)
		}

		cat, err := newCatalog(messages)
		if err != nil {
			return nil, fmt.Errorf("invalid message in %s: %w", file, err)
		}
		s.catalogs[lang] = cat
	}

	if _, ok := s.catalogs[defaultLang]; !ok {
		return nil, fmt.Errorf("default language %s not found in locale files", defaultLang)
	}

	return s, nil
}

func newCatalog(messages map[string]string) (*catalog, error) {
	cat := &catalog{
		messages:  messages,
		templates: make(map[string]*template.Template),
	}
	for key, msg := range messages {
		if !strings.Contains(msg, "{{") {
			continue
		}
		tmpl, err := template.New(key).Parse(msg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		cat.templates[key] = tmpl
	}
	return cat, nil
}

// T traduz uma chave para o idioma especificado, caindo para o idioma base
// (pt-BR -> pt) e depois para o idioma padrão. Chaves desconhecidas voltam
// como a própria chave. Parâmetros usam a sintaxe de templates ({{.Field}}).
func (s *Service) T(lang, key string, params ...map[string]interface{}) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cat, message := s.lookup(lang, key)
	if cat == nil {
		return key
	}

	tmpl, ok := cat.templates[key]
	if !ok || len(params) == 0 {
		return message
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, params[0]); err != nil {
		return message
	}
	return buf.String()
}

// lookup percorre idioma, idioma base e idioma padrão
func (s *Service) lookup(lang, key string) (*catalog, string) {
	for _, candidate := range s.fallbacks(lang) {
		if cat, ok := s.catalogs[candidate]; ok {
			if msg, ok := cat.messages[key]; ok && msg != "" {
				return cat, msg
			}
		}
	}
	return nil, ""
}

func (s *Service) fallbacks(lang string) []string {
	chain := make([]string, 0, 3)
	if lang != "" {
		chain = append(chain, lang)
		if base, _, found := strings.Cut(lang, "-"); found {
			chain = append(chain, base)
		}
	}
	return append(chain, s.defaultLanguage)
}

// GetDefaultLanguage retorna o idioma padrão configurado
func (s *Service) GetDefaultLanguage() string {
	return s.defaultLanguage
}

// GetSupportedLanguages retorna lista de idiomas suportados
func (s *Service) GetSupportedLanguages() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	langs := make([]string, 0, len(s.catalogs))
	for lang := range s.catalogs {
		langs = append(langs, lang)
	}
	return langs
}

// HasKey verifica se a chave existe exatamente no idioma informado
func (s *Service) HasKey(lang, key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cat, ok := s.catalogs[lang]
	if !ok {
		return false
	}
	return cat.messages[key] != ""
}

func (s *Service) IsLanguageSupported(lang string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.catalogs[lang]
	return ok
}
