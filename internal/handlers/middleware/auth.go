package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fcamara/consultores-api/internal/domain/entities"
	domainerrors "github.com/fcamara/consultores-api/internal/domain/errors"
	"github.com/fcamara/consultores-api/internal/domain/ports"
)

// ConsultorContextKey guarda o consultor autenticado no contexto do Gin
const ConsultorContextKey = "consultor"

// ConsultorResolver carrega o consultor dono do token
type ConsultorResolver interface {
	ResolveConsultor(ctx context.Context, id int64) (*entities.Consultor, error)
}

// ErrorWriter escreve a resposta de erro da requisição
type ErrorWriter func(c *gin.Context, err error)

// Authenticate valida o bearer token e resolve o consultor.
// Token ausente, inválido ou de consultor inexistente responde 401.
func Authenticate(verifier ports.TokenVerifier, resolver ConsultorResolver, writeError ErrorWriter) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			writeError(c, domainerrors.New(domainerrors.KindUnauthenticated, domainerrors.MsgUnauthenticated))
			return
		}

		id, err := verifier.Verify(token)
		if err != nil {
			writeError(c, domainerrors.Wrap(domainerrors.KindUnauthenticated, domainerrors.MsgUnauthenticated, err))
			return
		}

		consultor, err := resolver.ResolveConsultor(c.Request.Context(), id)
		if err != nil {
			if domainerrors.IsKind(err, domainerrors.KindNotFound) {
				err = domainerrors.Wrap(domainerrors.KindUnauthenticated, domainerrors.MsgUnauthenticated, err)
			}
			writeError(c, err)
			return
		}

		c.Set(ConsultorContextKey, consultor)
		c.Next()
	}
}

// CurrentConsultor retorna o consultor autenticado, se houver
func CurrentConsultor(c *gin.Context) (*entities.Consultor, bool) {
	value, exists := c.Get(ConsultorContextKey)
	if !exists {
		return nil, false
	}
	consultor, ok := value.(*entities.Consultor)
	return consultor, ok && consultor != nil
}

func bearerToken(header string) string {
	parts := strings.Fields(strings.TrimSpace(header))
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}
