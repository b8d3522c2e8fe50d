package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger verifica a conectividade com o banco
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingerFunc adapta uma função para Pinger
type PingerFunc func(ctx context.Context) error

func (f PingerFunc) Ping(ctx context.Context) error { return f(ctx) }

// HealthHandler responde o health check da API
type HealthHandler struct {
	db  Pinger
	env string
}

// NewHealthHandler cria um novo HealthHandler
func NewHealthHandler(db Pinger, env string) *HealthHandler {
	return &HealthHandler{db: db, env: env}
}

// Health godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status, dbStatus, code := "ok", "ok", http.StatusOK
	if err := h.db.Ping(ctx); err != nil {
		status, dbStatus, code = "degraded", "down", http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status": status,
		"db":     dbStatus,
		"env":    h.env,
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
