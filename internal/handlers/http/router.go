package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerfiles "github.com/swaggo/files"
	ginswagger "github.com/swaggo/gin-swagger"

	"github.com/fcamara/consultores-api/internal/domain/ports"
	"github.com/fcamara/consultores-api/internal/handlers/middleware"
	"github.com/fcamara/consultores-api/internal/infrastructure/i18n"
)

// RouterConfig reúne as dependências das rotas
type RouterConfig struct {
	BaseURL        string
	AllowedOrigins string
	Logger         ports.Logger
	I18n           *i18n.Service
	Verifier       ports.TokenVerifier
	Consultores    *ConsultorHandler
	Health         *HealthHandler
	ErrorWriter    *ErrorWriter
	// Registry recebe as métricas HTTP; nil desabilita /metrics
	Registry *prometheus.Registry
	// AvatarDir é servido em /avatars quando o driver de armazenamento é disk
	AvatarDir string
	// Swagger habilita /swagger/*any
	Swagger bool
}

// NewRouter monta o engine Gin com middlewares e rotas da API
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(cfg.Logger))

	if cfg.Registry != nil {
		metrics := middleware.NewMetrics(cfg.Registry)
		router.Use(metrics.Handler())
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(cfg.Registry, promhttp.HandlerOpts{})))
	}

	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.BaseURL)
		c.Next()
	})
	router.Use(middleware.NewI18nMiddleware(cfg.I18n).DetectLanguage())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	router.GET("/health", cfg.Health.Health)

	if cfg.Swagger {
		router.GET("/swagger/*any", ginswagger.WrapHandler(swaggerfiles.Handler))
	}

	if cfg.AvatarDir != "" {
		router.Static("/avatars", cfg.AvatarDir)
	}

	authenticate := middleware.Authenticate(cfg.Verifier, cfg.Consultores.consultorService, cfg.ErrorWriter.Write)

	v1 := router.Group("/api/v1")
	{
		consultores := v1.Group("/consultores")
		{
			consultores.GET("", cfg.Consultores.ListConsultores)
			consultores.GET("/:id", cfg.Consultores.GetConsultor)
			consultores.POST("", cfg.Consultores.CreateConsultor)
			consultores.PUT("", authenticate, cfg.Consultores.UpdateConsultor)
			consultores.DELETE("/:id", authenticate, cfg.Consultores.DeleteConsultor)
		}
	}

	return router
}
