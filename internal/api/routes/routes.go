package routes

import (
	"net/http"

	"github.com/giant-seguros/app-backoffice/internal/api/handlers"
	"github.com/giant-seguros/app-backoffice/internal/compositekey"
	"github.com/giant-seguros/app-backoffice/internal/config"
	middlewares "github.com/giant-seguros/app-backoffice/internal/middleware"
	"github.com/giant-seguros/app-backoffice/internal/seguradora"
	"github.com/giant-seguros/app-backoffice/internal/seguros"
	"github.com/giant-seguros/app-backoffice/internal/services"
	"github.com/giant-seguros/app-backoffice/internal/submission"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

func SetupRouter(cfg *config.Config, logger *zap.Logger) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(logger))
	r.Use(middlewares.RequestTiming())
	r.Use(corsMiddleware(cfg.CorsAllowedOrigins))

	client := seguradora.NewFromConfig(cfg, logger)

	lookupCache := services.NewLRUCache[[]compositekey.Candidate](cfg.LookupCacheMaxSize, cfg.LookupCacheTTL)
	lookupService := services.NewLookupService(client, lookupCache, logger)
	dashboardService := services.NewDashboardService(client, cfg.ExpiringPoliciesWindow, logger)

	catalogo := seguros.NewCatalogo(seguros.Options{PrefixoApolice: cfg.PolicyNumberPrefix})
	registry := submission.NewRegistry(cfg.FormSessionMax, cfg.FormSessionTTL)

	healthHandler := handlers.NewHealthHandler(client)
	formularioHandler := handlers.NewFormularioHandler(catalogo, lookupService, client, registry, cfg.SeguradoraTimeout, logger)
	lookupHandler := handlers.NewLookupHandler(lookupService, logger)
	painelHandler := handlers.NewPainelHandler(dashboardService, logger)

	r.GET("/liveness", healthHandler.Liveness)
	r.GET("/readiness", healthHandler.Readiness)
	r.GET("/health", healthHandler.Health)

	api := r.Group("/api/v1")
	api.Use(middlewares.SessionGuard(cfg.SessionCookieName, cfg.SignInPath))
	{
		api.GET("/lookups/:nome", lookupHandler.Opcoes)

		formularios := api.Group("/formularios")
		{
			formularios.POST("/:tipo", formularioHandler.Montar)
			formularios.POST("/:tipo/validar", formularioHandler.Validar)
			formularios.GET("/:tipo/:id", formularioHandler.Obter)
			formularios.PATCH("/:tipo/:id", formularioHandler.Editar)
			formularios.DELETE("/:tipo/:id", formularioHandler.Fechar)
			formularios.POST("/:tipo/:id/submit", formularioHandler.Submeter)
		}

		painel := api.Group("/painel")
		{
			painel.GET("/resumo", painelHandler.Resumo)
			painel.GET("/ocorrencias", painelHandler.Ocorrencias)
			painel.GET("/apolices-a-vencer", painelHandler.ApolicesAVencer)
		}
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// corsMiddleware libera com credenciais apenas as origens configuradas.
// Origens fora da lista não recebem cabeçalhos CORS e o preflight é recusado.
func corsMiddleware(allowed []string) gin.HandlerFunc {
	origins := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		origins[o] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Writer.Header().Add("Vary", "Origin")
		}

		_, permitted := origins[origin]
		if origin != "" && !permitted {
			if c.Request.Method == http.MethodOptions {
				c.AbortWithStatus(http.StatusForbidden)
				return
			}
			c.Next()
			return
		}

		if permitted {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, X-Request-ID, Authorization, accept, origin, Cache-Control, X-Requested-With")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PATCH, DELETE")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
