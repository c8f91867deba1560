// Package router wires the gin engine: middlewares, public routes and the
// permission-guarded API groups.
package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pecbr/acaboi/internal/server/handlers"
	"github.com/pecbr/acaboi/internal/server/middleware"
)

// Handlers bundles every HTTP adapter the router mounts.
type Handlers struct {
	Auth        *handlers.AuthHandler
	Produtor    *handlers.ProdutorHandler
	Propriedade *handlers.PropriedadeHandler
	Frigorifico *handlers.FrigorificoHandler
	Categoria   *handlers.CategoriaHandler
	Abate       *handlers.AbateHandler
	Escala      *handlers.EscalaHandler
	Agenda      *handlers.AgendaHandler
	Importacao  *handlers.ImportacaoHandler
	Relatorio   *handlers.RelatorioHandler
	Dashboard   *handlers.DashboardHandler
	User        *handlers.UserHandler
}

// New wires the gin engine with required routes and middlewares. Technicians
// reach only the schedule and agenda groups; everything else needs the admin
// role.
func New(h Handlers, verifier middleware.TokenVerifier, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	api.POST("/auth/login", h.Auth.Login)
	api.POST("/auth/recover", h.Auth.Recover)

	// Read-only share of the weekly calendar, no login required.
	api.GET("/agenda/publica", h.Agenda.Semana)
	api.GET("/agenda/publica/opcoes", h.Agenda.Opcoes)

	authed := api.Group("", middleware.RequireAuth(verifier, logger))
	authed.POST("/auth/logout", h.Auth.Logout)
	authed.GET("/auth/me", h.Auth.Me)

	agenda := authed.Group("/agenda", middleware.RequirePermission("agenda"))
	agenda.GET("", h.Agenda.Semana)
	agenda.GET("/opcoes", h.Agenda.Opcoes)

	escala := authed.Group("/escala", middleware.RequirePermission("escala"))
	escala.GET("", h.Escala.List)
	escala.GET("/opcoes", h.Escala.Opcoes)
	escala.GET("/:id", h.Escala.Get)
	escala.POST("", h.Escala.Create)
	escala.PUT("/:id", h.Escala.Update)
	escala.DELETE("/:id", h.Escala.Delete)

	admin := authed.Group("", middleware.RequirePermission("admin"))

	admin.GET("/dashboard", h.Dashboard.Resumo)

	mountCRUD(admin.Group("/produtores"), h.Produtor.List, h.Produtor.Get, h.Produtor.Create, h.Produtor.Update, h.Produtor.Delete)
	mountCRUD(admin.Group("/propriedades"), h.Propriedade.List, h.Propriedade.Get, h.Propriedade.Create, h.Propriedade.Update, h.Propriedade.Delete)
	mountCRUD(admin.Group("/frigorificos"), h.Frigorifico.List, h.Frigorifico.Get, h.Frigorifico.Create, h.Frigorifico.Update, h.Frigorifico.Delete)
	mountCRUD(admin.Group("/categorias"), h.Categoria.List, h.Categoria.Get, h.Categoria.Create, h.Categoria.Update, h.Categoria.Delete)
	mountCRUD(admin.Group("/abates"), h.Abate.List, h.Abate.Get, h.Abate.Create, h.Abate.Update, h.Abate.Delete)

	admin.POST("/importacao/preview", h.Importacao.Preview)
	admin.POST("/importacao", h.Importacao.Import)

	admin.GET("/relatorios/abates", h.Relatorio.Abates)
	admin.GET("/relatorios/produtores", h.Relatorio.Produtores)
	admin.GET("/relatorios/frigorificos", h.Relatorio.Frigorificos)
	admin.GET("/relatorios/export/:tipo/:formato", h.Relatorio.Export)

	admin.GET("/usuarios", h.User.List)
	admin.POST("/usuarios", h.User.Create)
	admin.PUT("/usuarios/:id", h.User.Update)
	admin.PATCH("/usuarios/:id/active", h.User.SetActive)
	admin.DELETE("/usuarios/:id", h.User.Delete)

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func mountCRUD(g *gin.RouterGroup, list, get, create, update, remove gin.HandlerFunc) {
	g.GET("", list)
	g.GET("/:id", get)
	g.POST("", create)
	g.PUT("/:id", update)
	g.DELETE("/:id", remove)
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
