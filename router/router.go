package router

import (
	"net/http"
	"strings"

	"auracash/api"
	"auracash/config"
	"auracash/database"
	_ "auracash/docs"
	"auracash/middleware"
	"auracash/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Services everything the handlers depend on, built once at startup.
type Services struct {
	Store    *database.Store
	Auth     *service.AuthService
	Ledger   *service.LedgerService
	Catalog  *service.CatalogService
	Reports  *service.ReportService
	Sessions *middleware.SessionManager
}

// NewServices wires the services on top of one store.
func NewServices(cfg *config.Config, store *database.Store) *Services {
	return &Services{
		Store:    store,
		Auth:     service.NewAuthService(store, service.NewEmailService(&cfg.Email)),
		Ledger:   service.NewLedgerService(store),
		Catalog:  service.NewCatalogService(store),
		Reports:  service.NewReportService(store),
		Sessions: middleware.NewSessionManager(cfg),
	}
}

// SetupRouter builds the HTTP routes.
func SetupRouter(cfg *config.Config, svc *Services) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.RequestLogger(), middleware.Recovery())
	r.Use(CORSMiddleware(cfg.Server.BaseURL))

	authHandler := api.NewAuthHandler(svc.Auth, svc.Sessions)
	ledgerHandler := api.NewLedgerHandler(svc.Ledger, svc.Catalog)
	categoryHandler := api.NewCategoryHandler(svc.Catalog)
	goalHandler := api.NewGoalHandler(svc.Catalog)
	materialHandler := api.NewMaterialHandler(svc.Catalog)
	sharedHandler := api.NewSharedAccountHandler(svc.Catalog)
	settingsHandler := api.NewSettingsHandler(svc.Auth, svc.Sessions)
	reportHandler := api.NewReportHandler(svc.Reports)

	// public pages
	r.GET("/", authHandler.Index)
	r.GET("/login", authHandler.LoginPage)
	r.POST("/login", authHandler.Login)
	for _, path := range []string{"/cadastro", "/registrar"} {
		r.GET(path, authHandler.RegisterPage)
		r.POST(path, authHandler.Register)
	}
	r.GET("/logout", authHandler.Logout)

	// session required
	authorized := r.Group("")
	authorized.Use(middleware.RequireSession(svc.Sessions))
	{
		authorized.GET("/dashboard", ledgerHandler.Dashboard)

		authorized.GET("/transacoes", ledgerHandler.ListTransactions)
		authorized.POST("/transacoes", ledgerHandler.CreateTransactionForm)

		authorized.GET("/categorias", categoryHandler.List)
		authorized.POST("/categorias", categoryHandler.CreateForm)

		authorized.GET("/metas", goalHandler.List)
		authorized.POST("/metas", goalHandler.CreateForm)

		authorized.GET("/empreendedor", materialHandler.List)
		authorized.POST("/empreendedor", materialHandler.CreateForm)

		authorized.GET("/compartilhada", sharedHandler.List)
		authorized.POST("/compartilhada", sharedHandler.CreateForm)

		authorized.GET("/configuracoes", settingsHandler.Show)
		authorized.POST("/configuracoes", settingsHandler.UpdateProfile)
		authorized.POST("/configuracoes/senha", settingsHandler.ChangePassword)

		authorized.GET("/relatorios", reportHandler.Summary)
		authorized.GET("/relatorios/exportar", reportHandler.Export)

		authorized.GET("/dicas", api.Tips)

		apiGroup := authorized.Group("/api")
		{
			apiGroup.POST("/transacao", ledgerHandler.CreateTransaction)
			apiGroup.POST("/categoria", categoryHandler.Create)
			apiGroup.POST("/meta", goalHandler.Create)
			apiGroup.POST("/material", materialHandler.Create)
			apiGroup.POST("/compartilhada", sharedHandler.Create)
		}
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/health", api.NewHealthHandler(svc.Store).Check)

	return r
}

// CORSMiddleware allows credentialed requests from the configured front-end
// origin only. Without one, no CORS headers are sent.
func CORSMiddleware(allowedOrigin string) gin.HandlerFunc {
	allowedOrigin = strings.TrimRight(allowedOrigin, "/")
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if allowedOrigin == "" || origin == "" || origin != allowedOrigin {
			c.Next()
			return
		}

		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-Request-ID, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")
		c.Writer.Header().Set("Vary", "Origin")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
