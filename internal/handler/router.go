package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vps-rental/internal/handler/api"
	"vps-rental/internal/handler/middleware"
	"vps-rental/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	offeringHandler *api.OfferingHandler,
	orderHandler *api.OrderHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, offeringHandler, orderHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	offeringHandler *api.OfferingHandler,
	orderHandler *api.OrderHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		offerings := apiGroup.Group("/offerings")
		{
			// Catalog reads stay open for guest browsing.
			addRoutes(offerings, []route{
				{Method: http.MethodGet, Path: "", Handler: offeringHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: offeringHandler.Get},
				{Method: http.MethodGet, Path: "/:id/specifications", Handler: offeringHandler.ListSpecifications},
			})

			catalogWrite := offerings.Group("")
			catalogWrite.Use(authMiddleware.RequireAuth())
			addRoutes(catalogWrite, []route{
				{Method: http.MethodPost, Path: "", Handler: offeringHandler.Create},
				{Method: http.MethodPut, Path: "/:id", Handler: offeringHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: offeringHandler.Delete},
				{Method: http.MethodPost, Path: "/:id/specifications", Handler: offeringHandler.CreateSpecification},
			})
		}

		specifications := apiGroup.Group("/specifications")
		{
			addRoutes(specifications, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: offeringHandler.GetSpecification},
			})

			specWrite := specifications.Group("")
			specWrite.Use(authMiddleware.RequireAuth())
			addRoutes(specWrite, []route{
				{Method: http.MethodPut, Path: "/:id", Handler: offeringHandler.UpdateSpecification},
				{Method: http.MethodDelete, Path: "/:id", Handler: offeringHandler.DeleteSpecification},
			})
		}

		orders := apiGroup.Group("/orders")
		orders.Use(authMiddleware.RequireAuth())
		{
			addRoutes(orders, []route{
				{Method: http.MethodGet, Path: "", Handler: orderHandler.List},
				{Method: http.MethodGet, Path: "/draft", Handler: orderHandler.GetDraft},
				{Method: http.MethodPost, Path: "/draft", Handler: orderHandler.AddDraftOffering},
				{Method: http.MethodGet, Path: "/:id", Handler: orderHandler.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: orderHandler.UpdateStatus},
				{Method: http.MethodPut, Path: "/:id/formed", Handler: orderHandler.Form},
				{Method: http.MethodDelete, Path: "/:id", Handler: orderHandler.Delete},
				{Method: http.MethodDelete, Path: "/:id/lines/:offering_id", Handler: orderHandler.RemoveLine},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
