package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crm-service/internal/handler/api"
	"crm-service/internal/handler/middleware"
	"crm-service/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, customerHandler *api.CustomerHandler, productHandler *api.ProductHandler, orderHandler *api.OrderHandler, jobHandler *api.JobHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, customerHandler, productHandler, orderHandler, jobHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, customerHandler *api.CustomerHandler, productHandler *api.ProductHandler, orderHandler *api.OrderHandler, jobHandler *api.JobHandler) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		customers := apiGroup.Group("/customers")
		{
			addRoutes(customers, []route{
				{Method: http.MethodPost, Path: "", Handler: customerHandler.Create},
				{Method: http.MethodPost, Path: "/bulk", Handler: customerHandler.BulkCreate},
				{Method: http.MethodGet, Path: "/count", Handler: customerHandler.Count},
			})
		}

		products := apiGroup.Group("/products")
		{
			addRoutes(products, []route{
				{Method: http.MethodPost, Path: "", Handler: productHandler.Create},
				{Method: http.MethodGet, Path: "/low-stock", Handler: productHandler.LowStock},
			})
		}

		orders := apiGroup.Group("/orders")
		{
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "", Handler: orderHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: orderHandler.List},
				{Method: http.MethodGet, Path: "/report", Handler: orderHandler.Report},
			})
		}

		jobGroup := apiGroup.Group("/jobs")
		{
			addRoutes(jobGroup, []route{
				{Method: http.MethodPost, Path: "/:name/run", Handler: jobHandler.Run},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
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
