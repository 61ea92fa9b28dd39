package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"meetingsync/internal/handler/api"
	"meetingsync/internal/handler/middleware"
	"meetingsync/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	validationHandler *api.ValidationHandler,
	bookingHandler *api.BookingHandler,
	roomHandler *api.RoomHandler,
	accountHandler *api.AccountHandler,
	adminHandler *api.AdminHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, validationHandler, bookingHandler, roomHandler, accountHandler, adminHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	validationHandler *api.ValidationHandler,
	bookingHandler *api.BookingHandler,
	roomHandler *api.RoomHandler,
	accountHandler *api.AccountHandler,
	adminHandler *api.AdminHandler,
) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		meetings := apiGroup.Group("/meetings")
		{
			addRoutes(meetings, []route{
				{Method: http.MethodPost, Path: "/validate", Handler: validationHandler.ValidateMeeting},
				{Method: http.MethodPost, Path: "/book", Handler: bookingHandler.BookMeeting},
				{Method: http.MethodPatch, Path: "/sessions/:id", Handler: bookingHandler.RescheduleSession},
				{Method: http.MethodDelete, Path: "/sessions/:id", Handler: bookingHandler.CancelSession},
			})
		}

		rooms := apiGroup.Group("/rooms")
		{
			addRoutes(rooms, []route{
				{Method: http.MethodGet, Path: "/available", Handler: roomHandler.FindAvailable},
				{Method: http.MethodGet, Path: "/optimal", Handler: roomHandler.FindOptimal},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: roomHandler.CheckAvailability},
				{Method: http.MethodGet, Path: "/:id/utilization", Handler: roomHandler.GetUtilization},
			})
		}

		accounts := apiGroup.Group("/accounts")
		{
			addRoutes(accounts, []route{
				{Method: http.MethodGet, Path: "/load", Handler: accountHandler.GetLoadBalancing},
				{Method: http.MethodGet, Path: "/capacity", Handler: accountHandler.CheckCapacity},
			})
		}

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/cache/clear", Handler: adminHandler.ClearCache},
				{Method: http.MethodGet, Path: "/cache/stats", Handler: adminHandler.GetCacheStats},
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
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
