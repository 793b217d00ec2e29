package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-board/internal/domain/staff"
	"hotel-board/internal/handler/api"
	"hotel-board/internal/handler/middleware"
	"hotel-board/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Price       *api.PriceHandler
	Reservation *api.ReservationHandler
	Calendar    *api.CalendarHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	operator := []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(staff.RoleOperator)}

	house := engine.Group("/api/houses/:house_id")
	house.Use(authMiddleware.RequireAuth())
	{
		addRoutes(house, []route{
			{Method: http.MethodPost, Path: "/prices/calculate", Handler: h.Price.Calculate},
			{Method: http.MethodGet, Path: "/occupancy", Handler: h.Calendar.Occupancy},
			{Method: http.MethodGet, Path: "/calendar", Handler: h.Calendar.Calendar},

			{Method: http.MethodGet, Path: "/reservations/:id", Handler: h.Reservation.Get},

			{Method: http.MethodPost, Path: "/reservations", Handler: h.Reservation.Create, Mw: operator},
			{Method: http.MethodPost, Path: "/reservations/import", Handler: h.Reservation.Import, Mw: operator},
			{Method: http.MethodPost, Path: "/reservations/:id/accept", Handler: h.Reservation.Accept, Mw: operator},
			{Method: http.MethodPost, Path: "/reservations/:id/cancel", Handler: h.Reservation.Cancel, Mw: operator},
			{Method: http.MethodPut, Path: "/reservations/:id/rooms/:room_id/prices", Handler: h.Reservation.UpdatePrices, Mw: operator},
			{Method: http.MethodPost, Path: "/reservations/:id/accept-hold", Handler: h.Reservation.AcceptHold, Mw: operator},
			{Method: http.MethodPatch, Path: "/reservations/:id/guest", Handler: h.Reservation.UpdateGuest, Mw: operator},
			{Method: http.MethodPut, Path: "/reservations/:id/rooms/:room_id/move", Handler: h.Reservation.Move, Mw: operator},
			{Method: http.MethodPost, Path: "/rooms/:room_id/close", Handler: h.Reservation.CloseRoom, Mw: operator},
			{Method: http.MethodPut, Path: "/room-closes/:id", Handler: h.Reservation.UpdateRoomClose, Mw: operator},
			{Method: http.MethodDelete, Path: "/room-closes/:id", Handler: h.Reservation.DeleteRoomClose, Mw: operator},
		})
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
