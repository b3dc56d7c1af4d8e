package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"room-booking-api/internal/domain/user"
	"room-booking-api/internal/handler/api"
	"room-booking-api/internal/handler/middleware"
	"room-booking-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Reservation *api.ReservationHandler
	Room        *api.RoomHandler
	Building    *api.BuildingHandler
	RoomType    *api.RoomTypeHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		// Catalog reads are public; mutations are admin-only.
		adminOnly := []gin.HandlerFunc{authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleAdmin)}

		rooms := apiGroup.Group("/rooms")
		{
			addRoutes(rooms, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Room.ListRooms},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Room.GetRoom},
				{Method: http.MethodPost, Path: "", Handler: h.Room.CreateRoom, Mw: adminOnly},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Room.UpdateRoom, Mw: adminOnly},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Room.DeleteRoom, Mw: adminOnly},
			})
		}

		buildings := apiGroup.Group("/buildings")
		{
			addRoutes(buildings, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Building.ListBuildings},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Building.GetBuilding},
				{Method: http.MethodPost, Path: "", Handler: h.Building.CreateBuilding, Mw: adminOnly},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Building.UpdateBuilding, Mw: adminOnly},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Building.DeleteBuilding, Mw: adminOnly},
			})
		}

		roomTypes := apiGroup.Group("/room-types")
		{
			addRoutes(roomTypes, []route{
				{Method: http.MethodGet, Path: "", Handler: h.RoomType.ListRoomTypes},
				{Method: http.MethodGet, Path: "/:id", Handler: h.RoomType.GetRoomType},
				{Method: http.MethodPost, Path: "", Handler: h.RoomType.CreateRoomType, Mw: adminOnly},
				{Method: http.MethodPut, Path: "/:id", Handler: h.RoomType.UpdateRoomType, Mw: adminOnly},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.RoomType.DeleteRoomType, Mw: adminOnly},
			})
		}

		// Booking endpoints require the USER role; admins manage the catalog
		// but do not hold reservations of their own.
		userOnly := authMiddleware.RequireRole(user.RoleUser)

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.CreateReservation, Mw: []gin.HandlerFunc{userOnly}},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Reservation.UpdateReservation, Mw: []gin.HandlerFunc{userOnly}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Reservation.DeleteReservation, Mw: []gin.HandlerFunc{userOnly}},
				{Method: http.MethodGet, Path: "/my", Handler: h.Reservation.ListMyReservations},
				{Method: http.MethodGet, Path: "/room/:roomId", Handler: h.Reservation.ListRoomReservations},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.GetReservation},
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
