package components

import (
	"room-booking-api/internal/handler"
	"room-booking-api/internal/handler/api"
	"room-booking-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewReservationHandler,
		api.NewRoomHandler,
		api.NewBuildingHandler,
		api.NewRoomTypeHandler,
		middleware.NewAuthMiddleware,
		func(auth *api.AuthHandler, reservation *api.ReservationHandler, room *api.RoomHandler, building *api.BuildingHandler, roomType *api.RoomTypeHandler) handler.Handlers {
			return handler.Handlers{
				Auth:        auth,
				Reservation: reservation,
				Room:        room,
				Building:    building,
				RoomType:    roomType,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
