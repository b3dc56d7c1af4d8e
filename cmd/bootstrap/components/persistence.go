package components

import (
	"room-booking-api/internal/infra/db"
	"room-booking-api/internal/infra/readstore"
	"room-booking-api/internal/infra/uow"
	"room-booking-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Write repositories are constructed inside the unit of work, so only the
// UoW and the pool-backed read stores are provided here.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			readstore.NewRoomReadStore,
			fx.As(new(queries.RoomReadStore)),
		),
		fx.Annotate(
			readstore.NewBuildingReadStore,
			fx.As(new(queries.BuildingReadStore)),
		),
		fx.Annotate(
			readstore.NewRoomTypeReadStore,
			fx.As(new(queries.RoomTypeReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
