package shared

import (
	"context"
	"time"

	"room-booking-api/internal/domain/building"
	"room-booking-api/internal/domain/reservation"
	"room-booking-api/internal/domain/room"
	"room-booking-api/internal/domain/roomtype"
	"room-booking-api/internal/domain/user"
	"room-booking-api/internal/infra/db"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Rooms() RoomRepository
	Buildings() BuildingRepository
	RoomTypes() RoomTypeRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	RoomByID(ctx context.Context, id int64) (*RoomSnapshot, error)
	ReservationByID(ctx context.Context, id int64) (*ReservationSnapshot, error)
	BuildingByID(ctx context.Context, id int64) (*BuildingSnapshot, error)
	RoomTypeByID(ctx context.Context, id int64) (*RoomTypeSnapshot, error)
}

// Minimal room state the reservation commands validate against.
type RoomSnapshot struct {
	ID                int64
	Capacity          int32
	WorkingHoursStart time.Time
	WorkingHoursEnd   time.Time
}

type BuildingSnapshot struct {
	ID   int64
	Name string
}

type RoomTypeSnapshot struct {
	ID   int64
	Name string
}

// Minimal reservation state for ownership checks and conflict reporting.
type ReservationSnapshot struct {
	ID        int64
	RoomID    int64
	UserID    int64
	StartTime time.Time
	EndTime   time.Time
}

type ReservationRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, res *reservation.Reservation) (int64, error)
	UpdateTimeSlot(ctx context.Context, dbtx db.DBTX, id int64, slot reservation.TimeSlot) error
	Delete(ctx context.Context, dbtx db.DBTX, id int64) error
	// FindOverlapping scans stored state for any reservation on the room whose
	// [start, end) interval overlaps slot, excluding excludeID when non-nil.
	// Returns nil when the slot is free.
	FindOverlapping(ctx context.Context, dbtx db.DBTX, roomID int64, slot reservation.TimeSlot, excludeID *int64) (*ReservationSnapshot, error)
}

type RoomRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, r *room.Room) (int64, error)
	Update(ctx context.Context, dbtx db.DBTX, id int64, r *room.Room) error
	Delete(ctx context.Context, dbtx db.DBTX, id int64) error
}

type BuildingRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, b *building.Building) (int64, error)
	Update(ctx context.Context, dbtx db.DBTX, id int64, b *building.Building) error
	Delete(ctx context.Context, dbtx db.DBTX, id int64) error
}

type RoomTypeRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, t *roomtype.RoomType) (int64, error)
	Update(ctx context.Context, dbtx db.DBTX, id int64, t *roomtype.RoomType) error
	Delete(ctx context.Context, dbtx db.DBTX, id int64) error
}

type UserRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, u *user.User) (int64, error)
}
