package reservation

// Reservation entity. Lifecycle: created via the validated create command,
// time fields mutated via the validated update command, deleted by its owner.
// Deleted is terminal; there are no other states. Creation and update
// timestamps belong to the read models, not the entity.
type Reservation struct {
	id       int64
	roomID   int64
	userID   int64
	timeSlot TimeSlot
}

func NewReservation(roomID, userID int64, slot TimeSlot) *Reservation {
	return &Reservation{
		roomID:   roomID,
		userID:   userID,
		timeSlot: slot,
	}
}

func ReconstructReservation(id, roomID, userID int64, slot TimeSlot) *Reservation {
	return &Reservation{
		id:       id,
		roomID:   roomID,
		userID:   userID,
		timeSlot: slot,
	}
}

// IsOwnedBy is the ownership rule for update and delete: only the creating
// user may mutate a reservation.
func (r *Reservation) IsOwnedBy(userID int64) bool {
	return r.userID == userID
}

func (r *Reservation) Reschedule(slot TimeSlot) {
	r.timeSlot = slot
}

func (r *Reservation) ID() int64          { return r.id }
func (r *Reservation) RoomID() int64      { return r.roomID }
func (r *Reservation) UserID() int64      { return r.userID }
func (r *Reservation) TimeSlot() TimeSlot { return r.timeSlot }
