package domain

import "time"

// RoomStatus represents the operational status of a room
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "AVAILABLE"
	RoomOccupied    RoomStatus = "OCCUPIED"
	RoomCleaning    RoomStatus = "CLEANING"
	RoomMaintenance RoomStatus = "MAINTENANCE"
	RoomBlocked     RoomStatus = "BLOCKED"
)

// Room represents a bookable room of the pousada
type Room struct {
	ID        int64
	Name      string
	MaxGuests int
	BasePrice float64 // price per night
	Status    RoomStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanHost returns true if the room fits the requested number of guests
func (r *Room) CanHost(guests int) bool {
	return r.MaxGuests >= guests
}

// IsBookable returns true if the room is operationally available for new bookings
func (r *Room) IsBookable() bool {
	return r.Status == RoomAvailable
}

// IsManuallyHeld returns true if the room is in a manually set state that
// booking-lifecycle writes must never overwrite
func (r *Room) IsManuallyHeld() bool {
	return r.Status == RoomMaintenance || r.Status == RoomBlocked
}

// RoomQuote is a room annotated with a price quote for a requested interval
type RoomQuote struct {
	Room       *Room
	Nights     int
	TotalPrice float64
}
