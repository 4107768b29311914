package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPreBooking BookingStatus = "PRE_BOOKING"
	StatusConfirmed  BookingStatus = "CONFIRMED"
	StatusCheckedIn  BookingStatus = "CHECKED_IN"
	StatusCheckedOut BookingStatus = "CHECKED_OUT"
	StatusCancelled  BookingStatus = "CANCELLED"
	StatusNoShow     BookingStatus = "NO_SHOW"
)

// Booking represents a room reservation for a half-open date interval
// [CheckIn, CheckOut) at calendar-day granularity: the check-out day is
// handed back in the morning and may be someone else's check-in day.
type Booking struct {
	ID            int64
	BookingNumber string // human-readable, sequential per year: RES-2025-0001
	NumberYear    int
	NumberSeq     int

	RoomID  int64
	GuestID int64

	CheckIn  time.Time
	CheckOut time.Time

	Adults   int
	Children int

	TotalAmount float64
	PaidAmount  float64

	Status BookingStatus
	Notes  *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies its room for overlap purposes
func (b *Booking) IsActive() bool {
	return b.Status == StatusPreBooking ||
		b.Status == StatusConfirmed ||
		b.Status == StatusCheckedIn
}

// IsTerminal returns true if the booking reached an absorbing state
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCheckedOut ||
		b.Status == StatusCancelled ||
		b.Status == StatusNoShow
}

// CanCheckIn returns true if the booking can be checked in
func (b *Booking) CanCheckIn() bool {
	return b.Status == StatusPreBooking || b.Status == StatusConfirmed
}

// CanCheckOut returns true if the booking can be checked out
func (b *Booking) CanCheckOut() bool {
	return b.Status == StatusCheckedIn
}

// CanBeCancelled returns true if the booking can still be cancelled
// (any non-terminal state; a checked-out booking is already finalized)
func (b *Booking) CanBeCancelled() bool {
	return !b.IsTerminal()
}

// CanBeUpdated returns true if room/date/payment edits are allowed
func (b *Booking) CanBeUpdated() bool {
	return !b.IsTerminal()
}

// TotalGuests returns the total number of guests on the booking
func (b *Booking) TotalGuests() int {
	return b.Adults + b.Children
}

// Nights returns the number of nights covered by the booking interval
func (b *Booking) Nights() int {
	return DaysBetween(b.CheckIn, b.CheckOut)
}

// RoomBookingsFilter filter for listing bookings
type RoomBookingsFilter struct {
	RoomID          *int64         // optional, nil = all rooms
	StartDate       *time.Time     // optional period start
	EndDate         *time.Time     // optional period end
	Status          *BookingStatus // optional status filter
	IncludeInactive bool           // include cancelled / no-show bookings
}
