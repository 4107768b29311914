package domain

import "errors"

// Event represents a guarded lifecycle event of a booking.
// Events go through NextStatus, which enforces the transition graph.
// The admin "change status" action is a deliberately separate path
// (ParseStatus + a direct repository write) and never goes through here.
type Event string

const (
	EventConfirm    Event = "CONFIRM"      // first payment arrives
	EventCheckIn    Event = "CHECK_IN"     // guest arrives
	EventCheckOut   Event = "CHECK_OUT"    // guest leaves
	EventCancel     Event = "CANCEL"       // booking cancelled
	// EventMarkNoShow keeps the transition table total: NO_SHOW is set
	// operationally through the status override (ParseStatus + direct write),
	// but the guarded transition stays defined for callers that want the
	// machine to vet it.
	EventMarkNoShow Event = "MARK_NO_SHOW" // guest never arrived
)

var (
	// ErrInvalidTransition возвращается, когда событие недопустимо в текущем статусе
	ErrInvalidTransition = errors.New("domain: invalid status transition")

	// ErrAlreadyFinalized возвращается при попытке отменить завершённое бронирование
	ErrAlreadyFinalized = errors.New("domain: booking is already finalized")

	// ErrUnknownStatus возвращается при неизвестном значении статуса
	ErrUnknownStatus = errors.New("domain: unknown booking status")
)

// NextStatus returns the status a booking moves to when `event` occurs in
// status `current`. Every (status, event) pair outside the happy path returns
// an error and implies the caller must leave the booking unchanged.
//
//	PRE_BOOKING -> CONFIRMED -> CHECKED_IN -> CHECKED_OUT
//	CANCELLED and NO_SHOW are absorbing, reachable from any non-terminal
//	state except CHECKED_OUT.
func NextStatus(current BookingStatus, event Event) (BookingStatus, error) {
	switch event {
	case EventConfirm:
		if current == StatusPreBooking {
			return StatusConfirmed, nil
		}

	case EventCheckIn:
		if current == StatusPreBooking || current == StatusConfirmed {
			return StatusCheckedIn, nil
		}

	case EventCheckOut:
		if current == StatusCheckedIn {
			return StatusCheckedOut, nil
		}

	case EventCancel:
		if current == StatusCheckedOut {
			return current, ErrAlreadyFinalized
		}
		if current == StatusPreBooking || current == StatusConfirmed || current == StatusCheckedIn {
			return StatusCancelled, nil
		}

	case EventMarkNoShow:
		if current == StatusPreBooking || current == StatusConfirmed || current == StatusCheckedIn {
			return StatusNoShow, nil
		}
	}

	return current, ErrInvalidTransition
}

// ParseStatus validates a raw status string against the booking status enum.
// This is the entry point of the admin status-override escape hatch: it only
// checks that the value is a known status, not that the transition is legal.
func ParseStatus(s string) (BookingStatus, error) {
	for _, status := range AllStatuses {
		if BookingStatus(s) == status {
			return status, nil
		}
	}
	return "", ErrUnknownStatus
}

// ParseRoomStatus validates a raw room status string
func ParseRoomStatus(s string) (RoomStatus, error) {
	for _, status := range AllRoomStatuses {
		if RoomStatus(s) == status {
			return status, nil
		}
	}
	return "", ErrUnknownStatus
}

// InitialStatus returns the status a new booking is created in:
// CONFIRMED when an initial payment was made, PRE_BOOKING otherwise.
func InitialStatus(paidAmount float64) BookingStatus {
	if paidAmount > 0 {
		return StatusConfirmed
	}
	return StatusPreBooking
}
