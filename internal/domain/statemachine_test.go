package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextStatus_HappyPath(t *testing.T) {
	tests := []struct {
		name    string
		current BookingStatus
		event   Event
		next    BookingStatus
	}{
		{"pre-booking confirmed on payment", StatusPreBooking, EventConfirm, StatusConfirmed},
		{"pre-booking can check in directly", StatusPreBooking, EventCheckIn, StatusCheckedIn},
		{"confirmed checks in", StatusConfirmed, EventCheckIn, StatusCheckedIn},
		{"checked-in checks out", StatusCheckedIn, EventCheckOut, StatusCheckedOut},
		{"pre-booking cancelled", StatusPreBooking, EventCancel, StatusCancelled},
		{"confirmed cancelled", StatusConfirmed, EventCancel, StatusCancelled},
		{"checked-in cancelled", StatusCheckedIn, EventCancel, StatusCancelled},
		{"pre-booking no-show", StatusPreBooking, EventMarkNoShow, StatusNoShow},
		{"confirmed no-show", StatusConfirmed, EventMarkNoShow, StatusNoShow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := NextStatus(tt.current, tt.event)
			require.NoError(t, err)
			assert.Equal(t, tt.next, next)
		})
	}
}

// Every (status, event) pair outside the happy path must fail and return the
// current status unchanged.
func TestNextStatus_Totality(t *testing.T) {
	allowed := map[BookingStatus]map[Event]bool{
		StatusPreBooking: {EventConfirm: true, EventCheckIn: true, EventCancel: true, EventMarkNoShow: true},
		StatusConfirmed:  {EventCheckIn: true, EventCancel: true, EventMarkNoShow: true},
		StatusCheckedIn:  {EventCheckOut: true, EventCancel: true, EventMarkNoShow: true},
	}
	events := []Event{EventConfirm, EventCheckIn, EventCheckOut, EventCancel, EventMarkNoShow}

	for _, status := range AllStatuses {
		for _, event := range events {
			if allowed[status][event] {
				continue
			}

			next, err := NextStatus(status, event)
			assert.Error(t, err, "status=%s event=%s must be rejected", status, event)
			assert.Equal(t, status, next, "status=%s event=%s must leave status unchanged", status, event)
		}
	}
}

func TestNextStatus_CancelFinalized(t *testing.T) {
	_, err := NextStatus(StatusCheckedOut, EventCancel)
	assert.ErrorIs(t, err, ErrAlreadyFinalized)
}

func TestNextStatus_CheckOutGuard(t *testing.T) {
	for _, status := range []BookingStatus{StatusPreBooking, StatusConfirmed, StatusCheckedOut, StatusCancelled, StatusNoShow} {
		next, err := NextStatus(status, EventCheckOut)
		assert.ErrorIs(t, err, ErrInvalidTransition, "check-out from %s", status)
		assert.Equal(t, status, next)
	}
}

func TestParseStatus(t *testing.T) {
	status, err := ParseStatus("CHECKED_IN")
	require.NoError(t, err)
	assert.Equal(t, StatusCheckedIn, status)

	_, err = ParseStatus("checked_in")
	assert.ErrorIs(t, err, ErrUnknownStatus)

	_, err = ParseStatus("IN_PROGRESS")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPreBooking, InitialStatus(0))
	assert.Equal(t, StatusConfirmed, InitialStatus(500))
}
