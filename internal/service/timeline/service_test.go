package timeline

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) FindActiveInRange(_ context.Context, from, to time.Time) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range f.bookings {
		if domain.Overlaps(b.CheckIn, b.CheckOut, from, to) {
			result = append(result, b)
		}
	}
	return result, nil
}

type fakeRoomRepo struct {
	rooms []*domain.Room
}

func (f *fakeRoomRepo) List(_ context.Context) ([]*domain.Room, error) {
	return f.rooms, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestBuild_Defaults(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, &fakeRoomRepo{rooms: []*domain.Room{{ID: 1, Name: "Garden"}}}, nopLogger{})

	resp, err := svc.Build(context.Background(), &Request{StartDate: date(2025, 6, 1)})

	require.NoError(t, err)
	assert.Equal(t, DefaultWindowDays, resp.Days)
	assert.Equal(t, DefaultCellWidth, resp.CellWidth)
	assert.Equal(t, date(2025, 6, 1), resp.WindowStart)
	assert.Equal(t, date(2025, 6, 15), resp.WindowEnd)
	require.Len(t, resp.Rows, 1)
	assert.Len(t, resp.Rows[0].Occupied, DefaultWindowDays)
}

func TestBuild_InvalidWindow(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, &fakeRoomRepo{}, nopLogger{})

	_, err := svc.Build(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidWindow)

	_, err = svc.Build(context.Background(), &Request{StartDate: date(2025, 6, 1), Days: -1})
	assert.ErrorIs(t, err, ErrInvalidWindow)

	_, err = svc.Build(context.Background(), &Request{StartDate: date(2025, 6, 1), Days: MaxWindowDays + 1})
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestBuild_ClipsBarToWindowStart(t *testing.T) {
	// Бронирование началось до окна: полоса обрезается по левому краю
	booking := &domain.Booking{
		ID:            10,
		BookingNumber: "RES-2025-0001",
		RoomID:        1,
		CheckIn:       date(2025, 5, 30),
		CheckOut:      date(2025, 6, 3),
		Status:        domain.StatusCheckedIn,
	}
	svc := NewService(
		&fakeBookingRepo{bookings: []*domain.Booking{booking}},
		&fakeRoomRepo{rooms: []*domain.Room{{ID: 1, Name: "Garden"}}},
		nopLogger{},
	)

	resp, err := svc.Build(context.Background(), &Request{
		StartDate: date(2025, 6, 1),
		Days:      7,
		CellWidth: 50,
	})

	require.NoError(t, err)
	require.Len(t, resp.Rows, 1)
	require.Len(t, resp.Rows[0].Bars, 1)

	bar := resp.Rows[0].Bars[0]
	assert.Equal(t, 0, bar.Left)
	assert.Equal(t, 100, bar.Width) // два видимых дня по 50px
	assert.Equal(t, "RES-2025-0001", bar.BookingNumber)

	// Заняты первые два дня окна, день выезда свободен
	assert.Equal(t, []bool{true, true, false, false, false, false, false}, resp.Rows[0].Occupied)
}

func TestBuild_BookingOutsideWindowSkipped(t *testing.T) {
	booking := &domain.Booking{
		ID:       10,
		RoomID:   1,
		CheckIn:  date(2025, 7, 1),
		CheckOut: date(2025, 7, 5),
		Status:   domain.StatusConfirmed,
	}
	svc := NewService(
		&fakeBookingRepo{bookings: []*domain.Booking{booking}},
		&fakeRoomRepo{rooms: []*domain.Room{{ID: 1}}},
		nopLogger{},
	)

	resp, err := svc.Build(context.Background(), &Request{StartDate: date(2025, 6, 1), Days: 7})

	require.NoError(t, err)
	assert.Empty(t, resp.Rows[0].Bars)
}

func TestBuild_RowPerRoomEvenWithoutBookings(t *testing.T) {
	rooms := []*domain.Room{
		{ID: 1, Name: "Garden"},
		{ID: 2, Name: "Sea"},
		{ID: 3, Name: "Suite"},
	}
	booking := &domain.Booking{
		ID:       10,
		RoomID:   2,
		CheckIn:  date(2025, 6, 2),
		CheckOut: date(2025, 6, 4),
		Status:   domain.StatusConfirmed,
	}
	svc := NewService(&fakeBookingRepo{bookings: []*domain.Booking{booking}}, &fakeRoomRepo{rooms: rooms}, nopLogger{})

	resp, err := svc.Build(context.Background(), &Request{StartDate: date(2025, 6, 1), Days: 7})

	require.NoError(t, err)
	require.Len(t, resp.Rows, 3)
	assert.Empty(t, resp.Rows[0].Bars)
	assert.Len(t, resp.Rows[1].Bars, 1)
	assert.Empty(t, resp.Rows[2].Bars)
}
