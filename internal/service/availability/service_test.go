package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	roomRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/room"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type fakeBookingRepo struct {
	bookingsByRoom map[int64][]*domain.Booking
	err            error
}

func (f *fakeBookingRepo) FindActiveByRoom(_ context.Context, roomID int64) ([]*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.bookingsByRoom[roomID], nil
}

type fakeRoomRepo struct {
	rooms map[int64]*domain.Room
}

func (f *fakeRoomRepo) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	room, ok := f.rooms[id]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	return room, nil
}

func (f *fakeRoomRepo) ListBookable(_ context.Context, guests int) ([]*domain.Room, error) {
	var result []*domain.Room
	for _, room := range f.rooms {
		if room.IsBookable() && room.CanHost(guests) {
			result = append(result, room)
		}
	}
	return result, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func activeBooking(id int64, roomID int64, number string, checkIn, checkOut time.Time, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:            id,
		BookingNumber: number,
		RoomID:        roomID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Status:        status,
	}
}

func TestCheckAvailability_NoConflicts(t *testing.T) {
	svc := NewService(
		&fakeBookingRepo{bookingsByRoom: map[int64][]*domain.Booking{}},
		&fakeRoomRepo{rooms: map[int64]*domain.Room{1: {ID: 1, Status: domain.RoomAvailable}}},
		nopLogger{},
	)

	resp, err := svc.CheckAvailability(context.Background(), &CheckAvailabilityRequest{
		RoomID:   1,
		CheckIn:  date(2025, 6, 1),
		CheckOut: date(2025, 6, 5),
	})

	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.Empty(t, resp.ConflictingBookingNumbers)
}

func TestCheckAvailability_ReportsConflictingNumbers(t *testing.T) {
	bookings := map[int64][]*domain.Booking{
		1: {
			activeBooking(10, 1, "RES-2025-0001", date(2025, 6, 3), date(2025, 6, 7), domain.StatusConfirmed),
			activeBooking(11, 1, "RES-2025-0002", date(2025, 6, 20), date(2025, 6, 25), domain.StatusPreBooking),
		},
	}
	svc := NewService(
		&fakeBookingRepo{bookingsByRoom: bookings},
		&fakeRoomRepo{rooms: map[int64]*domain.Room{1: {ID: 1, Status: domain.RoomAvailable}}},
		nopLogger{},
	)

	resp, err := svc.CheckAvailability(context.Background(), &CheckAvailabilityRequest{
		RoomID:   1,
		CheckIn:  date(2025, 6, 1),
		CheckOut: date(2025, 6, 5),
	})

	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Equal(t, []string{"RES-2025-0001"}, resp.ConflictingBookingNumbers)
}

func TestCheckAvailability_AdjacentDatesDoNotConflict(t *testing.T) {
	bookings := map[int64][]*domain.Booking{
		1: {activeBooking(10, 1, "RES-2025-0001", date(2025, 6, 1), date(2025, 6, 5), domain.StatusCheckedIn)},
	}
	svc := NewService(
		&fakeBookingRepo{bookingsByRoom: bookings},
		&fakeRoomRepo{rooms: map[int64]*domain.Room{1: {ID: 1, Status: domain.RoomAvailable}}},
		nopLogger{},
	)

	// Заезд в день выезда предыдущего гостя
	resp, err := svc.CheckAvailability(context.Background(), &CheckAvailabilityRequest{
		RoomID:   1,
		CheckIn:  date(2025, 6, 5),
		CheckOut: date(2025, 6, 8),
	})

	require.NoError(t, err)
	assert.True(t, resp.Available)
}

func TestCheckAvailability_ExcludesOwnBooking(t *testing.T) {
	ownID := int64(10)
	bookings := map[int64][]*domain.Booking{
		1: {activeBooking(ownID, 1, "RES-2025-0001", date(2025, 6, 1), date(2025, 6, 5), domain.StatusConfirmed)},
	}
	svc := NewService(
		&fakeBookingRepo{bookingsByRoom: bookings},
		&fakeRoomRepo{rooms: map[int64]*domain.Room{1: {ID: 1, Status: domain.RoomAvailable}}},
		nopLogger{},
	)

	resp, err := svc.CheckAvailability(context.Background(), &CheckAvailabilityRequest{
		RoomID:           1,
		CheckIn:          date(2025, 6, 2),
		CheckOut:         date(2025, 6, 6),
		ExcludeBookingID: &ownID,
	})

	require.NoError(t, err)
	assert.True(t, resp.Available)
}

func TestCheckAvailability_InvalidRange(t *testing.T) {
	svc := NewService(
		&fakeBookingRepo{},
		&fakeRoomRepo{rooms: map[int64]*domain.Room{1: {ID: 1}}},
		nopLogger{},
	)

	// Ноль ночей
	_, err := svc.CheckAvailability(context.Background(), &CheckAvailabilityRequest{
		RoomID:   1,
		CheckIn:  date(2025, 6, 5),
		CheckOut: date(2025, 6, 5),
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	// Выезд раньше заезда
	_, err = svc.CheckAvailability(context.Background(), &CheckAvailabilityRequest{
		RoomID:   1,
		CheckIn:  date(2025, 6, 5),
		CheckOut: date(2025, 6, 1),
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestCheckAvailability_RoomNotFound(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, &fakeRoomRepo{rooms: map[int64]*domain.Room{}}, nopLogger{})

	_, err := svc.CheckAvailability(context.Background(), &CheckAvailabilityRequest{
		RoomID:   99,
		CheckIn:  date(2025, 6, 1),
		CheckOut: date(2025, 6, 5),
	})

	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestSearchAvailableRooms_FiltersAndQuotes(t *testing.T) {
	rooms := map[int64]*domain.Room{
		1: {ID: 1, Name: "Garden", MaxGuests: 2, BasePrice: 100, Status: domain.RoomAvailable},
		2: {ID: 2, Name: "Sea", MaxGuests: 4, BasePrice: 250, Status: domain.RoomAvailable},
		3: {ID: 3, Name: "Suite", MaxGuests: 4, BasePrice: 400, Status: domain.RoomMaintenance},
	}
	// Номер 1 занят на запрошенные даты
	bookings := map[int64][]*domain.Booking{
		1: {activeBooking(10, 1, "RES-2025-0001", date(2025, 6, 2), date(2025, 6, 6), domain.StatusConfirmed)},
	}

	svc := NewService(&fakeBookingRepo{bookingsByRoom: bookings}, &fakeRoomRepo{rooms: rooms}, nopLogger{})

	resp, err := svc.SearchAvailableRooms(context.Background(), &SearchRoomsRequest{
		CheckIn:  date(2025, 6, 1),
		CheckOut: date(2025, 6, 5),
		Guests:   2,
	})

	require.NoError(t, err)
	require.Len(t, resp.Rooms, 1)

	quote := resp.Rooms[0]
	assert.Equal(t, int64(2), quote.Room.ID)
	assert.Equal(t, 4, quote.Nights)
	assert.Equal(t, 1000.0, quote.TotalPrice)
}

func TestSearchAvailableRooms_InvalidGuests(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, &fakeRoomRepo{}, nopLogger{})

	_, err := svc.SearchAvailableRooms(context.Background(), &SearchRoomsRequest{
		CheckIn:  date(2025, 6, 1),
		CheckOut: date(2025, 6, 5),
		Guests:   0,
	})

	assert.ErrorIs(t, err, ErrInvalidGuests)
}
