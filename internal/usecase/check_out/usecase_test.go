package check_out

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/housekeeping"
	roomRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/room"
)

type fakeBookingRepo struct {
	bookings      map[int64]*domain.Booking
	updatedStatus domain.BookingStatus
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	clone := *b
	return &clone, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	f.updatedStatus = status
	return nil
}

type fakeRoomRepo struct {
	manuallyHeld bool
	updatedID    int64
	updatedTo    domain.RoomStatus
}

func (f *fakeRoomRepo) UpdateStatusFromBooking(_ context.Context, id int64, status domain.RoomStatus) error {
	if f.manuallyHeld {
		return roomRepo.ErrRoomManuallyHeld
	}
	f.updatedID = id
	f.updatedTo = status
	return nil
}

type fakeHousekeepingRepo struct {
	tasks []housekeeping.CleaningTask
}

func (f *fakeHousekeepingRepo) Create(_ context.Context, roomID int64, reference string, note string) (*housekeeping.CleaningTask, error) {
	task := housekeeping.CleaningTask{ID: int64(len(f.tasks) + 1), RoomID: roomID, Reference: reference, Note: note}
	f.tasks = append(f.tasks, task)
	return &task, nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute_HappyPath(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: {ID: 1, BookingNumber: "RES-2025-0001", RoomID: 5, Status: domain.StatusCheckedIn},
	}}
	rooms := &fakeRoomRepo{}
	tasks := &fakeHousekeepingRepo{}
	uc := NewUseCase(bookings, rooms, tasks, fakeTxManager{}, nopLogger{})

	booking, err := uc.Execute(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCheckedOut, booking.Status)
	assert.Equal(t, domain.RoomCleaning, rooms.updatedTo)
	assert.Equal(t, int64(5), rooms.updatedID)

	require.Len(t, tasks.tasks, 1)
	assert.Equal(t, int64(5), tasks.tasks[0].RoomID)
	assert.NotEmpty(t, tasks.tasks[0].Reference)
	assert.Contains(t, tasks.tasks[0].Note, "RES-2025-0001")
}

func TestExecute_OnlyCheckedInCanCheckOut(t *testing.T) {
	for _, status := range []domain.BookingStatus{
		domain.StatusPreBooking,
		domain.StatusConfirmed,
		domain.StatusCheckedOut,
		domain.StatusCancelled,
		domain.StatusNoShow,
	} {
		bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
			1: {ID: 1, RoomID: 5, Status: status},
		}}
		tasks := &fakeHousekeepingRepo{}
		uc := NewUseCase(bookings, &fakeRoomRepo{}, tasks, fakeTxManager{}, nopLogger{})

		_, err := uc.Execute(context.Background(), 1)

		assert.ErrorIs(t, err, ErrInvalidTransition, "status %s", status)
		assert.Empty(t, tasks.tasks, "status %s", status)
	}
}

func TestExecute_ManuallyHeldRoomStillGetsCleaningTask(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: {ID: 1, BookingNumber: "RES-2025-0002", RoomID: 5, Status: domain.StatusCheckedIn},
	}}
	rooms := &fakeRoomRepo{manuallyHeld: true}
	tasks := &fakeHousekeepingRepo{}
	uc := NewUseCase(bookings, rooms, tasks, fakeTxManager{}, nopLogger{})

	booking, err := uc.Execute(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCheckedOut, booking.Status)
	assert.Zero(t, rooms.updatedID)
	assert.Len(t, tasks.tasks, 1)
}

func TestExecute_NotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{bookings: map[int64]*domain.Booking{}},
		&fakeRoomRepo{},
		&fakeHousekeepingRepo{},
		fakeTxManager{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), 42)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}
