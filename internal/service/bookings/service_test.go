package bookings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/booking"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking

	cancelledID     int64
	cancelledReason string
	cancelledNotes  *string
	updatedStatus   domain.BookingStatus
	updatedID       int64
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	clone := *b
	return &clone, nil
}

func (f *fakeBookingRepo) GetWithFilter(_ context.Context, filter domain.RoomBookingsFilter) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range f.bookings {
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	if _, ok := f.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.updatedID = id
	f.updatedStatus = status
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, reason string, notes *string) error {
	if _, ok := f.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.cancelledID = id
	f.cancelledReason = reason
	f.cancelledNotes = notes
	return nil
}

// fakeTxManager выполняет fn без транзакции
type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(repo *fakeBookingRepo) *Service {
	return NewService(repo, fakeTxManager{}, nopLogger{})
}

func TestCancel_HappyPath(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: {ID: 1, BookingNumber: "RES-2025-0001", Status: domain.StatusConfirmed},
	}}
	svc := newTestService(repo)

	booking, err := svc.Cancel(context.Background(), &CancelRequest{BookingID: 1, Reason: "guest request"})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, booking.Status)
	assert.Equal(t, int64(1), repo.cancelledID)
	assert.Equal(t, "guest request", repo.cancelledReason)
	require.NotNil(t, repo.cancelledNotes)
	assert.Equal(t, "Cancelled: guest request", *repo.cancelledNotes)
}

func TestCancel_AppendsReasonToExistingNotes(t *testing.T) {
	notes := "late arrival"
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: {ID: 1, Status: domain.StatusPreBooking, Notes: &notes},
	}}
	svc := newTestService(repo)

	_, err := svc.Cancel(context.Background(), &CancelRequest{BookingID: 1, Reason: "no prepayment"})

	require.NoError(t, err)
	require.NotNil(t, repo.cancelledNotes)
	assert.Equal(t, "late arrival\nCancelled: no prepayment", *repo.cancelledNotes)
}

func TestCancel_CheckedOutRejected(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: {ID: 1, Status: domain.StatusCheckedOut},
	}}
	svc := newTestService(repo)

	_, err := svc.Cancel(context.Background(), &CancelRequest{BookingID: 1, Reason: "too late"})

	assert.ErrorIs(t, err, ErrAlreadyFinalized)
	assert.Zero(t, repo.cancelledID)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: {ID: 1, Status: domain.StatusCancelled},
	}}
	svc := newTestService(repo)

	_, err := svc.Cancel(context.Background(), &CancelRequest{BookingID: 1, Reason: "again"})

	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestCancel_NotFound(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{bookings: map[int64]*domain.Booking{}})

	_, err := svc.Cancel(context.Background(), &CancelRequest{BookingID: 42, Reason: "x"})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestSetStatus_OverrideSkipsStateMachine(t *testing.T) {
	// Административный перевод CHECKED_OUT -> CONFIRMED, машина состояний
	// такой переход не разрешила бы
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: {ID: 1, Status: domain.StatusCheckedOut},
	}}
	svc := newTestService(repo)

	err := svc.SetStatus(context.Background(), &SetStatusRequest{
		BookingID: 1,
		Status:    "CONFIRMED",
		ActorID:   "7",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, repo.updatedStatus)
}

func TestSetStatus_UnknownStatus(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{1: {ID: 1}}}
	svc := newTestService(repo)

	err := svc.SetStatus(context.Background(), &SetStatusRequest{BookingID: 1, Status: "SLEEPING"})

	assert.ErrorIs(t, err, ErrUnknownStatus)
	assert.Zero(t, repo.updatedID)
}

func TestList_UnknownStatusFilter(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{bookings: map[int64]*domain.Booking{}})

	bad := "WRONG"
	_, err := svc.List(context.Background(), &ListRequest{Status: &bad})

	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestList_StatusFilterApplied(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: {ID: 1, Status: domain.StatusConfirmed},
		2: {ID: 2, Status: domain.StatusCancelled},
	}}
	svc := newTestService(repo)

	status := "CANCELLED"
	result, err := svc.List(context.Background(), &ListRequest{Status: &status})

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, int64(2), result[0].ID)
}
