package update_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/finance"
	bookingRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/room"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
	active   []*domain.Booking
	updated  *domain.Booking
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	clone := *b
	return &clone, nil
}

func (f *fakeBookingRepo) FindActiveByRoom(_ context.Context, roomID int64) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range f.active {
		if b.RoomID == roomID && b.IsActive() {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) Update(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if _, ok := f.bookings[booking.ID]; !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	booking.UpdatedAt = time.Now()
	f.updated = booking
	return booking, nil
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

type fakeFinanceRepo struct {
	payments []float64
}

func (f *fakeFinanceRepo) RecordPayment(_ context.Context, bookingID int64, amount float64, paidAt time.Time, description string) (*finance.Transaction, error) {
	f.payments = append(f.payments, amount)
	return &finance.Transaction{BookingID: bookingID, Amount: amount, PaidAt: paidAt}, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	uc       *UseCase
	bookings *fakeBookingRepo
	finance  *fakeFinanceRepo
}

func newFixture() *fixture {
	booking := &domain.Booking{
		ID:            1,
		BookingNumber: "RES-2025-0001",
		RoomID:        1,
		GuestID:       7,
		CheckIn:       date(2025, 6, 1),
		CheckOut:      date(2025, 6, 5),
		Adults:        2,
		TotalAmount:   400,
		PaidAmount:    100,
		Status:        domain.StatusConfirmed,
	}

	bookings := &fakeBookingRepo{
		bookings: map[int64]*domain.Booking{1: booking},
		active:   []*domain.Booking{booking},
	}
	financeRepo := &fakeFinanceRepo{}

	uc := NewUseCase(
		bookings,
		&fakeRoomRepo{rooms: map[int64]*domain.Room{
			1: {ID: 1, MaxGuests: 3, Status: domain.RoomAvailable},
			2: {ID: 2, MaxGuests: 2, Status: domain.RoomAvailable},
			3: {ID: 3, MaxGuests: 4, Status: domain.RoomMaintenance},
		}},
		financeRepo,
		fakeTxManager{},
		nopLogger{},
	)

	return &fixture{uc: uc, bookings: bookings, finance: financeRepo}
}

func TestExecute_PaymentDeltaRecordedOnce(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), &Request{
		BookingID:  1,
		PaidAmount: ptr.Ptr(250.0), // было 100, дельта 150
	})

	require.NoError(t, err)
	assert.Equal(t, 250.0, resp.PaidAmount)
	require.Len(t, f.finance.payments, 1)
	assert.Equal(t, 150.0, f.finance.payments[0])
}

func TestExecute_PaidAmountDecreaseRejected(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{
		BookingID:  1,
		PaidAmount: ptr.Ptr(50.0),
	})

	assert.ErrorIs(t, err, ErrPaidAmountDecreased)
	assert.Nil(t, f.bookings.updated)
}

func TestExecute_FirstPaymentConfirmsPreBooking(t *testing.T) {
	f := newFixture()
	f.bookings.bookings[1].Status = domain.StatusPreBooking
	f.bookings.bookings[1].PaidAmount = 0

	resp, err := f.uc.Execute(context.Background(), &Request{
		BookingID:  1,
		PaidAmount: ptr.Ptr(100.0),
	})

	require.NoError(t, err)
	assert.Equal(t, "CONFIRMED", resp.Status)
}

func TestExecute_SamePaidAmountDoesNotRecordPayment(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{
		BookingID: 1,
		Notes:     ptr.Ptr("late arrival"),
	})

	require.NoError(t, err)
	assert.Empty(t, f.finance.payments)
}

func TestExecute_DateChangeExcludesSelfFromConflicts(t *testing.T) {
	f := newFixture()

	// Сдвигаем даты внутри собственного интервала: единственное активное
	// бронирование номера - наше же
	resp, err := f.uc.Execute(context.Background(), &Request{
		BookingID: 1,
		CheckIn:   ptr.Ptr(date(2025, 6, 2)),
		CheckOut:  ptr.Ptr(date(2025, 6, 6)),
	})

	require.NoError(t, err)
	assert.Equal(t, "2025-06-02", resp.CheckIn.Format(domain.DateFormat))
}

func TestExecute_DateConflictWithOtherBooking(t *testing.T) {
	f := newFixture()
	f.bookings.active = append(f.bookings.active, &domain.Booking{
		ID:            2,
		BookingNumber: "RES-2025-0002",
		RoomID:        1,
		CheckIn:       date(2025, 6, 10),
		CheckOut:      date(2025, 6, 15),
		Status:        domain.StatusConfirmed,
	})

	_, err := f.uc.Execute(context.Background(), &Request{
		BookingID: 1,
		CheckIn:   ptr.Ptr(date(2025, 6, 12)),
		CheckOut:  ptr.Ptr(date(2025, 6, 14)),
	})

	require.ErrorIs(t, err, ErrDatesConflict)

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, []string{"RES-2025-0002"}, conflictErr.BookingNumbers)
}

func TestExecute_MoveToManuallyHeldRoomRejected(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{
		BookingID: 1,
		RoomID:    ptr.Ptr(int64(3)),
	})

	assert.ErrorIs(t, err, ErrRoomNotBookable)
}

func TestExecute_CapacityCheckedAgainstTargetRoom(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{
		BookingID: 1,
		RoomID:    ptr.Ptr(int64(2)), // вместимость 2
		Adults:    ptr.Ptr(2),
		Children:  ptr.Ptr(1),
	})

	assert.ErrorIs(t, err, ErrRoomCapacityExceeded)
}

func TestExecute_FinalizedBookingRejected(t *testing.T) {
	f := newFixture()
	f.bookings.bookings[1].Status = domain.StatusCheckedOut

	_, err := f.uc.Execute(context.Background(), &Request{
		BookingID: 1,
		Notes:     ptr.Ptr("x"),
	})

	assert.ErrorIs(t, err, ErrBookingFinalized)
}

func TestExecute_NotFound(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{BookingID: 42})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_InvalidDateRangeAfterMerge(t *testing.T) {
	f := newFixture()

	// Только checkIn сдвигается за существующий checkOut
	_, err := f.uc.Execute(context.Background(), &Request{
		BookingID: 1,
		CheckIn:   ptr.Ptr(date(2025, 6, 10)),
	})

	assert.ErrorIs(t, err, ErrInvalidDateRange)
}
