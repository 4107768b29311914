package delete_booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/booking"
)

type fakeBookingRepo struct {
	exists    bool
	deletedID int64
}

func (f *fakeBookingRepo) Delete(_ context.Context, id int64) error {
	if !f.exists {
		return bookingRepo.ErrBookingNotFound
	}
	f.deletedID = id
	return nil
}

type fakeFinanceRepo struct {
	deletedForBooking int64
}

func (f *fakeFinanceRepo) DeleteByBookingID(_ context.Context, bookingID int64) (int64, error) {
	f.deletedForBooking = bookingID
	return 2, nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute_DeletesBookingWithTransactions(t *testing.T) {
	bookings := &fakeBookingRepo{exists: true}
	financeRepo := &fakeFinanceRepo{}
	uc := NewUseCase(bookings, financeRepo, fakeTxManager{}, nopLogger{})

	err := uc.Execute(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), financeRepo.deletedForBooking)
	assert.Equal(t, int64(7), bookings.deletedID)
}

func TestExecute_NotFound(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeFinanceRepo{}, fakeTxManager{}, nopLogger{})

	err := uc.Execute(context.Background(), 42)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}
