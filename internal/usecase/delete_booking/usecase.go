package delete_booking

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/booking"
)

// UseCase use case физического удаления бронирования
type UseCase struct {
	bookingRepo BookingRepository
	financeRepo FinanceRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	financeRepo FinanceRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		financeRepo: financeRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute удаляет бронирование вместе с его финансовыми транзакциями.
// Порядок важен: сначала транзакции, затем бронирование, в одной транзакции БД
func (uc *UseCase) Execute(ctx context.Context, bookingID int64) error {
	uc.logger.Info("DeleteBooking: booking id=%d", bookingID)

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		deleted, err := uc.financeRepo.DeleteByBookingID(txCtx, bookingID)
		if err != nil {
			uc.logger.Error("DeleteBooking: failed to delete transactions for booking=%d: %v", bookingID, err)
			return fmt.Errorf("%w: failed to delete transactions: %v", ErrInternal, err)
		}
		if deleted > 0 {
			uc.logger.Info("DeleteBooking: deleted %d transactions for booking=%d", deleted, bookingID)
		}

		if err := uc.bookingRepo.Delete(txCtx, bookingID); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("DeleteBooking: booking id=%d not found", bookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("DeleteBooking: failed to delete booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: failed to delete booking: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	uc.logger.Info("DeleteBooking: booking id=%d deleted", bookingID)
	return nil
}
