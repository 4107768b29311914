package check_out

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/room"
)

// UseCase use case выселения гостя
type UseCase struct {
	bookingRepo      BookingRepository
	roomRepo         RoomRepository
	housekeepingRepo HousekeepingRepository
	txManager        TransactionManager
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	housekeepingRepo HousekeepingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		roomRepo:         roomRepo,
		housekeepingRepo: housekeepingRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// Execute выполняет выселение: бронирование переходит в CHECKED_OUT,
// номер - в CLEANING, в той же транзакции создается задача уборки.
// Ручные статусы номера (MAINTENANCE, BLOCKED) не перетираются
func (uc *UseCase) Execute(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	uc.logger.Info("CheckOut: booking id=%d", bookingID)

	var result *domain.Booking

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("CheckOut: booking id=%d not found", bookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("CheckOut: failed to get booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		next, err := domain.NextStatus(booking.Status, domain.EventCheckOut)
		if err != nil {
			uc.logger.Warn("CheckOut: booking id=%d invalid transition from %s", booking.ID, booking.Status)
			return ErrInvalidTransition
		}

		if err := uc.bookingRepo.UpdateStatus(txCtx, booking.ID, next); err != nil {
			uc.logger.Error("CheckOut: failed to update booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update booking status: %v", ErrInternal, err)
		}

		if err := uc.roomRepo.UpdateStatusFromBooking(txCtx, booking.RoomID, domain.RoomCleaning); err != nil {
			if errors.Is(err, roomRepo.ErrRoomManuallyHeld) {
				uc.logger.Warn("CheckOut: room id=%d is manually held, room status left untouched", booking.RoomID)
			} else {
				uc.logger.Error("CheckOut: failed to update room id=%d: %v", booking.RoomID, err)
				return fmt.Errorf("%w: failed to update room status: %v", ErrInternal, err)
			}
		}

		// Задача уборки создается в любом случае: номер нужно убрать
		// и после выселения из заблокированного номера
		reference := uuid.NewString()
		note := fmt.Sprintf("Checkout cleaning for %s", booking.BookingNumber)
		if _, err := uc.housekeepingRepo.Create(txCtx, booking.RoomID, reference, note); err != nil {
			uc.logger.Error("CheckOut: failed to create cleaning task for room=%d: %v", booking.RoomID, err)
			return fmt.Errorf("%w: failed to create cleaning task: %v", ErrInternal, err)
		}

		booking.Status = next
		result = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CheckOut: booking id=%d (%s) checked out", result.ID, result.BookingNumber)
	return result, nil
}
