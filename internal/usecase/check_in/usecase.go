package check_in

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/room"
)

// UseCase use case заселения гостя
type UseCase struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет заселение: бронирование переходит в CHECKED_IN,
// номер - в OCCUPIED. Оба перехода в одной транзакции.
// Смена статуса номера условная: MAINTENANCE и BLOCKED, выставленные
// администратором вручную, переходом жизненного цикла не перетираются
func (uc *UseCase) Execute(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	uc.logger.Info("CheckIn: booking id=%d", bookingID)

	var result *domain.Booking

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("CheckIn: booking id=%d not found", bookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("CheckIn: failed to get booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		next, err := domain.NextStatus(booking.Status, domain.EventCheckIn)
		if err != nil {
			uc.logger.Warn("CheckIn: booking id=%d invalid transition from %s", booking.ID, booking.Status)
			return ErrInvalidTransition
		}

		if err := uc.bookingRepo.UpdateStatus(txCtx, booking.ID, next); err != nil {
			uc.logger.Error("CheckIn: failed to update booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update booking status: %v", ErrInternal, err)
		}

		if err := uc.roomRepo.UpdateStatusFromBooking(txCtx, booking.RoomID, domain.RoomOccupied); err != nil {
			if errors.Is(err, roomRepo.ErrRoomManuallyHeld) {
				// Номер на обслуживании или заблокирован - статус бронирования
				// меняем, ручной статус номера оставляем нетронутым
				uc.logger.Warn("CheckIn: room id=%d is manually held, room status left untouched", booking.RoomID)
			} else {
				uc.logger.Error("CheckIn: failed to update room id=%d: %v", booking.RoomID, err)
				return fmt.Errorf("%w: failed to update room status: %v", ErrInternal, err)
			}
		}

		booking.Status = next
		result = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CheckIn: booking id=%d (%s) checked in", result.ID, result.BookingNumber)
	return result, nil
}
