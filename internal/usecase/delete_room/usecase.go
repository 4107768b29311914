package delete_room

import (
	"context"
	"errors"
	"fmt"

	roomRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/room"
)

// UseCase use case удаления номера
type UseCase struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	financeRepo FinanceRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	financeRepo FinanceRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		financeRepo: financeRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute удаляет номер. Без force-флага номер с активными бронированиями
// не удаляется - возвращается их количество. С force-флагом каскадно
// удаляются финансовые транзакции, бронирования и сам номер в одной транзакции
func (uc *UseCase) Execute(ctx context.Context, roomID int64, force bool) error {
	uc.logger.Info("DeleteRoom: room id=%d, force=%v", roomID, force)

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		count, err := uc.bookingRepo.CountActiveByRoom(txCtx, roomID)
		if err != nil {
			uc.logger.Error("DeleteRoom: failed to count bookings for room=%d: %v", roomID, err)
			return fmt.Errorf("%w: failed to count active bookings: %v", ErrInternal, err)
		}

		if count > 0 && !force {
			uc.logger.Warn("DeleteRoom: room id=%d has %d active bookings, deletion rejected", roomID, count)
			return &ActiveBookingsError{Count: count}
		}

		if force {
			if _, err := uc.financeRepo.DeleteByRoomID(txCtx, roomID); err != nil {
				uc.logger.Error("DeleteRoom: failed to delete transactions for room=%d: %v", roomID, err)
				return fmt.Errorf("%w: failed to delete transactions: %v", ErrInternal, err)
			}

			deleted, err := uc.bookingRepo.DeleteByRoomID(txCtx, roomID)
			if err != nil {
				uc.logger.Error("DeleteRoom: failed to delete bookings for room=%d: %v", roomID, err)
				return fmt.Errorf("%w: failed to delete bookings: %v", ErrInternal, err)
			}
			if deleted > 0 {
				uc.logger.Info("DeleteRoom: deleted %d bookings for room=%d", deleted, roomID)
			}
		}

		if err := uc.roomRepo.Delete(txCtx, roomID); err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("DeleteRoom: room id=%d not found", roomID)
				return ErrRoomNotFound
			}
			uc.logger.Error("DeleteRoom: failed to delete room id=%d: %v", roomID, err)
			return fmt.Errorf("%w: failed to delete room: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	uc.logger.Info("DeleteRoom: room id=%d deleted", roomID)
	return nil
}
