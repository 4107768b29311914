package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/room"
)

// UseCase use case для обновления бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	financeRepo  FinanceRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
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
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		financeRepo:  financeRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case обновления бронирования
// При смене номера или дат конфликты перепроверяются в сериализуемой
// транзакции, собственная прежняя запись исключается из сравнения.
// Увеличение оплаты фиксируется как платеж на дельту; первый платеж
// переводит PRE_BOOKING в CONFIRMED
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: booking id=%d", req.BookingID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Получаем бронирование с блокировкой (FOR UPDATE)
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2. Завершенные бронирования не изменяются
		if !booking.CanBeUpdated() {
			uc.logger.Warn("UpdateBooking: booking id=%d is finalized, status=%s", booking.ID, booking.Status)
			return ErrBookingFinalized
		}

		// 3. Применяем изменения поверх текущих значений
		updated := *booking
		applyChanges(&updated, req)

		if !domain.NormalizeDate(updated.CheckOut).After(domain.NormalizeDate(updated.CheckIn)) {
			return ErrInvalidDateRange
		}
		if updated.PaidAmount > updated.TotalAmount {
			return fmt.Errorf("%w: paidAmount must not exceed totalAmount", ErrInvalidInput)
		}

		paymentDelta := updated.PaidAmount - booking.PaidAmount
		if paymentDelta < 0 {
			uc.logger.Warn("UpdateBooking: booking id=%d paid amount decrease rejected", booking.ID)
			return ErrPaidAmountDecreased
		}

		roomChanged := updated.RoomID != booking.RoomID
		datesChanged := !updated.CheckIn.Equal(booking.CheckIn) || !updated.CheckOut.Equal(booking.CheckOut)

		// 4. Проверяем целевой номер (вместимость - всегда, сам номер - при смене)
		room, err := uc.roomRepo.GetByID(txCtx, updated.RoomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("UpdateBooking: room id=%d not found", updated.RoomID)
				return ErrRoomNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get room id=%d: %v", updated.RoomID, err)
			return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}

		if roomChanged && room.IsManuallyHeld() {
			uc.logger.Warn("UpdateBooking: room id=%d is not bookable, status=%s", room.ID, room.Status)
			return ErrRoomNotBookable
		}

		if !room.CanHost(updated.TotalGuests()) {
			uc.logger.Warn("UpdateBooking: room id=%d capacity %d exceeded by %d guests",
				room.ID, room.MaxGuests, updated.TotalGuests())
			return ErrRoomCapacityExceeded
		}

		// 5. При смене номера или дат перепроверяем конфликты,
		// исключая собственную прежнюю запись
		if roomChanged || datesChanged {
			bookings, err := uc.bookingRepo.FindActiveByRoom(txCtx, updated.RoomID)
			if err != nil {
				uc.logger.Error("UpdateBooking: failed to get bookings for room=%d: %v", updated.RoomID, err)
				return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
			}

			conflicts := domain.FindConflicts(updated.CheckIn, updated.CheckOut, bookings, &booking.ID)
			if len(conflicts) > 0 {
				numbers := make([]string, 0, len(conflicts))
				for _, b := range conflicts {
					numbers = append(numbers, b.BookingNumber)
				}
				uc.logger.Warn("UpdateBooking: booking id=%d dates conflict with %v", booking.ID, numbers)
				return &ConflictError{BookingNumbers: numbers}
			}
		}

		// 6. Первый платеж переводит предварительное бронирование в подтвержденное
		if paymentDelta > 0 && updated.Status == domain.StatusPreBooking {
			next, err := domain.NextStatus(updated.Status, domain.EventConfirm)
			if err != nil {
				return fmt.Errorf("%w: failed to confirm booking: %v", ErrInternal, err)
			}
			updated.Status = next
		}

		// 7. Сохраняем бронирование
		saved, err := uc.bookingRepo.Update(txCtx, &updated)
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to update booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		// 8. Фиксируем платеж на дельту в той же транзакции
		if paymentDelta > 0 {
			if _, err := uc.financeRepo.RecordPayment(txCtx, saved.ID, paymentDelta, now,
				fmt.Sprintf("Payment for %s", saved.BookingNumber)); err != nil {
				uc.logger.Error("UpdateBooking: failed to record payment: %v", err)
				return fmt.Errorf("%w: failed to record payment: %v", ErrInternal, err)
			}
		}

		result = saved
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBooking: successfully updated booking id=%d (%s), status=%s",
		result.ID, result.BookingNumber, result.Status)

	return toResponse(result), nil
}

// applyChanges накладывает непустые поля запроса на бронирование
func applyChanges(booking *domain.Booking, req *Request) {
	if req.RoomID != nil {
		booking.RoomID = *req.RoomID
	}
	if req.CheckIn != nil {
		booking.CheckIn = domain.NormalizeDate(*req.CheckIn)
	}
	if req.CheckOut != nil {
		booking.CheckOut = domain.NormalizeDate(*req.CheckOut)
	}
	if req.Adults != nil {
		booking.Adults = *req.Adults
	}
	if req.Children != nil {
		booking.Children = *req.Children
	}
	if req.TotalAmount != nil {
		booking.TotalAmount = *req.TotalAmount
	}
	if req.PaidAmount != nil {
		booking.PaidAmount = *req.PaidAmount
	}
	if req.Notes != nil {
		booking.Notes = req.Notes
	}
}

// toResponse конвертирует доменную модель в response
func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:            b.ID,
		BookingNumber: b.BookingNumber,
		RoomID:        b.RoomID,
		GuestID:       b.GuestID,
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckOut,
		Adults:        b.Adults,
		Children:      b.Children,
		TotalAmount:   b.TotalAmount,
		PaidAmount:    b.PaidAmount,
		Status:        string(b.Status),
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
