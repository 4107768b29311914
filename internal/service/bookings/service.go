package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/booking"
)

// Service сервис чтения и терминальных операций над бронированиями.
// Создание и обновление с проверкой конфликтов дат живут в usecases -
// там нужны сериализуемые транзакции и внешние зависимости
type Service struct {
	bookingRepo BookingRepository
	txManager   TxManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, txManager TxManager, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: failed to get booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - failed to get booking: %v", ErrInternal, err)
	}

	return booking, nil
}

// List получает бронирования по фильтру (номер, период, статус)
// По умолчанию отменённые и no-show бронирования скрыты
func (s *Service) List(ctx context.Context, req *ListRequest) ([]*domain.Booking, error) {
	filter, err := req.toFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, err
	}

	result, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: List - failed to get bookings: %v", ErrInternal, err)
	}

	return result, nil
}

// Cancel отменяет бронирование через машину состояний.
// Причина отмены фиксируется отдельным полем и дописывается в заметки.
// Чтение и запись выполняются в одной транзакции, чтобы конкурентная
// смена статуса не пролезла между проверкой и отменой
func (s *Service) Cancel(ctx context.Context, req *CancelRequest) (*domain.Booking, error) {
	s.logger.Info("Cancel: booking id=%d, reason=%q", req.BookingID, req.Reason)

	var cancelled *domain.Booking

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		booking, err := s.bookingRepo.GetByID(ctx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Cancel - failed to get booking: %v", ErrInternal, err)
		}

		if booking.Status == domain.StatusCancelled {
			return ErrAlreadyCancelled
		}

		// CANCELLED отфильтрован выше, остальные недопустимые статусы терминальны
		if _, err := domain.NextStatus(booking.Status, domain.EventCancel); err != nil {
			return ErrAlreadyFinalized
		}

		notes := appendReasonToNotes(booking.Notes, req.Reason)

		if err := s.bookingRepo.Cancel(ctx, booking.ID, req.Reason, notes); err != nil {
			return fmt.Errorf("%w: Cancel - failed to cancel booking: %v", ErrInternal, err)
		}

		booking.Status = domain.StatusCancelled
		booking.CancellationReason = &req.Reason
		booking.Notes = notes
		cancelled = booking

		return nil
	})

	if err != nil {
		if errors.Is(err, ErrBookingNotFound) || errors.Is(err, ErrAlreadyFinalized) || errors.Is(err, ErrAlreadyCancelled) {
			s.logger.Warn("Cancel: booking id=%d rejected: %v", req.BookingID, err)
		} else {
			s.logger.Error("Cancel: booking id=%d failed: %v", req.BookingID, err)
		}
		return nil, err
	}

	s.logger.Info("Cancel: booking id=%d (%s) cancelled", cancelled.ID, cancelled.BookingNumber)
	return cancelled, nil
}

// SetStatus административная смена статуса в обход машины состояний.
// Проверяется только принадлежность значения перечислению статусов,
// сам переход не валидируется. Побочных эффектов на номер нет
func (s *Service) SetStatus(ctx context.Context, req *SetStatusRequest) error {
	status, err := domain.ParseStatus(req.Status)
	if err != nil {
		s.logger.Warn("SetStatus: unknown status %q for booking id=%d", req.Status, req.BookingID)
		return ErrUnknownStatus
	}

	// Обход машины состояний всегда оставляет след в логах
	s.logger.Warn("SetStatus: admin override booking id=%d -> %s (actor=%s)", req.BookingID, status, req.ActorID)

	if err := s.bookingRepo.UpdateStatus(ctx, req.BookingID, status); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("SetStatus: failed to update booking id=%d: %v", req.BookingID, err)
		return fmt.Errorf("%w: SetStatus - failed to update status: %v", ErrInternal, err)
	}

	return nil
}

// appendReasonToNotes дописывает причину отмены в заметки бронирования
func appendReasonToNotes(notes *string, reason string) *string {
	if reason == "" {
		return notes
	}

	line := "Cancelled: " + reason
	if notes == nil || *notes == "" {
		return &line
	}

	combined := *notes + "\n" + line
	return &combined
}
