package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	roomRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/room"
)

// Service сервис проверки доступности номеров
// Тонкая композиция проверки пересечений интервалов над хранилищем.
// Это путь чтения: атомарность проверка-затем-запись обеспечивают
// usecases создания/обновления бронирования, а не этот сервис
type Service struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(bookingRepo BookingRepository, roomRepo RoomRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		logger:      logger,
	}
}

// CheckAvailability проверяет, свободен ли номер на полуоткрытый интервал
// [CheckIn, CheckOut). При конфликте возвращает номера конфликтующих
// бронирований. Бронирование с ExcludeBookingID исключается из сравнения -
// обновление не должно конфликтовать с собственной прежней записью
func (s *Service) CheckAvailability(ctx context.Context, req *CheckAvailabilityRequest) (*CheckAvailabilityResponse, error) {
	s.logger.Info("CheckAvailability: room=%d, interval=[%s, %s)",
		req.RoomID, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat))

	if err := validateInterval(req.CheckIn, req.CheckOut); err != nil {
		s.logger.Warn("CheckAvailability: invalid interval for room=%d: %v", req.RoomID, err)
		return nil, err
	}

	if _, err := s.roomRepo.GetByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("CheckAvailability: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("CheckAvailability: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: CheckAvailability - failed to get room: %v", ErrInternal, err)
	}

	bookings, err := s.bookingRepo.FindActiveByRoom(ctx, req.RoomID)
	if err != nil {
		s.logger.Error("CheckAvailability: failed to get bookings for room=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: CheckAvailability - failed to get bookings: %v", ErrInternal, err)
	}

	conflicts := domain.FindConflicts(req.CheckIn, req.CheckOut, bookings, req.ExcludeBookingID)

	numbers := make([]string, 0, len(conflicts))
	for _, b := range conflicts {
		numbers = append(numbers, b.BookingNumber)
	}

	if len(conflicts) > 0 {
		s.logger.Info("CheckAvailability: room=%d not available, conflicts=%v", req.RoomID, numbers)
	}

	return &CheckAvailabilityResponse{
		Available:                 len(conflicts) == 0,
		ConflictingBookingNumbers: numbers,
	}, nil
}

// SearchAvailableRooms подбирает номера под запрошенный интервал и число гостей:
// вместимость не меньше guests, операционный статус AVAILABLE и ни одного
// конфликта дат. Каждый подошедший номер аннотируется количеством ночей
// и стоимостью (базовая цена за ночь * ночи)
func (s *Service) SearchAvailableRooms(ctx context.Context, req *SearchRoomsRequest) (*SearchRoomsResponse, error) {
	s.logger.Info("SearchAvailableRooms: interval=[%s, %s), guests=%d",
		req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat), req.Guests)

	if err := validateInterval(req.CheckIn, req.CheckOut); err != nil {
		s.logger.Warn("SearchAvailableRooms: invalid interval: %v", err)
		return nil, err
	}
	if req.Guests < 1 {
		s.logger.Warn("SearchAvailableRooms: invalid guests count=%d", req.Guests)
		return nil, ErrInvalidGuests
	}

	rooms, err := s.roomRepo.ListBookable(ctx, req.Guests)
	if err != nil {
		s.logger.Error("SearchAvailableRooms: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: SearchAvailableRooms - failed to list rooms: %v", ErrInternal, err)
	}

	nights := domain.DaysBetween(req.CheckIn, req.CheckOut)
	quotes := make([]domain.RoomQuote, 0, len(rooms))

	for _, room := range rooms {
		bookings, err := s.bookingRepo.FindActiveByRoom(ctx, room.ID)
		if err != nil {
			s.logger.Error("SearchAvailableRooms: failed to get bookings for room=%d: %v", room.ID, err)
			return nil, fmt.Errorf("%w: SearchAvailableRooms - failed to get bookings: %v", ErrInternal, err)
		}

		if len(domain.FindConflicts(req.CheckIn, req.CheckOut, bookings, nil)) > 0 {
			continue
		}

		quotes = append(quotes, domain.RoomQuote{
			Room:       room,
			Nights:     nights,
			TotalPrice: room.BasePrice * float64(nights),
		})
	}

	s.logger.Info("SearchAvailableRooms: %d of %d rooms available", len(quotes), len(rooms))

	return &SearchRoomsResponse{Rooms: quotes}, nil
}

// validateInterval проверяет, что интервал дат корректен (строго больше нуля ночей)
func validateInterval(checkIn, checkOut time.Time) error {
	if !domain.NormalizeDate(checkOut).After(domain.NormalizeDate(checkIn)) {
		return ErrInvalidDateRange
	}
	return nil
}
