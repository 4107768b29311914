package availability

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// CheckAvailabilityRequest запрос проверки доступности номера на интервал дат
type CheckAvailabilityRequest struct {
	RoomID           int64
	CheckIn          time.Time
	CheckOut         time.Time
	ExcludeBookingID *int64 // при обновлении бронирования исключаем его самого
}

// CheckAvailabilityResponse результат проверки доступности
// При конфликте возвращаются номера конфликтующих бронирований для диагностики
type CheckAvailabilityResponse struct {
	Available                 bool
	ConflictingBookingNumbers []string
}

// SearchRoomsRequest запрос поиска свободных номеров на интервал дат
type SearchRoomsRequest struct {
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
}

// SearchRoomsResponse список подходящих номеров с расчетом стоимости
type SearchRoomsResponse struct {
	Rooms []domain.RoomQuote
}
