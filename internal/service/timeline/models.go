package timeline

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Пределы окна таймлайна
const (
	DefaultWindowDays = 14
	MaxWindowDays     = 90
	DefaultCellWidth  = 40
)

// Request параметры окна таймлайна
type Request struct {
	StartDate time.Time
	Days      int // 0 = DefaultWindowDays
	CellWidth int // 0 = DefaultCellWidth
}

// Response сетка занятости номеров по дням окна
type Response struct {
	WindowStart time.Time
	WindowEnd   time.Time
	Days        int
	CellWidth   int
	Rows        []RoomRow
}

// RoomRow строка таймлайна: номер, его полосы бронирований и занятость по дням
type RoomRow struct {
	Room     *domain.Room
	Bars     []BookingBar
	Occupied []bool // occupied[i] - занят ли день windowStart+i
}

// BookingBar полоса бронирования, спроецированная на окно
type BookingBar struct {
	BookingID     int64
	BookingNumber string
	Status        domain.BookingStatus
	GuestID       int64
	Left          int
	Width         int
}
