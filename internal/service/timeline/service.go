package timeline

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Service сервис построения таймлайна занятости номеров.
// Путь только для чтения: проецирует активные бронирования на окно
// просмотра и не трогает ни бронирования, ни номера
type Service struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса таймлайна
func NewService(bookingRepo BookingRepository, roomRepo RoomRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		logger:      logger,
	}
}

// Build строит сетку занятости: по строке на каждый номер, в каждой строке
// полосы бронирований (пиксельные координаты через PositionBar) и занятость
// по дням окна. Бронирования, выходящие за границы окна, обрезаются
func (s *Service) Build(ctx context.Context, req *Request) (*Response, error) {
	days := req.Days
	if days == 0 {
		days = DefaultWindowDays
	}
	cellWidth := req.CellWidth
	if cellWidth == 0 {
		cellWidth = DefaultCellWidth
	}
	if days < 1 || days > MaxWindowDays || cellWidth < 1 || req.StartDate.IsZero() {
		s.logger.Warn("Build: invalid window: start=%v, days=%d, cellWidth=%d", req.StartDate, days, cellWidth)
		return nil, ErrInvalidWindow
	}

	windowStart := domain.NormalizeDate(req.StartDate)
	windowEnd := windowStart.AddDate(0, 0, days)

	s.logger.Info("Build: window=[%s, %s), days=%d",
		windowStart.Format(domain.DateFormat), windowEnd.Format(domain.DateFormat), days)

	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		s.logger.Error("Build: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: Build - failed to list rooms: %v", ErrInternal, err)
	}

	bookings, err := s.bookingRepo.FindActiveInRange(ctx, windowStart, windowEnd)
	if err != nil {
		s.logger.Error("Build: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: Build - failed to get bookings: %v", ErrInternal, err)
	}

	// Группируем бронирования по номерам, чтобы не сканировать весь список на каждую строку
	byRoom := make(map[int64][]*domain.Booking, len(rooms))
	for _, b := range bookings {
		byRoom[b.RoomID] = append(byRoom[b.RoomID], b)
	}

	rows := make([]RoomRow, 0, len(rooms))
	for _, room := range rooms {
		row := RoomRow{
			Room:     room,
			Bars:     make([]BookingBar, 0, len(byRoom[room.ID])),
			Occupied: make([]bool, days),
		}

		for _, b := range byRoom[room.ID] {
			pos := domain.PositionBar(b.CheckIn, b.CheckOut, windowStart, windowEnd, cellWidth)
			if !pos.Visible {
				continue
			}
			row.Bars = append(row.Bars, BookingBar{
				BookingID:     b.ID,
				BookingNumber: b.BookingNumber,
				Status:        b.Status,
				GuestID:       b.GuestID,
				Left:          pos.Left,
				Width:         pos.Width,
			})

			for i := 0; i < days; i++ {
				if !row.Occupied[i] && b.OccupiesDay(windowStart.AddDate(0, 0, i)) {
					row.Occupied[i] = true
				}
			}
		}

		rows = append(rows, row)
	}

	return &Response{
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
		Days:        days,
		CellWidth:   cellWidth,
		Rows:        rows,
	}, nil
}
