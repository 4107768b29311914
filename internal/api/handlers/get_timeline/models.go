package get_timeline

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/service/timeline"
)

// BookingBarResponse полоса бронирования в пиксельных координатах окна
type BookingBarResponse struct {
	BookingID     int64  `json:"bookingId"`
	BookingNumber string `json:"bookingNumber"`
	Status        string `json:"status"`
	GuestID       int64  `json:"guestId"`
	Left          int    `json:"left"`
	Width         int    `json:"width"`
}

// RoomRowResponse строка таймлайна одного номера
type RoomRowResponse struct {
	RoomID   int64                `json:"roomId"`
	RoomName string               `json:"roomName"`
	Status   string               `json:"status"`
	Bars     []BookingBarResponse `json:"bars"`
	Occupied []bool               `json:"occupied"`
}

// TimelineResponse HTTP response model
type TimelineResponse struct {
	WindowStart string            `json:"windowStart"`
	WindowEnd   string            `json:"windowEnd"`
	Days        int               `json:"days"`
	CellWidth   int               `json:"cellWidth"`
	Rows        []RoomRowResponse `json:"rows"`
}

// parseQuery разбирает query-параметры окна таймлайна
// days и cellWidth необязательны, по умолчанию используются значения сервиса
func parseQuery(query url.Values) (*timeline.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, query.Get("startDate"))
	if err != nil {
		return nil, fmt.Errorf("invalid startDate: %w", err)
	}

	req := &timeline.Request{StartDate: startDate}

	if raw := query.Get("days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid days: %w", err)
		}
		req.Days = days
	}

	if raw := query.Get("cellWidth"); raw != "" {
		cellWidth, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid cellWidth: %w", err)
		}
		req.CellWidth = cellWidth
	}

	return req, nil
}

// fromServiceResponse конвертирует ответ сервиса в HTTP response
func fromServiceResponse(resp *timeline.Response) *TimelineResponse {
	rows := make([]RoomRowResponse, 0, len(resp.Rows))
	for _, row := range resp.Rows {
		bars := make([]BookingBarResponse, 0, len(row.Bars))
		for _, bar := range row.Bars {
			bars = append(bars, BookingBarResponse{
				BookingID:     bar.BookingID,
				BookingNumber: bar.BookingNumber,
				Status:        string(bar.Status),
				GuestID:       bar.GuestID,
				Left:          bar.Left,
				Width:         bar.Width,
			})
		}
		rows = append(rows, RoomRowResponse{
			RoomID:   row.Room.ID,
			RoomName: row.Room.Name,
			Status:   string(row.Room.Status),
			Bars:     bars,
			Occupied: row.Occupied,
		})
	}

	return &TimelineResponse{
		WindowStart: resp.WindowStart.Format(domain.DateFormat),
		WindowEnd:   resp.WindowEnd.Format(domain.DateFormat),
		Days:        resp.Days,
		CellWidth:   resp.CellWidth,
		Rows:        rows,
	}
}
