package get_bookings

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/service/bookings"
)

// BookingsResponse HTTP response model
type BookingsResponse struct {
	Bookings []*handlers.BookingJSON `json:"bookings"`
	Total    int                     `json:"total"`
}

// parseQuery разбирает query-параметры фильтра бронирований
// Все параметры необязательны
func parseQuery(query url.Values) (*bookings.ListRequest, error) {
	req := &bookings.ListRequest{}

	if raw := query.Get("roomId"); raw != "" {
		roomID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || roomID <= 0 {
			return nil, fmt.Errorf("invalid roomId")
		}
		req.RoomID = &roomID
	}

	if raw := query.Get("startDate"); raw != "" {
		startDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid startDate: %w", err)
		}
		req.StartDate = &startDate
	}

	if raw := query.Get("endDate"); raw != "" {
		endDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid endDate: %w", err)
		}
		req.EndDate = &endDate
	}

	if raw := query.Get("status"); raw != "" {
		req.Status = &raw
	}

	if raw := query.Get("includeInactive"); raw != "" {
		includeInactive, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive: %w", err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}

// fromDomainBookings конвертирует список бронирований в HTTP response
func fromDomainBookings(list []*domain.Booking) *BookingsResponse {
	items := make([]*handlers.BookingJSON, 0, len(list))
	for _, b := range list {
		items = append(items, handlers.FromDomainBooking(b))
	}
	return &BookingsResponse{
		Bookings: items,
		Total:    len(items),
	}
}
