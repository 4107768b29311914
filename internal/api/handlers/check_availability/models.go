package check_availability

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/service/availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Available                 bool     `json:"available"`
	ConflictingBookingNumbers []string `json:"conflictingBookingNumbers,omitempty"`
}

// parseQuery разбирает query-параметры запроса доступности
func parseQuery(query url.Values) (*availability.CheckAvailabilityRequest, error) {
	roomID, err := strconv.ParseInt(query.Get("roomId"), 10, 64)
	if err != nil || roomID <= 0 {
		return nil, fmt.Errorf("invalid roomId")
	}

	checkIn, err := time.Parse(domain.DateFormat, query.Get("checkIn"))
	if err != nil {
		return nil, fmt.Errorf("invalid checkIn: %w", err)
	}

	checkOut, err := time.Parse(domain.DateFormat, query.Get("checkOut"))
	if err != nil {
		return nil, fmt.Errorf("invalid checkOut: %w", err)
	}

	req := &availability.CheckAvailabilityRequest{
		RoomID:   roomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}

	if raw := query.Get("excludeBookingId"); raw != "" {
		excludeID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || excludeID <= 0 {
			return nil, fmt.Errorf("invalid excludeBookingId")
		}
		req.ExcludeBookingID = &excludeID
	}

	return req, nil
}

// fromServiceResponse конвертирует ответ сервиса в HTTP response
func fromServiceResponse(resp *availability.CheckAvailabilityResponse) *AvailabilityResponse {
	return &AvailabilityResponse{
		Available:                 resp.Available,
		ConflictingBookingNumbers: resp.ConflictingBookingNumbers,
	}
}
