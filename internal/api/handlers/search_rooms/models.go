package search_rooms

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/service/availability"
)

// RoomQuoteResponse HTTP модель номера с расчетом стоимости
type RoomQuoteResponse struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	MaxGuests  int     `json:"maxGuests"`
	BasePrice  float64 `json:"basePrice"`
	Nights     int     `json:"nights"`
	TotalPrice float64 `json:"totalPrice"`
}

// SearchRoomsResponse HTTP response model
type SearchRoomsResponse struct {
	Rooms []RoomQuoteResponse `json:"rooms"`
}

// parseQuery разбирает query-параметры поиска номеров
func parseQuery(query url.Values) (*availability.SearchRoomsRequest, error) {
	checkIn, err := time.Parse(domain.DateFormat, query.Get("checkIn"))
	if err != nil {
		return nil, fmt.Errorf("invalid checkIn: %w", err)
	}

	checkOut, err := time.Parse(domain.DateFormat, query.Get("checkOut"))
	if err != nil {
		return nil, fmt.Errorf("invalid checkOut: %w", err)
	}

	guests, err := strconv.Atoi(query.Get("guests"))
	if err != nil {
		return nil, fmt.Errorf("invalid guests: %w", err)
	}

	return &availability.SearchRoomsRequest{
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Guests:   guests,
	}, nil
}

// fromServiceResponse конвертирует ответ сервиса в HTTP response
func fromServiceResponse(resp *availability.SearchRoomsResponse) *SearchRoomsResponse {
	rooms := make([]RoomQuoteResponse, 0, len(resp.Rooms))
	for _, quote := range resp.Rooms {
		rooms = append(rooms, RoomQuoteResponse{
			ID:         quote.Room.ID,
			Name:       quote.Room.Name,
			MaxGuests:  quote.Room.MaxGuests,
			BasePrice:  quote.Room.BasePrice,
			Nights:     quote.Nights,
			TotalPrice: quote.TotalPrice,
		})
	}
	return &SearchRoomsResponse{Rooms: rooms}
}
