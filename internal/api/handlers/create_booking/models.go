package create_booking

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	createBooking "github.com/m04kA/SMC-ReservationService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RoomID      int64   `json:"roomId"`
	GuestID     int64   `json:"guestId"`
	CheckIn     string  `json:"checkIn"`  // "2025-06-01"
	CheckOut    string  `json:"checkOut"` // "2025-06-05"
	Adults      int     `json:"adults"`
	Children    int     `json:"children"`
	TotalAmount float64 `json:"totalAmount"`
	PaidAmount  float64 `json:"paidAmount"`
	Notes       *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64   `json:"id"`
	BookingNumber string  `json:"bookingNumber"`
	RoomID        int64   `json:"roomId"`
	GuestID       int64   `json:"guestId"`
	CheckIn       string  `json:"checkIn"`
	CheckOut      string  `json:"checkOut"`
	Adults        int     `json:"adults"`
	Children      int     `json:"children"`
	TotalAmount   float64 `json:"totalAmount"`
	PaidAmount    float64 `json:"paidAmount"`
	Status        string  `json:"status"`
	Notes         *string `json:"notes,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом дат)
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	checkInDate, err := types.NewDateStringFromString(r.CheckIn)
	if err != nil {
		return nil, err
	}
	checkIn, err := checkInDate.Time()
	if err != nil {
		return nil, err
	}

	checkOutDate, err := types.NewDateStringFromString(r.CheckOut)
	if err != nil {
		return nil, err
	}
	checkOut, err := checkOutDate.Time()
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		RoomID:      r.RoomID,
		GuestID:     r.GuestID,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Adults:      r.Adults,
		Children:    r.Children,
		TotalAmount: r.TotalAmount,
		PaidAmount:  r.PaidAmount,
		Notes:       r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		BookingNumber: resp.BookingNumber,
		RoomID:        resp.RoomID,
		GuestID:       resp.GuestID,
		CheckIn:       resp.CheckIn.Format(domain.DateFormat),
		CheckOut:      resp.CheckOut.Format(domain.DateFormat),
		Adults:        resp.Adults,
		Children:      resp.Children,
		TotalAmount:   resp.TotalAmount,
		PaidAmount:    resp.PaidAmount,
		Status:        resp.Status,
		Notes:         resp.Notes,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
