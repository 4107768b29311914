package update_booking

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	updateBooking "github.com/m04kA/SMC-ReservationService/internal/usecase/update_booking"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// UpdateBookingRequest HTTP request model
// Отсутствующие поля не изменяются
type UpdateBookingRequest struct {
	RoomID      *int64   `json:"roomId,omitempty"`
	CheckIn     *string  `json:"checkIn,omitempty"`
	CheckOut    *string  `json:"checkOut,omitempty"`
	Adults      *int     `json:"adults,omitempty"`
	Children    *int     `json:"children,omitempty"`
	TotalAmount *float64 `json:"totalAmount,omitempty"`
	PaidAmount  *float64 `json:"paidAmount,omitempty"`
	Notes       *string  `json:"notes,omitempty"`
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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(bookingID int64) (*updateBooking.Request, error) {
	req := &updateBooking.Request{
		BookingID:   bookingID,
		RoomID:      r.RoomID,
		Adults:      r.Adults,
		Children:    r.Children,
		TotalAmount: r.TotalAmount,
		PaidAmount:  r.PaidAmount,
		Notes:       r.Notes,
	}

	if r.CheckIn != nil {
		checkInDate, err := types.NewDateStringFromString(*r.CheckIn)
		if err != nil {
			return nil, err
		}
		checkIn, err := checkInDate.Time()
		if err != nil {
			return nil, err
		}
		req.CheckIn = &checkIn
	}

	if r.CheckOut != nil {
		checkOutDate, err := types.NewDateStringFromString(*r.CheckOut)
		if err != nil {
			return nil, err
		}
		checkOut, err := checkOutDate.Time()
		if err != nil {
			return nil, err
		}
		req.CheckOut = &checkOut
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateBooking.Response) *BookingResponse {
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
