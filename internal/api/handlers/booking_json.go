package handlers

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// BookingJSON общая HTTP модель бронирования
// Используется всеми handlers, возвращающими бронирование целиком
type BookingJSON struct {
	ID                 int64   `json:"id"`
	BookingNumber      string  `json:"bookingNumber"`
	RoomID             int64   `json:"roomId"`
	GuestID            int64   `json:"guestId"`
	CheckIn            string  `json:"checkIn"`
	CheckOut           string  `json:"checkOut"`
	Adults             int     `json:"adults"`
	Children           int     `json:"children"`
	Nights             int     `json:"nights"`
	TotalAmount        float64 `json:"totalAmount"`
	PaidAmount         float64 `json:"paidAmount"`
	Status             string  `json:"status"`
	Notes              *string `json:"notes,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// FromDomainBooking конвертирует доменную модель в HTTP модель
func FromDomainBooking(b *domain.Booking) *BookingJSON {
	resp := &BookingJSON{
		ID:                 b.ID,
		BookingNumber:      b.BookingNumber,
		RoomID:             b.RoomID,
		GuestID:            b.GuestID,
		CheckIn:            b.CheckIn.Format(domain.DateFormat),
		CheckOut:           b.CheckOut.Format(domain.DateFormat),
		Adults:             b.Adults,
		Children:           b.Children,
		Nights:             b.Nights(),
		TotalAmount:        b.TotalAmount,
		PaidAmount:         b.PaidAmount,
		Status:             string(b.Status),
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          b.UpdatedAt.Format(time.RFC3339),
	}

	if b.CancelledAt != nil {
		cancelledAt := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}
