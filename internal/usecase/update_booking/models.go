package update_booking

import "time"

// Request запрос на обновление бронирования
// Nil-поля не изменяются
type Request struct {
	BookingID int64

	RoomID   *int64
	CheckIn  *time.Time
	CheckOut *time.Time
	Adults   *int
	Children *int

	TotalAmount *float64
	PaidAmount  *float64 // только увеличение, дельта фиксируется как платеж

	Notes *string
}

// Response обновленное бронирование
type Response struct {
	ID            int64
	BookingNumber string
	RoomID        int64
	GuestID       int64
	CheckIn       time.Time
	CheckOut      time.Time
	Adults        int
	Children      int
	TotalAmount   float64
	PaidAmount    float64
	Status        string
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
