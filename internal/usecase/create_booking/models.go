package create_booking

import "time"

// Request запрос на создание бронирования
type Request struct {
	RoomID   int64
	GuestID  int64
	CheckIn  time.Time
	CheckOut time.Time
	Adults   int
	Children int

	TotalAmount float64
	PaidAmount  float64 // первичная оплата, 0 = предварительное бронирование

	Notes *string
}

// Response созданное бронирование
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
