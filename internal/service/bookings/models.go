package bookings

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// ListRequest параметры выборки бронирований
type ListRequest struct {
	RoomID          *int64
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *string
	IncludeInactive bool
}

// CancelRequest запрос отмены бронирования
type CancelRequest struct {
	BookingID int64
	Reason    string
}

// SetStatusRequest административная смена статуса в обход машины состояний
type SetStatusRequest struct {
	BookingID int64
	Status    string
	ActorID   string // кто выполнил override, для аудита в логах
}

// toFilter переводит запрос выборки в доменный фильтр
func (r *ListRequest) toFilter() (domain.RoomBookingsFilter, error) {
	filter := domain.RoomBookingsFilter{
		RoomID:          r.RoomID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := domain.ParseStatus(*r.Status)
		if err != nil {
			return domain.RoomBookingsFilter{}, ErrUnknownStatus
		}
		filter.Status = &status
	}

	return filter, nil
}
