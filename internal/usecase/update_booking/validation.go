package update_booking

import (
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Согласованность дат и сумм с текущим состоянием проверяется в транзакции
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.RoomID != nil && *req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.Adults != nil && *req.Adults < domain.MinAdults {
		return fmt.Errorf("%w: at least %d adult is required", ErrInvalidInput, domain.MinAdults)
	}

	if req.Children != nil && *req.Children < domain.MinChildren {
		return fmt.Errorf("%w: children must not be negative", ErrInvalidInput)
	}

	if req.TotalAmount != nil && *req.TotalAmount < 0 {
		return fmt.Errorf("%w: totalAmount must not be negative", ErrInvalidInput)
	}

	if req.PaidAmount != nil && *req.PaidAmount < 0 {
		return fmt.Errorf("%w: paidAmount must not be negative", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
