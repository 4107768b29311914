package create_booking

import (
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.GuestID <= 0 {
		return fmt.Errorf("%w: guestID must be positive", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidInput)
	}

	// Полуоткрытый интервал [checkIn, checkOut): минимум одна ночь
	if !domain.NormalizeDate(req.CheckOut).After(domain.NormalizeDate(req.CheckIn)) {
		return ErrInvalidDateRange
	}

	if req.Adults < domain.MinAdults {
		return fmt.Errorf("%w: at least %d adult is required", ErrInvalidInput, domain.MinAdults)
	}

	if req.Children < domain.MinChildren {
		return fmt.Errorf("%w: children must not be negative", ErrInvalidInput)
	}

	if req.TotalAmount < 0 {
		return fmt.Errorf("%w: totalAmount must not be negative", ErrInvalidInput)
	}

	if req.PaidAmount < 0 {
		return fmt.Errorf("%w: paidAmount must not be negative", ErrInvalidInput)
	}

	if req.PaidAmount > req.TotalAmount {
		return fmt.Errorf("%w: paidAmount must not exceed totalAmount", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
