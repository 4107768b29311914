package check_out

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	checkOutUC "github.com/m04kA/SMC-ReservationService/internal/usecase/check_out"
)

const (
	msgInvalidBookingID  = "некорректный идентификатор бронирования"
	msgBookingNotFound   = "бронирование не найдено"
	msgInvalidTransition = "выселение недопустимо в текущем статусе бронирования"
)

type Handler struct {
	useCase CheckOutUseCase
	logger  Logger
}

func NewHandler(useCase CheckOutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/check-out
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		h.logger.Warn("PATCH /bookings/{id}/check-out - Invalid booking id")
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	booking, err := h.useCase.Execute(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, checkOutUC.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/%d/check-out - Booking not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, checkOutUC.ErrInvalidTransition):
			h.logger.Warn("PATCH /bookings/%d/check-out - Invalid transition", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

		default:
			h.logger.Error("PATCH /bookings/%d/check-out - Failed to check out: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/%d/check-out - Guest checked out: number=%s", booking.ID, booking.BookingNumber)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainBooking(booking))
}
