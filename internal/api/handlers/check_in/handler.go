package check_in

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	checkInUC "github.com/m04kA/SMC-ReservationService/internal/usecase/check_in"
)

const (
	msgInvalidBookingID  = "некорректный идентификатор бронирования"
	msgBookingNotFound   = "бронирование не найдено"
	msgInvalidTransition = "заселение недопустимо в текущем статусе бронирования"
)

type Handler struct {
	useCase CheckInUseCase
	logger  Logger
}

func NewHandler(useCase CheckInUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/check-in
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		h.logger.Warn("PATCH /bookings/{id}/check-in - Invalid booking id")
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	booking, err := h.useCase.Execute(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, checkInUC.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/%d/check-in - Booking not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, checkInUC.ErrInvalidTransition):
			h.logger.Warn("PATCH /bookings/%d/check-in - Invalid transition", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

		default:
			h.logger.Error("PATCH /bookings/%d/check-in - Failed to check in: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/%d/check-in - Guest checked in: number=%s", booking.ID, booking.BookingNumber)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainBooking(booking))
}
