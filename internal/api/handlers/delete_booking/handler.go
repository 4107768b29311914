package delete_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	deleteBookingUC "github.com/m04kA/SMC-ReservationService/internal/usecase/delete_booking"
)

const (
	msgInvalidBookingID = "некорректный идентификатор бронирования"
	msgBookingNotFound  = "бронирование не найдено"
)

type Handler struct {
	useCase DeleteBookingUseCase
	logger  Logger
}

func NewHandler(useCase DeleteBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		h.logger.Warn("DELETE /bookings/{id} - Invalid booking id")
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	if err := h.useCase.Execute(r.Context(), bookingID); err != nil {
		switch {
		case errors.Is(err, deleteBookingUC.ErrBookingNotFound):
			h.logger.Warn("DELETE /bookings/%d - Booking not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("DELETE /bookings/%d - Failed to delete booking: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/%d - Booking deleted", bookingID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
