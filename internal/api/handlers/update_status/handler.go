package update_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	bookingsService "github.com/m04kA/SMC-ReservationService/internal/service/bookings"
)

const (
	msgInvalidBookingID   = "некорректный идентификатор бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnknownStatus      = "неизвестный статус бронирования"
	msgBookingNotFound    = "бронирование не найдено"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/status
// Административная смена статуса в обход машины состояний
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		h.logger.Warn("PATCH /bookings/{id}/status - Invalid booking id")
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/%d/status - Invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	actorID := ""
	if userID, ok := middleware.UserIDFromContext(r.Context()); ok {
		actorID = strconv.FormatInt(userID, 10)
	}

	err = h.service.SetStatus(r.Context(), &bookingsService.SetStatusRequest{
		BookingID: bookingID,
		Status:    req.Status,
		ActorID:   actorID,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrUnknownStatus):
			h.logger.Warn("PATCH /bookings/%d/status - Unknown status %q", bookingID, req.Status)
			handlers.RespondBadRequest(w, msgUnknownStatus)

		case errors.Is(err, bookingsService.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/%d/status - Booking not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("PATCH /bookings/%d/status - Failed to update status: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/%d/status - Status overridden to %s by user=%s", bookingID, req.Status, actorID)
	handlers.RespondJSON(w, http.StatusOK, UpdateStatusResponse{
		ID:     bookingID,
		Status: req.Status,
	})
}
