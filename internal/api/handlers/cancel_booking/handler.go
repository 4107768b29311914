package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	bookingsService "github.com/m04kA/SMC-ReservationService/internal/service/bookings"
)

const (
	msgInvalidBookingID   = "некорректный идентификатор бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgReasonRequired     = "причина отмены обязательна"
	msgReasonTooLong      = "причина отмены слишком длинная"
	msgBookingNotFound    = "бронирование не найдено"
	msgAlreadyFinalized   = "завершенное бронирование нельзя отменить"
	msgAlreadyCancelled   = "бронирование уже отменено"
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

// Handle PATCH /api/v1/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid booking id")
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req CancelBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/%d/cancel - Invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Reason == "" {
		h.logger.Warn("PATCH /bookings/%d/cancel - Missing reason", bookingID)
		handlers.RespondBadRequest(w, msgReasonRequired)
		return
	}
	if len(req.Reason) > domain.MaxCancellationReasonLength {
		h.logger.Warn("PATCH /bookings/%d/cancel - Reason too long", bookingID)
		handlers.RespondBadRequest(w, msgReasonTooLong)
		return
	}

	booking, err := h.service.Cancel(r.Context(), &bookingsService.CancelRequest{
		BookingID: bookingID,
		Reason:    req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/%d/cancel - Booking not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookingsService.ErrAlreadyCancelled):
			h.logger.Warn("PATCH /bookings/%d/cancel - Already cancelled", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyCancelled)

		case errors.Is(err, bookingsService.ErrAlreadyFinalized):
			h.logger.Warn("PATCH /bookings/%d/cancel - Already finalized", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyFinalized)

		default:
			h.logger.Error("PATCH /bookings/%d/cancel - Failed to cancel booking: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/%d/cancel - Booking cancelled: number=%s", booking.ID, booking.BookingNumber)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainBooking(booking))
}
