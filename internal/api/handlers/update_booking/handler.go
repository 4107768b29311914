package update_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	updateBooking "github.com/m04kA/SMC-ReservationService/internal/usecase/update_booking"
)

const (
	msgInvalidBookingID     = "некорректный идентификатор бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDateRange     = "дата выезда должна быть позже даты заезда"
	msgInvalidInput         = "некорректные данные бронирования"
	msgBookingNotFound      = "бронирование не найдено"
	msgBookingFinalized     = "завершенное бронирование нельзя изменить"
	msgRoomNotFound         = "номер не найден"
	msgRoomNotBookable      = "номер недоступен для бронирования"
	msgRoomCapacityExceeded = "количество гостей превышает вместимость номера"
	msgDatesConflict        = "выбранные даты пересекаются с существующим бронированием"
	msgPaidAmountDecreased  = "сумму оплаты нельзя уменьшить"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// conflictResponse тело ответа 409 с номерами конфликтующих бронирований
type conflictResponse struct {
	Error                     string   `json:"error"`
	ConflictingBookingNumbers []string `json:"conflictingBookingNumbers"`
}

// Handle PUT /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		h.logger.Warn("PUT /bookings/{id} - Invalid booking id")
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/%d - Invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID)
	if err != nil {
		h.logger.Warn("PUT /bookings/%d - Failed to parse dates: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflictErr *updateBooking.ConflictError

		switch {
		case errors.As(err, &conflictErr):
			h.logger.Warn("PUT /bookings/%d - Dates conflict: conflicts=%v", bookingID, conflictErr.BookingNumbers)
			handlers.RespondJSON(w, http.StatusConflict, conflictResponse{
				Error:                     msgDatesConflict,
				ConflictingBookingNumbers: conflictErr.BookingNumbers,
			})

		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/%d - Booking not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, updateBooking.ErrBookingFinalized):
			h.logger.Warn("PUT /bookings/%d - Booking finalized", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgBookingFinalized)

		case errors.Is(err, updateBooking.ErrRoomNotFound):
			h.logger.Warn("PUT /bookings/%d - Room not found", bookingID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, updateBooking.ErrRoomNotBookable):
			h.logger.Warn("PUT /bookings/%d - Room not bookable", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgRoomNotBookable)

		case errors.Is(err, updateBooking.ErrRoomCapacityExceeded):
			h.logger.Warn("PUT /bookings/%d - Capacity exceeded", bookingID)
			handlers.RespondBadRequest(w, msgRoomCapacityExceeded)

		case errors.Is(err, updateBooking.ErrPaidAmountDecreased):
			h.logger.Warn("PUT /bookings/%d - Paid amount decrease rejected", bookingID)
			handlers.RespondBadRequest(w, msgPaidAmountDecreased)

		case errors.Is(err, updateBooking.ErrInvalidDateRange):
			h.logger.Warn("PUT /bookings/%d - Invalid date range", bookingID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, updateBooking.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/%d - Invalid input: %v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /bookings/%d - Failed to update booking: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/%d - Booking updated successfully: number=%s, status=%s",
		result.ID, result.BookingNumber, result.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
