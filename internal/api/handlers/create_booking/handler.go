package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-ReservationService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDateRange     = "дата выезда должна быть позже даты заезда"
	msgInvalidInput         = "некорректные данные бронирования"
	msgGuestNotFound        = "гость не найден"
	msgRoomNotFound         = "номер не найден"
	msgRoomNotBookable      = "номер недоступен для бронирования"
	msgRoomCapacityExceeded = "количество гостей превышает вместимость номера"
	msgDatesConflict        = "выбранные даты пересекаются с существующим бронированием"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
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

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflictErr *createBooking.ConflictError

		switch {
		case errors.As(err, &conflictErr):
			h.logger.Warn("POST /bookings - Dates conflict: room_id=%d, conflicts=%v",
				req.RoomID, conflictErr.BookingNumbers)
			handlers.RespondJSON(w, http.StatusConflict, conflictResponse{
				Error:                     msgDatesConflict,
				ConflictingBookingNumbers: conflictErr.BookingNumbers,
			})

		case errors.Is(err, createBooking.ErrGuestNotFound):
			h.logger.Warn("POST /bookings - Guest not found: guest_id=%d", req.GuestID)
			handlers.RespondNotFound(w, msgGuestNotFound)

		case errors.Is(err, createBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createBooking.ErrRoomNotBookable):
			h.logger.Warn("POST /bookings - Room not bookable: room_id=%d", req.RoomID)
			handlers.RespondError(w, http.StatusConflict, msgRoomNotBookable)

		case errors.Is(err, createBooking.ErrRoomCapacityExceeded):
			h.logger.Warn("POST /bookings - Capacity exceeded: room_id=%d", req.RoomID)
			handlers.RespondBadRequest(w, msgRoomCapacityExceeded)

		case errors.Is(err, createBooking.ErrInvalidDateRange):
			h.logger.Warn("POST /bookings - Invalid date range: room_id=%d", req.RoomID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: room_id=%d, guest_id=%d, error=%v",
				req.RoomID, req.GuestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, number=%s, room_id=%d",
		result.ID, result.BookingNumber, result.RoomID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
