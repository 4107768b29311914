package check_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	availabilityService "github.com/m04kA/SMC-ReservationService/internal/service/availability"
)

const (
	msgInvalidQuery     = "некорректные параметры запроса, ожидаются roomId, checkIn и checkOut (YYYY-MM-DD)"
	msgInvalidDateRange = "дата выезда должна быть позже даты заезда"
	msgRoomNotFound     = "номер не найден"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /availability - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.CheckAvailability(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrInvalidDateRange):
			h.logger.Warn("GET /availability - Invalid date range: room_id=%d", req.RoomID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, availabilityService.ErrRoomNotFound):
			h.logger.Warn("GET /availability - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		default:
			h.logger.Error("GET /availability - Failed to check availability: room_id=%d, error=%v", req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromServiceResponse(result))
}
