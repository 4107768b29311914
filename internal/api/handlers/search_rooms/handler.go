package search_rooms

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	availabilityService "github.com/m04kA/SMC-ReservationService/internal/service/availability"
)

const (
	msgInvalidQuery     = "некорректные параметры запроса, ожидаются checkIn, checkOut (YYYY-MM-DD) и guests"
	msgInvalidDateRange = "дата выезда должна быть позже даты заезда"
	msgInvalidGuests    = "количество гостей должно быть положительным"
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

// Handle GET /api/v1/rooms/search
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /rooms/search - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.SearchAvailableRooms(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrInvalidDateRange):
			h.logger.Warn("GET /rooms/search - Invalid date range")
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, availabilityService.ErrInvalidGuests):
			h.logger.Warn("GET /rooms/search - Invalid guests count")
			handlers.RespondBadRequest(w, msgInvalidGuests)

		default:
			h.logger.Error("GET /rooms/search - Failed to search rooms: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromServiceResponse(result))
}
