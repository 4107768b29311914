package get_timeline

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	timelineService "github.com/m04kA/SMC-ReservationService/internal/service/timeline"
)

const (
	msgInvalidQuery  = "некорректные параметры запроса, ожидается startDate (YYYY-MM-DD)"
	msgInvalidWindow = "некорректное окно таймлайна"
)

type Handler struct {
	service TimelineService
	logger  Logger
}

func NewHandler(service TimelineService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/timeline
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /timeline - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.Build(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, timelineService.ErrInvalidWindow):
			h.logger.Warn("GET /timeline - Invalid window: start=%v, days=%d", req.StartDate, req.Days)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		default:
			h.logger.Error("GET /timeline - Failed to build timeline: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromServiceResponse(result))
}
