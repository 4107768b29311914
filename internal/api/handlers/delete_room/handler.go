package delete_room

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	deleteRoomUC "github.com/m04kA/SMC-ReservationService/internal/usecase/delete_room"
)

const (
	msgInvalidRoomID     = "некорректный идентификатор номера"
	msgRoomNotFound      = "номер не найден"
	msgActiveBookings    = "у номера есть активные бронирования"
	msgInvalidForceParam = "некорректное значение параметра force"
)

type Handler struct {
	useCase DeleteRoomUseCase
	logger  Logger
}

func NewHandler(useCase DeleteRoomUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// blockedResponse тело ответа 409 с количеством активных бронирований
type blockedResponse struct {
	Error              string `json:"error"`
	ActiveBookingCount int    `json:"activeBookingCount"`
}

// Handle DELETE /api/v1/rooms/{roomId}
// С параметром ?force=true бронирования и транзакции номера удаляются каскадно
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := strconv.ParseInt(mux.Vars(r)["roomId"], 10, 64)
	if err != nil || roomID <= 0 {
		h.logger.Warn("DELETE /rooms/{id} - Invalid room id")
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	force := false
	if raw := r.URL.Query().Get("force"); raw != "" {
		force, err = strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("DELETE /rooms/%d - Invalid force param: %v", roomID, err)
			handlers.RespondBadRequest(w, msgInvalidForceParam)
			return
		}
	}

	if err := h.useCase.Execute(r.Context(), roomID, force); err != nil {
		var blockedErr *deleteRoomUC.ActiveBookingsError

		switch {
		case errors.As(err, &blockedErr):
			h.logger.Warn("DELETE /rooms/%d - Blocked by %d active bookings", roomID, blockedErr.Count)
			handlers.RespondJSON(w, http.StatusConflict, blockedResponse{
				Error:              msgActiveBookings,
				ActiveBookingCount: blockedErr.Count,
			})

		case errors.Is(err, deleteRoomUC.ErrRoomNotFound):
			h.logger.Warn("DELETE /rooms/%d - Room not found", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		default:
			h.logger.Error("DELETE /rooms/%d - Failed to delete room: %v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /rooms/%d - Room deleted (force=%v)", roomID, force)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
