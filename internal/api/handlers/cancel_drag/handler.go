package cancel_drag

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/campora/PMS-SchedulerService/internal/api/handlers"
	"github.com/campora/PMS-SchedulerService/internal/service/planner"
)

const (
	msgInvalidSessionID  = "некорректный ID сессии"
	msgSessionNotFound   = "сессия не найдена"
	msgNoDrag            = "перетаскивание не начато"
	msgOperationInFlight = "предыдущая операция еще не завершена"
)

type Handler struct {
	sessions SessionRegistry
	logger   Logger
}

func NewHandler(sessions SessionRegistry, logger Logger) *Handler {
	return &Handler{
		sessions: sessions,
		logger:   logger,
	}
}

// Handle DELETE /api/v1/sessions/{sessionId}/drag
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID, err := uuid.Parse(vars["sessionId"])
	if err != nil {
		h.logger.Warn("DELETE /sessions/{id}/drag - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	session, err := h.sessions.Get(sessionID)
	if err != nil {
		h.logger.Warn("DELETE /sessions/{id}/drag - Session not found: session_id=%s", sessionID)
		handlers.RespondNotFound(w, msgSessionNotFound)
		return
	}

	if err := session.CancelDrag(); err != nil {
		switch {
		case errors.Is(err, planner.ErrNoDragInProgress):
			h.logger.Warn("DELETE /sessions/{id}/drag - No drag in progress: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgNoDrag)

		case errors.Is(err, planner.ErrOperationInFlight):
			h.logger.Warn("DELETE /sessions/{id}/drag - Operation in flight: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgOperationInFlight)

		default:
			h.logger.Error("DELETE /sessions/{id}/drag - Failed to cancel: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /sessions/{id}/drag - Drag cancelled: session_id=%s", sessionID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
