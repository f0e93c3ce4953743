package get_grid

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/campora/PMS-SchedulerService/internal/api/handlers"
)

const (
	msgInvalidSessionID = "некорректный ID сессии"
	msgSessionNotFound  = "сессия не найдена"
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

// GetGridResponse HTTP response model
type GetGridResponse struct {
	SessionID string                 `json:"sessionId"`
	Grid      *handlers.GridResponse `json:"grid"`
}

// Handle GET /api/v1/sessions/{sessionId}/grid
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID, err := uuid.Parse(vars["sessionId"])
	if err != nil {
		h.logger.Warn("GET /sessions/{id}/grid - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	session, err := h.sessions.Get(sessionID)
	if err != nil {
		h.logger.Warn("GET /sessions/{id}/grid - Session not found: session_id=%s", sessionID)
		handlers.RespondNotFound(w, msgSessionNotFound)
		return
	}

	h.logger.Info("GET /sessions/{id}/grid - Grid retrieved: session_id=%s", sessionID)
	handlers.RespondJSON(w, http.StatusOK, &GetGridResponse{
		SessionID: sessionID.String(),
		Grid:      handlers.FromGridSnapshot(session.Grid()),
	})
}
