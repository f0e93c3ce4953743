package start_drag

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/campora/PMS-SchedulerService/internal/api/handlers"
	"github.com/campora/PMS-SchedulerService/internal/service/planner"
)

const (
	msgInvalidSessionID   = "некорректный ID сессии"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidActivityID  = "некорректный ID активности"
	msgSessionNotFound    = "сессия не найдена"
	msgActivityNotFound   = "активность не найдена в сетке"
	msgNotDraggable       = "эту активность нельзя перетаскивать"
	msgDragInProgress     = "перетаскивание уже начато"
	msgOperationInFlight  = "предыдущая операция еще не завершена"
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

// StartDragRequest HTTP request model
type StartDragRequest struct {
	ActivityID int64 `json:"activityId"`
}

// StartDragResponse HTTP response model
type StartDragResponse struct {
	OperationID string `json:"operationId"`
	ActivityID  int64  `json:"activityId"`
	Source      struct {
		AgentID  int64  `json:"agentId"`
		DateKey  string `json:"dateKey"`
		SlotCode string `json:"slotCode"`
	} `json:"source"`
}

// Handle POST /api/v1/sessions/{sessionId}/drag
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID, err := uuid.Parse(vars["sessionId"])
	if err != nil {
		h.logger.Warn("POST /sessions/{id}/drag - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	var req StartDragRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/drag - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.ActivityID <= 0 {
		h.logger.Warn("POST /sessions/{id}/drag - Invalid activity ID: %d", req.ActivityID)
		handlers.RespondBadRequest(w, msgInvalidActivityID)
		return
	}

	session, err := h.sessions.Get(sessionID)
	if err != nil {
		h.logger.Warn("POST /sessions/{id}/drag - Session not found: session_id=%s", sessionID)
		handlers.RespondNotFound(w, msgSessionNotFound)
		return
	}

	state, err := session.BeginDrag(req.ActivityID)
	if err != nil {
		switch {
		case errors.Is(err, planner.ErrActivityNotFound):
			h.logger.Warn("POST /sessions/{id}/drag - Activity not found: session_id=%s, activity_id=%d",
				sessionID, req.ActivityID)
			handlers.RespondNotFound(w, msgActivityNotFound)

		case errors.Is(err, planner.ErrActivityNotDraggable):
			h.logger.Warn("POST /sessions/{id}/drag - Activity not draggable: session_id=%s, activity_id=%d",
				sessionID, req.ActivityID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgNotDraggable)

		case errors.Is(err, planner.ErrDragInProgress):
			h.logger.Warn("POST /sessions/{id}/drag - Drag already in progress: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgDragInProgress)

		case errors.Is(err, planner.ErrOperationInFlight):
			h.logger.Warn("POST /sessions/{id}/drag - Operation in flight: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgOperationInFlight)

		default:
			h.logger.Error("POST /sessions/{id}/drag - Failed to start drag: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	resp := &StartDragResponse{
		OperationID: state.OperationID.String(),
		ActivityID:  state.ActivityID,
	}
	resp.Source.AgentID = state.Source.AgentID
	resp.Source.DateKey = state.Source.DateKey
	resp.Source.SlotCode = state.Source.SlotCode

	h.logger.Info("POST /sessions/{id}/drag - Drag started: session_id=%s, activity_id=%d, op=%s",
		sessionID, req.ActivityID, state.OperationID)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}
