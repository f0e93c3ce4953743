package evaluate_drop

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/campora/PMS-SchedulerService/internal/api/handlers"
	"github.com/campora/PMS-SchedulerService/internal/domain"
	"github.com/campora/PMS-SchedulerService/internal/service/planner"
)

const (
	msgInvalidSessionID = "некорректный ID сессии"
	msgInvalidAgentID   = "некорректный ID агента"
	msgInvalidDateKey   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidSlotCode  = "не указан код слота"
	msgInvalidPosition  = "некорректная зона вставки"
	msgSessionNotFound  = "сессия не найдена"
	msgNoDrag           = "перетаскивание не начато"
	msgTargetNotFound   = "целевая ячейка не найдена"
	msgDayNotVisible    = "дата вне отображаемого окна"
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

// EvaluateDropResponse HTTP response model. Reason заполняется только для
// «громких» отклонений, подлежащих показу пользователю
type EvaluateDropResponse struct {
	Droppable        bool   `json:"droppable"`
	Reason           string `json:"reason,omitempty"`
	Silent           bool   `json:"silent,omitempty"`
	DropZonePosition string `json:"dropZonePosition"`
}

// Handle GET /api/v1/sessions/{sessionId}/drag/target
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID, err := uuid.Parse(vars["sessionId"])
	if err != nil {
		h.logger.Warn("GET /sessions/{id}/drag/target - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	query := r.URL.Query()

	// agentId=0 — корзина "не назначено"
	agentID, err := strconv.ParseInt(query.Get("agentId"), 10, 64)
	if err != nil || agentID < 0 {
		h.logger.Warn("GET /sessions/{id}/drag/target - Invalid agent ID: %q", query.Get("agentId"))
		handlers.RespondBadRequest(w, msgInvalidAgentID)
		return
	}

	dateKey := query.Get("dateKey")
	if _, err := time.Parse(domain.DateFormat, dateKey); err != nil {
		h.logger.Warn("GET /sessions/{id}/drag/target - Invalid date key: %q", dateKey)
		handlers.RespondBadRequest(w, msgInvalidDateKey)
		return
	}

	slotCode := query.Get("slotCode")
	if slotCode == "" {
		h.logger.Warn("GET /sessions/{id}/drag/target - Missing slot code")
		handlers.RespondBadRequest(w, msgInvalidSlotCode)
		return
	}

	position := domain.DropZonePosition(query.Get("position"))
	if position != "" && !domain.ValidDropZonePosition(position) {
		h.logger.Warn("GET /sessions/{id}/drag/target - Invalid position: %q", position)
		handlers.RespondBadRequest(w, msgInvalidPosition)
		return
	}

	session, err := h.sessions.Get(sessionID)
	if err != nil {
		h.logger.Warn("GET /sessions/{id}/drag/target - Session not found: session_id=%s", sessionID)
		handlers.RespondNotFound(w, msgSessionNotFound)
		return
	}

	evaluation, err := session.EvaluateTarget(agentID, dateKey, slotCode, position)
	if err != nil {
		switch {
		case errors.Is(err, planner.ErrNoDragInProgress):
			h.logger.Warn("GET /sessions/{id}/drag/target - No drag in progress: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgNoDrag)

		case errors.Is(err, planner.ErrDayNotInWindow):
			h.logger.Warn("GET /sessions/{id}/drag/target - Day outside window: session_id=%s, date_key=%s",
				sessionID, dateKey)
			handlers.RespondBadRequest(w, msgDayNotVisible)

		case errors.Is(err, planner.ErrAgentNotFound), errors.Is(err, planner.ErrActivityNotFound):
			h.logger.Warn("GET /sessions/{id}/drag/target - Target not found: session_id=%s, agent_id=%d",
				sessionID, agentID)
			handlers.RespondNotFound(w, msgTargetNotFound)

		default:
			h.logger.Error("GET /sessions/{id}/drag/target - Failed to evaluate: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	resp := &EvaluateDropResponse{
		Droppable:        evaluation.Droppable,
		Silent:           evaluation.Silent,
		DropZonePosition: string(evaluation.Position),
	}
	if !evaluation.Droppable && !evaluation.Silent {
		resp.Reason = string(evaluation.Reason)
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
