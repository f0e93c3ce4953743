package drop_activity

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/campora/PMS-SchedulerService/internal/api/handlers"
	moveActivity "github.com/campora/PMS-SchedulerService/internal/usecase/move_activity"
)

const (
	msgInvalidSessionID   = "некорректный ID сессии"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные параметры перемещения"
	msgSessionNotFound    = "сессия не найдена"
	msgNoDrag             = "перетаскивание не начато"
	msgOperationInFlight  = "предыдущая операция еще не завершена"
	msgNeedsEmployee      = "активность требует назначения на сотрудника"
	msgNeedsProvider      = "активность требует назначения на провайдера"
	msgIncompatibleSlot   = "активность нельзя перенести в другой день или слот"
	msgSkillMismatch      = "сотрудник не обладает нужной компетенцией"
	msgProviderNotFit     = "провайдер не поставляет требуемый продукт"
	msgRejected           = "перемещение отклонено"
	msgPersistFailed      = "не удалось сохранить перемещение"
)

type Handler struct {
	useCase MoveActivityUseCase
	logger  Logger
}

func NewHandler(useCase MoveActivityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/drop
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID, err := uuid.Parse(vars["sessionId"])
	if err != nil {
		h.logger.Warn("POST /sessions/{id}/drop - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	var req DropActivityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/drop - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(sessionID))
	if err != nil {
		switch {
		case errors.Is(err, moveActivity.ErrInvalidInput):
			h.logger.Warn("POST /sessions/{id}/drop - Invalid input: session_id=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, moveActivity.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/drop - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, moveActivity.ErrNoDragInProgress):
			h.logger.Warn("POST /sessions/{id}/drop - No drag in progress: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgNoDrag)

		case errors.Is(err, moveActivity.ErrOperationInFlight):
			h.logger.Warn("POST /sessions/{id}/drop - Operation in flight: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgOperationInFlight)

		case errors.Is(err, moveActivity.ErrNeedsEmployee):
			h.logger.Warn("POST /sessions/{id}/drop - Needs employee: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgNeedsEmployee)

		case errors.Is(err, moveActivity.ErrNeedsProvider):
			h.logger.Warn("POST /sessions/{id}/drop - Needs provider: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgNeedsProvider)

		case errors.Is(err, moveActivity.ErrIncompatibleSlot):
			h.logger.Warn("POST /sessions/{id}/drop - Incompatible slot: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgIncompatibleSlot)

		case errors.Is(err, moveActivity.ErrSkillMismatch):
			h.logger.Warn("POST /sessions/{id}/drop - Skill mismatch: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgSkillMismatch)

		case errors.Is(err, moveActivity.ErrProviderNotEligible):
			h.logger.Warn("POST /sessions/{id}/drop - Provider not eligible: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgProviderNotFit)

		case errors.Is(err, moveActivity.ErrRejected):
			h.logger.Info("POST /sessions/{id}/drop - Silently rejected: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgRejected)

		case errors.Is(err, moveActivity.ErrPersistFailed):
			h.logger.Error("POST /sessions/{id}/drop - Persist failed: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusBadGateway, msgPersistFailed)

		default:
			h.logger.Error("POST /sessions/{id}/drop - Failed to drop: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/drop - Move committed: session_id=%s, op=%s", sessionID, result.OperationID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
