package refresh_grid

import (
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/campora/PMS-SchedulerService/internal/api/handlers"
	"github.com/campora/PMS-SchedulerService/internal/api/middleware"
	buildGrid "github.com/campora/PMS-SchedulerService/internal/usecase/build_grid"
)

const (
	msgInvalidSessionID   = "некорректный ID сессии"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidData        = "некорректные параметры отображения"
	msgSessionNotFound    = "сессия не найдена"
	msgDebounced          = "обновление запрошено слишком часто"
	msgMissingUserID      = "отсутствует ID пользователя"
)

type Handler struct {
	useCase BuildGridUseCase
	logger  Logger
}

func NewHandler(useCase BuildGridUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/refresh
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID, err := uuid.Parse(vars["sessionId"])
	if err != nil {
		h.logger.Warn("POST /sessions/{id}/refresh - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /sessions/{id}/refresh - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req RefreshGridRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /sessions/{id}/refresh - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID, sessionID)
	if err != nil {
		h.logger.Warn("POST /sessions/{id}/refresh - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, buildGrid.ErrInvalidInput):
			h.logger.Warn("POST /sessions/{id}/refresh - Invalid input: session_id=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, buildGrid.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/refresh - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, buildGrid.ErrRefreshDebounced):
			h.logger.Info("POST /sessions/{id}/refresh - Debounced: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusTooManyRequests, msgDebounced)

		default:
			h.logger.Error("POST /sessions/{id}/refresh - Failed to refresh: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/refresh - Grid refreshed: session_id=%s, user_id=%d", sessionID, userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
