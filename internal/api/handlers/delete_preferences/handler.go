package delete_preferences

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/campora/PMS-SchedulerService/internal/api/handlers"
	"github.com/campora/PMS-SchedulerService/internal/api/middleware"
	preferences "github.com/campora/PMS-SchedulerService/internal/service/preferences"
)

const (
	msgInvalidUserID = "некорректный ID пользователя"
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ запрещен"
	msgInvalidData   = "некорректные данные"
)

type Handler struct {
	service PreferencesService
	logger  Logger
}

func NewHandler(service PreferencesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/users/{userId}/preferences
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, err := strconv.ParseInt(vars["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /users/{id}/preferences - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	// Настройки доступны только их владельцу
	authUserID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /users/{id}/preferences - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	if authUserID != userID {
		h.logger.Warn("DELETE /users/{id}/preferences - Access denied: user_id=%d, auth_user_id=%d", userID, authUserID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	if err := h.service.Reset(r.Context(), userID); err != nil {
		if errors.Is(err, preferences.ErrInvalidInput) {
			h.logger.Warn("DELETE /users/{id}/preferences - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidData)
			return
		}
		h.logger.Error("DELETE /users/{id}/preferences - Failed to reset preferences: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /users/{id}/preferences - Preferences reset: user_id=%d", userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
