package get_preferences

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/campora/PMS-SchedulerService/internal/api/handlers"
	"github.com/campora/PMS-SchedulerService/internal/api/middleware"
	"github.com/campora/PMS-SchedulerService/internal/domain"
)

const (
	msgInvalidUserID = "некорректный ID пользователя"
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ запрещен"
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

// PreferencesResponse HTTP response model
type PreferencesResponse struct {
	UserID             int64    `json:"userId"`
	Relationship       *string  `json:"relationship,omitempty"`
	SkillFilterEnabled bool     `json:"skillFilterEnabled"`
	VisibleSlotCodes   []string `json:"visibleSlotCodes,omitempty"`
	DurationDays       int      `json:"durationDays"`
}

// FromDomain конвертирует доменные настройки в HTTP response
func FromDomain(prefs *domain.DisplayPreferences) *PreferencesResponse {
	resp := &PreferencesResponse{
		UserID:             prefs.UserID,
		SkillFilterEnabled: prefs.SkillFilterEnabled,
		VisibleSlotCodes:   prefs.VisibleSlotCodes,
		DurationDays:       prefs.DurationDays,
	}
	if prefs.Relationship != nil {
		relationship := string(*prefs.Relationship)
		resp.Relationship = &relationship
	}
	return resp
}

// Handle GET /api/v1/users/{userId}/preferences
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, err := strconv.ParseInt(vars["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /users/{id}/preferences - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	// Настройки доступны только их владельцу
	authUserID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{id}/preferences - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	if authUserID != userID {
		h.logger.Warn("GET /users/{id}/preferences - Access denied: user_id=%d, auth_user_id=%d", userID, authUserID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	prefs, err := h.service.GetForUser(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /users/{id}/preferences - Failed to get preferences: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/{id}/preferences - Preferences retrieved: user_id=%d", userID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(prefs))
}
