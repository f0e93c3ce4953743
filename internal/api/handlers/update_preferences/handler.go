package update_preferences

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/campora/PMS-SchedulerService/internal/api/handlers"
	"github.com/campora/PMS-SchedulerService/internal/api/middleware"
	"github.com/campora/PMS-SchedulerService/internal/domain"
	"github.com/campora/PMS-SchedulerService/internal/service/preferences"
)

const (
	msgInvalidUserID      = "некорректный ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные настроек"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
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

// UpdatePreferencesRequest HTTP request model
type UpdatePreferencesRequest struct {
	Relationship       *string  `json:"relationship,omitempty"` // employee | provider
	SkillFilterEnabled bool     `json:"skillFilterEnabled"`
	VisibleSlotCodes   []string `json:"visibleSlotCodes,omitempty"`
	DurationDays       int      `json:"durationDays,omitempty"`
}

// PreferencesResponse HTTP response model
type PreferencesResponse struct {
	UserID             int64    `json:"userId"`
	Relationship       *string  `json:"relationship,omitempty"`
	SkillFilterEnabled bool     `json:"skillFilterEnabled"`
	VisibleSlotCodes   []string `json:"visibleSlotCodes,omitempty"`
	DurationDays       int      `json:"durationDays"`
}

// ToDomain конвертирует HTTP запрос в доменную модель
func (r *UpdatePreferencesRequest) ToDomain(userID int64) *domain.DisplayPreferences {
	prefs := &domain.DisplayPreferences{
		UserID:             userID,
		SkillFilterEnabled: r.SkillFilterEnabled,
		VisibleSlotCodes:   r.VisibleSlotCodes,
		DurationDays:       r.DurationDays,
	}
	if r.Relationship != nil {
		relationship := domain.Relationship(*r.Relationship)
		prefs.Relationship = &relationship
	}
	return prefs
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

// Handle PUT /api/v1/users/{userId}/preferences
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, err := strconv.ParseInt(vars["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /users/{id}/preferences - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	// Настройки доступны только их владельцу
	authUserID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /users/{id}/preferences - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	if authUserID != userID {
		h.logger.Warn("PUT /users/{id}/preferences - Access denied: user_id=%d, auth_user_id=%d", userID, authUserID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	var req UpdatePreferencesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /users/{id}/preferences - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	saved, err := h.service.Save(r.Context(), req.ToDomain(userID))
	if err != nil {
		switch {
		case errors.Is(err, preferences.ErrInvalidInput):
			h.logger.Warn("PUT /users/{id}/preferences - Invalid data: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /users/{id}/preferences - Failed to save: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /users/{id}/preferences - Preferences saved: user_id=%d", userID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(saved))
}
