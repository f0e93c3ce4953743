package update_preferences

import (
	"context"

	"github.com/campora/PMS-SchedulerService/internal/domain"
)

type PreferencesService interface {
	Save(ctx context.Context, prefs *domain.DisplayPreferences) (*domain.DisplayPreferences, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
