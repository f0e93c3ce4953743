package get_preferences

import (
	"context"

	"github.com/campora/PMS-SchedulerService/internal/domain"
)

type PreferencesService interface {
	GetForUser(ctx context.Context, userID int64) (*domain.DisplayPreferences, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
