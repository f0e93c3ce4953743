package preferences

import (
	"context"

	"github.com/campora/PMS-SchedulerService/internal/domain"
)

// PreferencesRepository интерфейс репозитория настроек отображения
type PreferencesRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.DisplayPreferences, error)
	Upsert(ctx context.Context, prefs *domain.DisplayPreferences) (*domain.DisplayPreferences, error)
	Delete(ctx context.Context, userID int64) error
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
