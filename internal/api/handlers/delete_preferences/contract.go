package delete_preferences

import "context"

// PreferencesService интерфейс сервиса настроек отображения
type PreferencesService interface {
	Reset(ctx context.Context, userID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
