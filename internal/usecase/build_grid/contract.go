package build_grid

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/campora/PMS-SchedulerService/internal/domain"
	"github.com/campora/PMS-SchedulerService/internal/integrations/bookingservice"
	"github.com/campora/PMS-SchedulerService/internal/service/planner"
)

// BookingServiceClient интерфейс клиента для BookingService
type BookingServiceClient interface {
	ListActivities(ctx context.Context, req *bookingservice.ListActivitiesRequest) ([]domain.Activity, error)
	ListTimeSlots(ctx context.Context) ([]domain.TimeSlot, error)
}

// DirectoryServiceClient интерфейс клиента для DirectoryService
type DirectoryServiceClient interface {
	ListAgents(ctx context.Context) ([]domain.Agent, error)
}

// PreferencesService интерфейс сервиса настроек отображения
type PreferencesService interface {
	GetForUser(ctx context.Context, userID int64) (*domain.DisplayPreferences, error)
}

// SessionRegistry интерфейс реестра сессий планирования
type SessionRegistry interface {
	CreateSession(userID int64) *planner.Session
	Get(id uuid.UUID) (*planner.Session, error)
	RefreshDebounce() time.Duration
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
