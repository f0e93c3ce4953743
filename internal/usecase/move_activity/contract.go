package move_activity

import (
	"context"

	"github.com/google/uuid"

	"github.com/campora/PMS-SchedulerService/internal/integrations/bookingservice"
	"github.com/campora/PMS-SchedulerService/internal/service/planner"
)

// BookingServiceClient интерфейс клиента для BookingService
type BookingServiceClient interface {
	UpdateActivity(ctx context.Context, activityID int64, req *bookingservice.UpdateActivityRequest) error
}

// SessionRegistry интерфейс реестра сессий планирования
type SessionRegistry interface {
	Get(id uuid.UUID) (*planner.Session, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
