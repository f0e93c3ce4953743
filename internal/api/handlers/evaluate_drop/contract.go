package evaluate_drop

import (
	"github.com/google/uuid"

	"github.com/campora/PMS-SchedulerService/internal/service/planner"
)

type SessionRegistry interface {
	Get(id uuid.UUID) (*planner.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
