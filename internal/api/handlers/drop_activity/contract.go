package drop_activity

import (
	"context"

	moveActivity "github.com/campora/PMS-SchedulerService/internal/usecase/move_activity"
)

type MoveActivityUseCase interface {
	Execute(ctx context.Context, req *moveActivity.Request) (*moveActivity.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
