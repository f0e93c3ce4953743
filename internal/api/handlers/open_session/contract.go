package open_session

import (
	"context"

	buildGrid "github.com/campora/PMS-SchedulerService/internal/usecase/build_grid"
)

type BuildGridUseCase interface {
	Execute(ctx context.Context, req *buildGrid.Request) (*buildGrid.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
