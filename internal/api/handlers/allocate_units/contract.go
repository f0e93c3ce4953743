package allocate_units

import (
	"context"

	allocateUnits "github.com/campora/PMS-SchedulerService/internal/usecase/allocate_units"
)

type AllocateUnitsUseCase interface {
	Execute(ctx context.Context, req *allocateUnits.Request) (*allocateUnits.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
