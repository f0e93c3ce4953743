package allocate_units

import (
	"context"

	"github.com/campora/PMS-SchedulerService/internal/domain"
	"github.com/campora/PMS-SchedulerService/internal/integrations/bookingservice"
)

// BookingServiceClient интерфейс клиента для BookingService
type BookingServiceClient interface {
	ListRentalUnits(ctx context.Context, groupID, productModelID int64) ([]domain.RentalUnit, error)
	GetProductModel(ctx context.Context, productModelID int64) (*domain.ProductModel, error)
	CreateRentalUnitAssignment(ctx context.Context, req *bookingservice.CreateRentalUnitAssignmentRequest) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
