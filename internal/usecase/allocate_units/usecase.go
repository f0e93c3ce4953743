package allocate_units

import (
	"context"
	"errors"
	"fmt"

	"github.com/campora/PMS-SchedulerService/internal/domain"
	"github.com/campora/PMS-SchedulerService/internal/integrations/bookingservice"
)

// UseCase use case распределения группы по средствам размещения:
// вычисляет количество на каждое выбранное средство и создает
// назначения в BookingService
type UseCase struct {
	bookingClient BookingServiceClient
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingClient BookingServiceClient, logger Logger) *UseCase {
	return &UseCase{
		bookingClient: bookingClient,
		logger:        logger,
	}
}

// Execute распределяет оставшуюся часть группы по выбранным средствам
// размещения. Назначения создаются независимо: отказ по одному средству
// не отменяет остальные
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AllocateUnits: group=%d, productModel=%d, groupSize=%d, assigned=%d, units=%d",
		req.GroupID, req.ProductModelID, req.GroupSize, req.AlreadyAssignedQty, len(req.UnitIDs))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AllocateUnits: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем доступные для группы средства размещения
	available, err := uc.bookingClient.ListRentalUnits(ctx, req.GroupID, req.ProductModelID)
	if err != nil {
		if errors.Is(err, bookingservice.ErrGroupNotFound) {
			return nil, ErrGroupNotFound
		}
		uc.logger.Error("AllocateUnits: failed to list rental units: %v", err)
		return nil, fmt.Errorf("%w: failed to list rental units: %v", ErrInternal, err)
	}

	// 3. Оставляем только выбранные пользователем средства, сохраняя
	// порядок выбора
	units := selectUnits(available, req.UnitIDs)
	if len(units) == 0 {
		uc.logger.Warn("AllocateUnits: none of %d selected units available for group=%d",
			len(req.UnitIDs), req.GroupID)
		return nil, ErrNoUnitsSelected
	}

	// 4. Загружаем продукт для учета его вместимости
	model, err := uc.bookingClient.GetProductModel(ctx, req.ProductModelID)
	if err != nil {
		if errors.Is(err, bookingservice.ErrProductModelNotFound) {
			return nil, ErrProductModelNotFound
		}
		uc.logger.Error("AllocateUnits: failed to get product model: %v", err)
		return nil, fmt.Errorf("%w: failed to get product model: %v", ErrInternal, err)
	}

	// 5. Вычисляем количество на каждое средство
	remaining := req.GroupSize - req.AlreadyAssignedQty
	allocations := domain.AllocateQuantities(remaining, units, model)

	// 6. Создаем назначения. Частичные отказы попадают в Response.Failed
	resp := &Response{GroupID: req.GroupID}
	for _, allocation := range allocations {
		err := uc.bookingClient.CreateRentalUnitAssignment(ctx, &bookingservice.CreateRentalUnitAssignmentRequest{
			RentalUnitID: allocation.UnitID,
			GroupID:      req.GroupID,
			Qty:          allocation.Qty,
		})
		if err != nil {
			uc.logger.Warn("AllocateUnits: assignment failed: group=%d, unit=%d, qty=%d: %v",
				req.GroupID, allocation.UnitID, allocation.Qty, err)
			resp.Failed = append(resp.Failed, AssignmentFailure{
				UnitID:  allocation.UnitID,
				Qty:     allocation.Qty,
				Message: err.Error(),
			})
			continue
		}
		resp.Assigned = append(resp.Assigned, allocation)
		resp.TotalQty += allocation.Qty
	}

	if len(resp.Assigned) == 0 {
		return nil, ErrAllAssignmentsFailed
	}

	uc.logger.Info("AllocateUnits: group=%d, created=%d, failed=%d, totalQty=%d",
		req.GroupID, len(resp.Assigned), len(resp.Failed), resp.TotalQty)
	return resp, nil
}

// selectUnits возвращает доступные средства в порядке, заданном выбором
// пользователя. Неизвестные идентификаторы пропускаются
func selectUnits(available []domain.RentalUnit, unitIDs []int64) []domain.RentalUnit {
	byID := make(map[int64]domain.RentalUnit, len(available))
	for _, unit := range available {
		byID[unit.ID] = unit
	}

	units := make([]domain.RentalUnit, 0, len(unitIDs))
	for _, id := range unitIDs {
		if unit, ok := byID[id]; ok {
			units = append(units, unit)
		}
	}
	return units
}
