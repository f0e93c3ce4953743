package allocate_units

import (
	"github.com/campora/PMS-SchedulerService/internal/domain"
)

// Request модель запроса на распределение группы по средствам размещения
type Request struct {
	GroupID        int64
	ProductModelID int64

	// GroupSize полный размер группы; AlreadyAssignedQty уже
	// распределенная часть
	GroupSize          int
	AlreadyAssignedQty int

	// UnitIDs выбранные пользователем средства размещения
	UnitIDs []int64
}

// AssignmentFailure одно несозданное назначение
type AssignmentFailure struct {
	UnitID  int64
	Qty     int
	Message string
}

// Response модель ответа с результатом распределения
type Response struct {
	GroupID int64

	// Assigned успешно созданные назначения; Failed назначения,
	// отклоненные BookingService
	Assigned []domain.UnitAllocation
	Failed   []AssignmentFailure

	// TotalQty суммарное количество по созданным назначениям
	TotalQty int
}
