package planner

import (
	"github.com/google/uuid"

	"github.com/campora/PMS-SchedulerService/internal/domain"
	"github.com/campora/PMS-SchedulerService/pkg/types"
)

// DragPhase фаза конечного автомата перетаскивания
type DragPhase string

const (
	PhaseDragging   DragPhase = "dragging"
	PhaseCommitting DragPhase = "committing"
)

// DragState состояние активного перетаскивания внутри сессии
type DragState struct {
	OperationID uuid.UUID
	ActivityID  int64
	Source      domain.CellKey
	Phase       DragPhase
}

// DropRequest запрос на завершение перетаскивания в целевую ячейку
type DropRequest struct {
	TargetAgentID  int64 // 0 = снять назначение
	TargetDateKey  string
	TargetSlotCode string
	Position       domain.DropZonePosition
}

// ActivityUpdate одно изменение активности, подлежащее сохранению.
// Незаполненные поля в PATCH не попадают
type ActivityUpdate struct {
	ActivityID   int64
	AgentID      *int64
	Unassign     bool
	ScheduleFrom *types.TimeOfDay
	ScheduleTo   *types.TimeOfDay
	ProviderIDs  *[]int64
}

// DropPlan результат оптимистичного применения перемещения: снимок
// индекса до мутации и список изменений для сохранения
type DropPlan struct {
	OperationID uuid.UUID
	Snapshot    domain.CellIndex
	Updates     []ActivityUpdate

	// Unassign выставлен для перемещения в корзину "не назначено";
	// для этого пути откат при ошибке сохранения не выполняется
	Unassign bool

	Source domain.CellKey
	Target domain.CellKey
}

// TargetEvaluation результат проверки ячейки при наведении (drag-over)
type TargetEvaluation struct {
	Droppable bool
	Reason    domain.DropRejectReason
	Silent    bool

	// Position подсказка зоны вставки; center для эксклюзивных активностей
	Position domain.DropZonePosition
}
