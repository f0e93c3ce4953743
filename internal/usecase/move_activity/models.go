package move_activity

import (
	"github.com/google/uuid"

	"github.com/campora/PMS-SchedulerService/internal/domain"
)

// Request модель запроса на завершение перетаскивания (drop)
type Request struct {
	SessionID      uuid.UUID
	TargetAgentID  int64 // 0 = снять назначение
	TargetDateKey  string
	TargetSlotCode string
	Position       domain.DropZonePosition
}

// CellState содержимое одной ячейки после перемещения
type CellState struct {
	Key        domain.CellKey
	Activities []domain.Activity
}

// Response модель ответа с результатом перемещения
type Response struct {
	OperationID uuid.UUID
	Unassigned  bool

	// Source и Target содержимое исходной и целевой ячеек после
	// подтверждения перемещения
	Source CellState
	Target CellState
}
