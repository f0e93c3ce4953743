package drop_activity

import (
	"github.com/google/uuid"

	"github.com/campora/PMS-SchedulerService/internal/api/handlers"
	"github.com/campora/PMS-SchedulerService/internal/domain"
	moveActivity "github.com/campora/PMS-SchedulerService/internal/usecase/move_activity"
)

// DropActivityRequest HTTP request model
type DropActivityRequest struct {
	TargetAgentID  int64  `json:"targetAgentId"` // 0 = снять назначение
	TargetDateKey  string `json:"targetDateKey"` // "2026-09-05"
	TargetSlotCode string `json:"targetSlotCode"`
	Position       string `json:"position,omitempty"` // left | center | right
}

// CellStateResponse содержимое ячейки после перемещения
type CellStateResponse struct {
	AgentID    int64                   `json:"agentId"`
	DateKey    string                  `json:"dateKey"`
	SlotCode   string                  `json:"slotCode"`
	Activities []handlers.ActivityView `json:"activities"`
}

// DropActivityResponse HTTP response model
type DropActivityResponse struct {
	OperationID string            `json:"operationId"`
	Unassigned  bool              `json:"unassigned"`
	Source      CellStateResponse `json:"source"`
	Target      CellStateResponse `json:"target"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *DropActivityRequest) ToUseCaseRequest(sessionID uuid.UUID) *moveActivity.Request {
	return &moveActivity.Request{
		SessionID:      sessionID,
		TargetAgentID:  r.TargetAgentID,
		TargetDateKey:  r.TargetDateKey,
		TargetSlotCode: r.TargetSlotCode,
		Position:       domain.DropZonePosition(r.Position),
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *moveActivity.Response) *DropActivityResponse {
	return &DropActivityResponse{
		OperationID: resp.OperationID.String(),
		Unassigned:  resp.Unassigned,
		Source:      fromCellState(resp.Source),
		Target:      fromCellState(resp.Target),
	}
}

func fromCellState(state moveActivity.CellState) CellStateResponse {
	return CellStateResponse{
		AgentID:    state.Key.AgentID,
		DateKey:    state.Key.DateKey,
		SlotCode:   state.Key.SlotCode,
		Activities: handlers.FromActivities(state.Activities),
	}
}
