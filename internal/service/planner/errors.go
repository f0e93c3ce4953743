package planner

import (
	"errors"
	"fmt"

	"github.com/campora/PMS-SchedulerService/internal/domain"
)

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("planner: session not found")

	// ErrNoDragInProgress возвращается, когда операция требует активного перетаскивания
	ErrNoDragInProgress = errors.New("planner: no drag in progress")

	// ErrDragInProgress возвращается при попытке начать новое перетаскивание,
	// пока предыдущее не завершено и не отменено
	ErrDragInProgress = errors.New("planner: drag already in progress")

	// ErrOperationInFlight возвращается, пока незавершен вызов сохранения:
	// сессия удерживает блокировку на одну операцию
	ErrOperationInFlight = errors.New("planner: persistence operation in flight")

	// ErrActivityNotFound возвращается, когда активность отсутствует в сетке
	ErrActivityNotFound = errors.New("planner: activity not found in grid")

	// ErrActivityNotDraggable возвращается при попытке перетащить
	// партнерское событие: календарные маркеры не переназначаются
	ErrActivityNotDraggable = errors.New("planner: activity is not draggable")

	// ErrDayNotInWindow возвращается, когда целевая дата лежит вне
	// отображаемого календарного окна сессии
	ErrDayNotInWindow = errors.New("planner: target day outside the displayed window")

	// ErrAgentNotFound возвращается, когда целевой агент отсутствует в сессии
	ErrAgentNotFound = errors.New("planner: agent not found in session")

	// ErrTimeSlotNotFound возвращается, когда код слота неизвестен
	ErrTimeSlotNotFound = errors.New("planner: time slot not found")

	// ErrNotDroppable возвращается, когда перемещение отклонено правилами
	ErrNotDroppable = errors.New("planner: move rejected by droppability rules")

	// ErrRefreshDebounced возвращается, когда обновление сетки запрошено
	// раньше, чем истек интервал дебаунса
	ErrRefreshDebounced = errors.New("planner: refresh debounced")
)

// DropRejectedError отклонение перемещения с причиной; errors.Is
// сопоставляет его с ErrNotDroppable
type DropRejectedError struct {
	Reason domain.DropRejectReason
	Silent bool
}

func (e *DropRejectedError) Error() string {
	return fmt.Sprintf("planner: move rejected: %s", e.Reason)
}

// Is делает ошибку совместимой с errors.Is(err, ErrNotDroppable)
func (e *DropRejectedError) Is(target error) bool {
	return target == ErrNotDroppable
}
