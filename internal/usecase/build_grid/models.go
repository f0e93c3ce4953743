package build_grid

import (
	"time"

	"github.com/google/uuid"

	"github.com/campora/PMS-SchedulerService/internal/service/planner"
)

// Request модель запроса на построение сетки планирования.
// Если SessionID задан, обновляется существующая сессия; иначе
// создается новая. Незаполненные фильтры берутся из сохраненных
// настроек пользователя
type Request struct {
	UserID    int64
	SessionID *uuid.UUID

	DateFrom       time.Time // нулевое значение = сегодня
	DurationInDays int       // 0 = из настроек пользователя

	Relationship     *string  // employee | provider; nil = из настроек
	VisibleSlotCodes []string // пустой список = из настроек
}

// Response модель ответа с построенной сеткой
type Response struct {
	SessionID uuid.UUID
	Grid      planner.GridSnapshot
}
