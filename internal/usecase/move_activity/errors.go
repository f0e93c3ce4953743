package move_activity

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("move_activity: invalid input data")

	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("move_activity: session not found")

	// ErrNoDragInProgress возвращается, когда drop пришел без активного перетаскивания
	ErrNoDragInProgress = errors.New("move_activity: no drag in progress")

	// ErrOperationInFlight возвращается, пока незавершено предыдущее сохранение
	ErrOperationInFlight = errors.New("move_activity: another operation is in flight")

	// ErrNeedsEmployee возвращается, когда активность требует сотрудника
	ErrNeedsEmployee = errors.New("move_activity: activity must be assigned to an employee")

	// ErrNeedsProvider возвращается, когда активность требует провайдера
	ErrNeedsProvider = errors.New("move_activity: activity must be assigned to a provider")

	// ErrIncompatibleSlot возвращается при перемещении в другой день или слот
	ErrIncompatibleSlot = errors.New("move_activity: incompatible day or time slot")

	// ErrSkillMismatch возвращается, когда сотрудник не обладает нужной компетенцией
	ErrSkillMismatch = errors.New("move_activity: agent is not capable of the required product model")

	// ErrProviderNotEligible возвращается, когда провайдер не поставляет нужный продукт
	ErrProviderNotEligible = errors.New("move_activity: provider is not eligible for the required product model")

	// ErrRejected возвращается для «тихих» отклонений (дубликат, эксклюзивность):
	// пользовательского сообщения для них нет
	ErrRejected = errors.New("move_activity: move rejected")

	// ErrPersistFailed возвращается, когда BookingService отклонил сохранение;
	// локальное состояние при этом откатывается (кроме пути снятия назначения)
	ErrPersistFailed = errors.New("move_activity: failed to persist move")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("move_activity: internal error")
)
