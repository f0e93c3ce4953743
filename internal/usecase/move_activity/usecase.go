package move_activity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/campora/PMS-SchedulerService/internal/domain"
	"github.com/campora/PMS-SchedulerService/internal/integrations/bookingservice"
	"github.com/campora/PMS-SchedulerService/internal/service/planner"
)

// UseCase use case завершения перетаскивания: оптимистично применяет
// перемещение в сессии, сохраняет изменения в BookingService и
// откатывает снимок сетки при ошибке сохранения
type UseCase struct {
	bookingClient  BookingServiceClient
	sessions       SessionRegistry
	persistTimeout time.Duration
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingClient BookingServiceClient,
	sessions SessionRegistry,
	persistTimeout time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingClient:  bookingClient,
		sessions:       sessions,
		persistTimeout: persistTimeout,
		logger:         logger,
	}
}

// Execute выполняет drop перетаскиваемой активности в целевую ячейку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("MoveActivity: session=%s, targetAgent=%d, date=%s, slot=%s, position=%s",
		req.SessionID, req.TargetAgentID, req.TargetDateKey, req.TargetSlotCode, req.Position)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("MoveActivity: validation failed: %v", err)
		return nil, err
	}

	// 2. Ищем сессию
	session, err := uc.sessions.Get(req.SessionID)
	if err != nil {
		uc.logger.Warn("MoveActivity: session id=%s not found", req.SessionID)
		return nil, ErrSessionNotFound
	}

	// 3. Оптимистично применяем перемещение к сетке. До завершения
	// сохранения сессия отклоняет новые операции
	plan, err := session.PrepareDrop(&planner.DropRequest{
		TargetAgentID:  req.TargetAgentID,
		TargetDateKey:  req.TargetDateKey,
		TargetSlotCode: req.TargetSlotCode,
		Position:       req.Position,
	})
	if err != nil {
		return nil, uc.mapPrepareError(req, err)
	}

	// 4. Сохраняем каждое изменение в BookingService
	if err := uc.persist(ctx, plan); err != nil {
		if plan.Unassign {
			// Путь снятия назначения не откатывается: agentId=null уже
			// мог примениться на стороне BookingService, и локальный
			// откат разошелся бы с ним. Расхождение устранит refresh
			uc.logger.Warn("MoveActivity: persist failed on unassign path, keeping local state: op=%s: %v",
				plan.OperationID, err)
			session.CompleteDrop()
			return nil, ErrPersistFailed
		}

		uc.logger.Error("MoveActivity: persist failed, rolling back: op=%s: %v", plan.OperationID, err)
		session.RollbackDrop(plan.Snapshot)
		return nil, ErrPersistFailed
	}

	// 5. Подтверждаем операцию: оптимистичный индекс становится текущим
	session.CompleteDrop()
	uc.logger.Info("MoveActivity: committed op=%s, updates=%d", plan.OperationID, len(plan.Updates))

	index := session.Index()
	return &Response{
		OperationID: plan.OperationID,
		Unassigned:  plan.Unassign,
		Source:      CellState{Key: plan.Source, Activities: index.Cell(plan.Source)},
		Target:      CellState{Key: plan.Target, Activities: index.Cell(plan.Target)},
	}, nil
}

// persist последовательно отправляет изменения плана в BookingService.
// Первая ошибка прерывает сохранение
func (uc *UseCase) persist(ctx context.Context, plan *planner.DropPlan) error {
	for _, update := range plan.Updates {
		callCtx, cancel := context.WithTimeout(ctx, uc.persistTimeout)
		err := uc.bookingClient.UpdateActivity(callCtx, update.ActivityID, &bookingservice.UpdateActivityRequest{
			AgentID:       update.AgentID,
			UnassignAgent: update.Unassign,
			ScheduleFrom:  update.ScheduleFrom,
			ScheduleTo:    update.ScheduleTo,
			ProvidersIDs:  update.ProviderIDs,
		})
		cancel()
		if err != nil {
			return err
		}
	}
	return nil
}

// mapPrepareError транслирует ошибки сессии в ошибки usecase
func (uc *UseCase) mapPrepareError(req *Request, err error) error {
	var rejected *planner.DropRejectedError
	if errors.As(err, &rejected) {
		uc.logger.Info("MoveActivity: rejected: session=%s, reason=%s, silent=%t",
			req.SessionID, rejected.Reason, rejected.Silent)
		return uc.mapRejectReason(rejected)
	}

	switch {
	case errors.Is(err, planner.ErrOperationInFlight):
		return ErrOperationInFlight
	case errors.Is(err, planner.ErrNoDragInProgress):
		return ErrNoDragInProgress
	case errors.Is(err, planner.ErrDayNotInWindow):
		uc.logger.Warn("MoveActivity: target day outside window: session=%s, date=%s",
			req.SessionID, req.TargetDateKey)
		return fmt.Errorf("%w: target day outside the displayed window", ErrInvalidInput)
	case errors.Is(err, planner.ErrActivityNotFound),
		errors.Is(err, planner.ErrAgentNotFound),
		errors.Is(err, planner.ErrTimeSlotNotFound):
		uc.logger.Warn("MoveActivity: target resolution failed: session=%s: %v", req.SessionID, err)
		return ErrRejected
	default:
		uc.logger.Error("MoveActivity: prepare failed: session=%s: %v", req.SessionID, err)
		return ErrInternal
	}
}

// mapRejectReason сопоставляет причину отклонения с ошибкой usecase.
// «Тихие» причины не различаются: для них нет пользовательского сообщения
func (uc *UseCase) mapRejectReason(rejected *planner.DropRejectedError) error {
	if rejected.Silent {
		return ErrRejected
	}
	switch rejected.Reason {
	case domain.ReasonNeedsEmployee:
		return ErrNeedsEmployee
	case domain.ReasonNeedsProvider:
		return ErrNeedsProvider
	case domain.ReasonIncompatibleSlot:
		return ErrIncompatibleSlot
	case domain.ReasonSkillMismatch:
		return ErrSkillMismatch
	case domain.ReasonProviderNotEligible:
		return ErrProviderNotEligible
	default:
		return ErrRejected
	}
}
