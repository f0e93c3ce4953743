package planner

import (
	"fmt"

	"github.com/campora/PMS-SchedulerService/internal/domain"
	"github.com/campora/PMS-SchedulerService/pkg/ptr"
)

// PrepareDrop применяет перемещение оптимистично: проверяет droppability,
// убирает активность из исходной ячейки, вставляет в целевую, пересчитывает
// под-интервалы расписания и устанавливает новый индекс ДО каких-либо
// сетевых вызовов. Возвращает план сохранения со снимком индекса до
// мутации. До вызова CompleteDrop/RollbackDrop сессия удерживает
// блокировку на одну операцию: новые перетаскивания отклоняются
func (s *Session) PrepareDrop(req *DropRequest) (*DropPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inFlight {
		return nil, ErrOperationInFlight
	}
	if s.drag == nil || s.drag.Phase != PhaseDragging {
		return nil, ErrNoDragInProgress
	}

	activity, source, ok := s.index.FindActivity(s.drag.ActivityID)
	if !ok {
		return nil, ErrActivityNotFound
	}

	if !s.calendar.ContainsDay(req.TargetDateKey) {
		return nil, ErrDayNotInWindow
	}

	snapshot := s.index
	targetKey := domain.CellKey{
		AgentID:  req.TargetAgentID,
		DateKey:  req.TargetDateKey,
		SlotCode: req.TargetSlotCode,
	}

	var plan *DropPlan
	var err error
	if req.TargetAgentID == domain.UnassignedAgentID {
		plan, err = s.prepareUnassign(activity, source, targetKey)
	} else {
		plan, err = s.prepareAssign(activity, source, targetKey, req.Position)
	}
	if err != nil {
		return nil, err
	}

	plan.OperationID = s.drag.OperationID
	plan.Snapshot = snapshot
	plan.Source = source
	plan.Target = targetKey

	s.drag.Phase = PhaseCommitting
	s.inFlight = true
	return plan, nil
}

// prepareUnassign перемещает активность в корзину "не назначено".
// Сохраняется только agentId=null; границы расписания не трогаем
func (s *Session) prepareUnassign(activity domain.Activity, source, target domain.CellKey) (*DropPlan, error) {
	moved := activity
	moved.AgentID = domain.UnassignedAgentID

	next := s.index.WithActivityRemoved(source, activity.ID)
	next = next.WithActivityInserted(target, moved, domain.DropZoneCenter)
	s.index = next

	return &DropPlan{
		Updates: []ActivityUpdate{{
			ActivityID: activity.ID,
			Unassign:   true,
		}},
		Unassign: true,
	}, nil
}

// prepareAssign перемещает активность к сотруднику или провайдеру
func (s *Session) prepareAssign(activity domain.Activity, source, target domain.CellKey, requested domain.DropZonePosition) (*DropPlan, error) {
	agent, ok := s.agents[target.AgentID]
	if !ok {
		return nil, ErrAgentNotFound
	}

	targetCell := s.index.Cell(target)
	verdict := domain.EvaluateDrop(activity, agent, target.DateKey, target.SlotCode, targetCell, s.rules)
	if !verdict.Allowed {
		return nil, &DropRejectedError{Reason: verdict.Reason, Silent: verdict.Silent}
	}

	position := domain.EffectiveDropZone(activity, requested)

	if agent.IsProvider() {
		return s.prepareProviderAssign(activity, source, target, position)
	}
	return s.prepareEmployeeAssign(activity, source, target, position)
}

// prepareEmployeeAssign назначает активность сотруднику, при
// необходимости деля слот между соседями по ячейке
func (s *Session) prepareEmployeeAssign(activity domain.Activity, source, target domain.CellKey, position domain.DropZonePosition) (*DropPlan, error) {
	slot, ok := s.timeSlots[target.SlotCode]
	if !ok {
		return nil, ErrTimeSlotNotFound
	}

	moved := activity
	moved.AgentID = target.AgentID

	next := s.index.WithActivityRemoved(source, activity.ID)
	next = next.WithActivityInserted(target, moved, position)
	occupants := next.Cell(target)

	updates := make([]ActivityUpdate, 0, len(occupants))

	// Под-интервалы пересчитываются только для активностей; партнерские
	// события занимают ячейку, но расписание не несут
	splittable := make([]int, 0, len(occupants))
	for i := range occupants {
		if !occupants[i].IsPartnerEvent {
			splittable = append(splittable, i)
		}
	}

	if len(splittable) == 1 && position == domain.DropZoneCenter {
		// Единственная активность в ячейке получает полные границы слота
		i := splittable[0]
		occupants[i].ScheduleFrom = slot.ScheduleFrom
		occupants[i].ScheduleTo = slot.ScheduleTo
		updates = append(updates, ActivityUpdate{
			ActivityID:   occupants[i].ID,
			AgentID:      ptr.Ptr(target.AgentID),
			ScheduleFrom: ptr.Ptr(slot.ScheduleFrom),
			ScheduleTo:   ptr.Ptr(slot.ScheduleTo),
		})
	} else {
		windows, err := domain.SplitWindow(slot.ScheduleFrom, slot.ScheduleTo, len(splittable))
		if err != nil {
			return nil, err
		}
		// Пересчитанные под-интервалы обязаны лежать в границах слота
		for _, window := range windows {
			if !slot.Contains(window.From, window.To) {
				return nil, fmt.Errorf("%w: sub-interval %s-%s outside slot %s",
					domain.ErrInvalidWindow, window.From, window.To, target.SlotCode)
			}
		}
		for n, i := range splittable {
			changed := occupants[i].ScheduleFrom != windows[n].From || occupants[i].ScheduleTo != windows[n].To
			occupants[i].ScheduleFrom = windows[n].From
			occupants[i].ScheduleTo = windows[n].To

			if occupants[i].ID == activity.ID {
				updates = append(updates, ActivityUpdate{
					ActivityID:   activity.ID,
					AgentID:      ptr.Ptr(target.AgentID),
					ScheduleFrom: ptr.Ptr(windows[n].From),
					ScheduleTo:   ptr.Ptr(windows[n].To),
				})
				continue
			}
			if changed {
				updates = append(updates, ActivityUpdate{
					ActivityID:   occupants[i].ID,
					ScheduleFrom: ptr.Ptr(windows[n].From),
					ScheduleTo:   ptr.Ptr(windows[n].To),
				})
			}
		}
	}

	s.index = next.WithCell(target, occupants)
	return &DropPlan{Updates: updates}, nil
}

// prepareProviderAssign назначает активность провайдеру: переписывается
// набор providersIds (прежний провайдер убирается, новый добавляется,
// уже привязанный провайдер не дублируется), границы расписания никогда
// не меняются
func (s *Session) prepareProviderAssign(activity domain.Activity, source, target domain.CellKey, position domain.DropZonePosition) (*DropPlan, error) {
	moved := activity
	moved.AgentID = target.AgentID
	moved.ProviderIDs = make([]int64, 0, len(activity.ProviderIDs)+1)
	for _, id := range activity.ProviderIDs {
		if id != source.AgentID {
			moved.ProviderIDs = append(moved.ProviderIDs, id)
		}
	}
	if !moved.HasProvider(target.AgentID) {
		moved.ProviderIDs = append(moved.ProviderIDs, target.AgentID)
	}

	next := s.index.WithActivityRemoved(source, activity.ID)
	s.index = next.WithActivityInserted(target, moved, position)

	return &DropPlan{
		Updates: []ActivityUpdate{{
			ActivityID:  activity.ID,
			ProviderIDs: ptr.Ptr(moved.ProviderIDs),
		}},
	}, nil
}
