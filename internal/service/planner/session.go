package planner

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/campora/PMS-SchedulerService/internal/domain"
)

// Session сессия интерактивного планирования одного пользователя.
// Держит снимок сетки (календарь + CellIndex), справочники агентов и
// слотов и состояние перетаскивания. Все методы потокобезопасны.
type Session struct {
	ID     uuid.UUID
	UserID int64

	mu         sync.Mutex
	calendar   domain.Calendar
	index      domain.CellIndex
	agents     map[int64]domain.Agent
	agentOrder []int64
	timeSlots  map[string]domain.TimeSlot
	rules      domain.DropRules

	drag     *DragState
	inFlight bool

	lastRefresh time.Time
	lastTouched time.Time
}

// GridSnapshot текущее состояние сетки для рендеринга
type GridSnapshot struct {
	Calendar  domain.Calendar
	Index     domain.CellIndex
	Agents    []domain.Agent
	TimeSlots []domain.TimeSlot
}

func newSession(userID int64, rules domain.DropRules) *Session {
	now := time.Now()
	return &Session{
		ID:          uuid.New(),
		UserID:      userID,
		agents:      map[int64]domain.Agent{},
		timeSlots:   map[string]domain.TimeSlot{},
		rules:       rules,
		lastRefresh: now,
		lastTouched: now,
	}
}

// Grid возвращает снимок сетки. Индекс иммутабелен, поэтому снимок
// остается валидным независимо от последующих мутаций сессии
func (s *Session) Grid() GridSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	agents := make([]domain.Agent, 0, len(s.agentOrder))
	for _, id := range s.agentOrder {
		agents = append(agents, s.agents[id])
	}

	slots := make([]domain.TimeSlot, 0, len(s.timeSlots))
	for _, code := range s.slotOrder() {
		slots = append(slots, s.timeSlots[code])
	}

	return GridSnapshot{
		Calendar:  s.calendar,
		Index:     s.index,
		Agents:    agents,
		TimeSlots: slots,
	}
}

// ReplaceGrid полностью заменяет содержимое сетки (обновление после
// смены фильтров). Активное перетаскивание и его оптимистичные
// изменения при этом отбрасываются
func (s *Session) ReplaceGrid(calendar domain.Calendar, index domain.CellIndex, agents []domain.Agent, slots []domain.TimeSlot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calendar = calendar
	s.index = index

	s.agents = make(map[int64]domain.Agent, len(agents))
	s.agentOrder = make([]int64, 0, len(agents))
	for _, agent := range agents {
		s.agents[agent.ID] = agent
		s.agentOrder = append(s.agentOrder, agent.ID)
	}

	s.timeSlots = make(map[string]domain.TimeSlot, len(slots))
	for _, slot := range slots {
		s.timeSlots[slot.Code] = slot
	}

	s.drag = nil
	s.inFlight = false
	s.lastRefresh = time.Now()
	s.lastTouched = s.lastRefresh
}

// AllowRefresh реализует дебаунс обновлений: возвращает ошибку, если с
// предыдущего обновления прошло меньше отведенного интервала
func (s *Session) AllowRefresh(debounce time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if time.Since(s.lastRefresh) < debounce {
		return ErrRefreshDebounced
	}
	return nil
}

// BeginDrag начинает перетаскивание активности: Idle → Dragging.
// Отклоняется, пока незавершен вызов сохранения или другой drag
func (s *Session) BeginDrag(activityID int64) (*DragState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastTouched = time.Now()

	if s.inFlight {
		return nil, ErrOperationInFlight
	}
	if s.drag != nil {
		return nil, ErrDragInProgress
	}

	activity, source, ok := s.index.FindActivity(activityID)
	if !ok {
		return nil, ErrActivityNotFound
	}
	// Партнерские события занимают ячейки, но не перетаскиваются —
	// в том числе в корзину "не назначено"
	if activity.IsPartnerEvent {
		return nil, ErrActivityNotDraggable
	}

	s.drag = &DragState{
		OperationID: uuid.New(),
		ActivityID:  activityID,
		Source:      source,
		Phase:       PhaseDragging,
	}
	state := *s.drag
	return &state, nil
}

// CancelDrag отменяет перетаскивание без каких-либо вызовов сохранения:
// оптимистичных изменений на этой фазе еще нет, достаточно сбросить
// состояние
func (s *Session) CancelDrag() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastTouched = time.Now()

	if s.inFlight {
		return ErrOperationInFlight
	}
	if s.drag == nil {
		return ErrNoDragInProgress
	}

	s.drag = nil
	return nil
}

// EvaluateTarget проверяет ячейку при наведении: droppability-вердикт
// плюс подсказка зоны вставки. Состояние сессии не меняется
func (s *Session) EvaluateTarget(agentID int64, dateKey, slotCode string, requested domain.DropZonePosition) (*TargetEvaluation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastTouched = time.Now()

	if s.drag == nil {
		return nil, ErrNoDragInProgress
	}

	activity, _, ok := s.index.FindActivity(s.drag.ActivityID)
	if !ok {
		return nil, ErrActivityNotFound
	}

	if !s.calendar.ContainsDay(dateKey) {
		return nil, ErrDayNotInWindow
	}

	// Корзина "не назначено" принимает любую активность
	if agentID == domain.UnassignedAgentID {
		return &TargetEvaluation{
			Droppable: true,
			Position:  domain.DropZoneCenter,
		}, nil
	}

	target, ok := s.agents[agentID]
	if !ok {
		return nil, ErrAgentNotFound
	}

	targetKey := domain.CellKey{AgentID: agentID, DateKey: dateKey, SlotCode: slotCode}
	verdict := domain.EvaluateDrop(activity, target, dateKey, slotCode, s.index.Cell(targetKey), s.rules)

	return &TargetEvaluation{
		Droppable: verdict.Allowed,
		Reason:    verdict.Reason,
		Silent:    verdict.Silent,
		Position:  domain.EffectiveDropZone(activity, requested),
	}, nil
}

// CompleteDrop завершает операцию после успешного сохранения:
// Committing → Idle, оптимистичный индекс становится подтвержденным
func (s *Session) CompleteDrop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.drag = nil
	s.inFlight = false
	s.lastTouched = time.Now()
}

// RollbackDrop восстанавливает снимок индекса до перемещения. Благодаря
// иммутабельности индекса откат — это подмена ссылки
func (s *Session) RollbackDrop(snapshot domain.CellIndex) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.index = snapshot
	s.drag = nil
	s.inFlight = false
	s.lastTouched = time.Now()
}

// Index возвращает текущий индекс
func (s *Session) Index() domain.CellIndex {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}

// touch продлевает время жизни сессии
func (s *Session) touch() {
	s.mu.Lock()
	s.lastTouched = time.Now()
	s.mu.Unlock()
}

// expired возвращает true, если сессия не использовалась дольше ttl
func (s *Session) expired(ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return time.Since(s.lastTouched) > ttl
}

// slotOrder возвращает коды слотов в порядке начала
func (s *Session) slotOrder() []string {
	codes := make([]string, 0, len(s.timeSlots))
	for code := range s.timeSlots {
		codes = append(codes, code)
	}
	for i := 0; i < len(codes); i++ {
		for j := i + 1; j < len(codes); j++ {
			a, b := s.timeSlots[codes[i]], s.timeSlots[codes[j]]
			if b.ScheduleFrom.IsBefore(a.ScheduleFrom) {
				codes[i], codes[j] = codes[j], codes[i]
			}
		}
	}
	return codes
}
