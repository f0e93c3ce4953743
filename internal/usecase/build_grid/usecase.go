package build_grid

import (
	"context"
	"fmt"

	"github.com/campora/PMS-SchedulerService/internal/domain"
	"github.com/campora/PMS-SchedulerService/internal/integrations/bookingservice"
	"github.com/campora/PMS-SchedulerService/internal/service/planner"
)

// UseCase use case построения сетки планирования: загружает агентов,
// слоты и активности, строит календарную ось и CellIndex и
// устанавливает их в сессию
type UseCase struct {
	bookingClient   BookingServiceClient
	directoryClient DirectoryServiceClient
	preferences     PreferencesService
	sessions        SessionRegistry
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingClient BookingServiceClient,
	directoryClient DirectoryServiceClient,
	preferences PreferencesService,
	sessions SessionRegistry,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingClient:   bookingClient,
		directoryClient: directoryClient,
		preferences:     preferences,
		sessions:        sessions,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute строит сетку. Если req.SessionID задан, содержимое
// существующей сессии полностью заменяется (с учетом дебаунса);
// иначе создается новая сессия
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BuildGrid: user=%d, session=%v, dateFrom=%s, days=%d",
		req.UserID, req.SessionID, req.DateFrom.Format(domain.DateFormat), req.DurationInDays)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BuildGrid: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем или создаем сессию
	var session *planner.Session
	if req.SessionID != nil {
		existing, err := uc.sessions.Get(*req.SessionID)
		if err != nil {
			uc.logger.Warn("BuildGrid: session id=%s not found", *req.SessionID)
			return nil, ErrSessionNotFound
		}
		// Обновление после смены фильтров дебаунсится
		if err := existing.AllowRefresh(uc.sessions.RefreshDebounce()); err != nil {
			uc.logger.Info("BuildGrid: refresh debounced for session id=%s", *req.SessionID)
			return nil, ErrRefreshDebounced
		}
		session = existing
	} else {
		session = uc.sessions.CreateSession(req.UserID)
	}

	// 3. Применяем сохраненные настройки к незаполненным фильтрам
	applied, err := uc.resolveFilters(ctx, req)
	if err != nil {
		return nil, err
	}

	// 4. Загружаем агентов из справочника и фильтруем по отношению
	agents, err := uc.directoryClient.ListAgents(ctx)
	if err != nil {
		uc.logger.Error("BuildGrid: failed to list agents: %v", err)
		return nil, fmt.Errorf("%w: failed to list agents: %v", ErrInternal, err)
	}
	visibleAgents := filterAgents(agents, applied)

	// 5. Загружаем справочник слотов и фильтруем по видимым колонкам
	slots, err := uc.bookingClient.ListTimeSlots(ctx)
	if err != nil {
		uc.logger.Error("BuildGrid: failed to list time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list time slots: %v", ErrInternal, err)
	}
	visibleSlots := filterSlots(slots, applied)

	// 6. Строим календарную ось
	dateFrom := req.DateFrom
	if dateFrom.IsZero() {
		dateFrom = uc.timeProvider.Now()
	}
	calendar := domain.BuildCalendar(dateFrom, applied.DurationDays)

	// 7. Загружаем активности за окно отображения
	agentIDs := make([]int64, 0, len(visibleAgents))
	for _, agent := range visibleAgents {
		agentIDs = append(agentIDs, agent.ID)
	}

	activities, err := uc.bookingClient.ListActivities(ctx, &bookingservice.ListActivitiesRequest{
		DateFrom:       calendar.DateFrom,
		DurationInDays: applied.DurationDays,
		AgentIDs:       agentIDs,
	})
	if err != nil {
		uc.logger.Error("BuildGrid: failed to list activities: %v", err)
		return nil, fmt.Errorf("%w: failed to list activities: %v", ErrInternal, err)
	}

	// 8. Строим индекс ячеек и устанавливаем сетку в сессию
	index := domain.BuildCellIndex(activities)
	session.ReplaceGrid(calendar, index, visibleAgents, visibleSlots)

	uc.logger.Info("BuildGrid: session id=%s, %d agents, %d activities, %d cells",
		session.ID, len(visibleAgents), len(activities), index.Len())

	return &Response{
		SessionID: session.ID,
		Grid:      session.Grid(),
	}, nil
}

// resolveFilters накладывает явные фильтры запроса поверх сохраненных
// настроек и возвращает действующие настройки отображения
func (uc *UseCase) resolveFilters(ctx context.Context, req *Request) (*domain.DisplayPreferences, error) {
	prefs, err := uc.preferences.GetForUser(ctx, req.UserID)
	if err != nil {
		uc.logger.Error("BuildGrid: failed to get preferences for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get preferences: %v", ErrInternal, err)
	}

	applied := *prefs
	if req.Relationship != nil {
		rel := domain.Relationship(*req.Relationship)
		applied.Relationship = &rel
	}
	if len(req.VisibleSlotCodes) > 0 {
		applied.VisibleSlotCodes = req.VisibleSlotCodes
	}
	if req.DurationInDays > 0 {
		applied.DurationDays = req.DurationInDays
	}
	if applied.DurationDays <= 0 {
		applied.DurationDays = domain.DefaultDurationDays
	}

	return &applied, nil
}

// filterAgents оставляет агентов, проходящих фильтр отношения
func filterAgents(agents []domain.Agent, prefs *domain.DisplayPreferences) []domain.Agent {
	filtered := make([]domain.Agent, 0, len(agents))
	for _, agent := range agents {
		if prefs.ShowsRelationship(agent.Relationship) {
			filtered = append(filtered, agent)
		}
	}
	return filtered
}

// filterSlots оставляет видимые колонки слотов
func filterSlots(slots []domain.TimeSlot, prefs *domain.DisplayPreferences) []domain.TimeSlot {
	filtered := make([]domain.TimeSlot, 0, len(slots))
	for _, slot := range slots {
		if prefs.ShowsSlot(slot.Code) {
			filtered = append(filtered, slot)
		}
	}
	return filtered
}
