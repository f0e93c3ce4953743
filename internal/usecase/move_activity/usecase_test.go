package move_activity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campora/PMS-SchedulerService/internal/domain"
	"github.com/campora/PMS-SchedulerService/internal/integrations/bookingservice"
	"github.com/campora/PMS-SchedulerService/internal/service/planner"
	"github.com/campora/PMS-SchedulerService/pkg/types"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type recordedUpdate struct {
	ActivityID int64
	Request    bookingservice.UpdateActivityRequest
}

// mockBookingClient записывает вызовы UpdateActivity и позволяет
// сымитировать отказ персистенса
type mockBookingClient struct {
	updates []recordedUpdate
	failOn  map[int64]error
}

func (m *mockBookingClient) UpdateActivity(ctx context.Context, activityID int64, req *bookingservice.UpdateActivityRequest) error {
	if err, ok := m.failOn[activityID]; ok {
		return err
	}
	m.updates = append(m.updates, recordedUpdate{ActivityID: activityID, Request: *req})
	return nil
}

var testDate = time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)

func gridActivity(id, agentID int64) domain.Activity {
	return domain.Activity{
		ID:               id,
		Name:             "activity",
		ActivityDate:     testDate,
		TimeSlotCode:     "AM",
		ScheduleFrom:     types.NewTimeOfDay(8, 0, 0),
		ScheduleTo:       types.NewTimeOfDay(12, 0, 0),
		HasStaffRequired: true,
		AgentID:          agentID,
	}
}

func newTestPlanner(t *testing.T, activities ...domain.Activity) (*planner.Planner, *planner.Session) {
	t.Helper()

	registry := planner.NewPlanner(domain.DropRules{}, time.Hour, time.Millisecond*100, noopLogger{})
	session := registry.CreateSession(1)
	session.ReplaceGrid(
		domain.BuildCalendar(testDate, 7),
		domain.BuildCellIndex(activities),
		[]domain.Agent{
			{ID: 10, Name: "Anna", Relationship: domain.RelationshipEmployee},
			{ID: 20, Name: "Boris", Relationship: domain.RelationshipEmployee},
		},
		[]domain.TimeSlot{{
			Code:         "AM",
			Name:         "Morning",
			ScheduleFrom: types.NewTimeOfDay(8, 0, 0),
			ScheduleTo:   types.NewTimeOfDay(12, 0, 0),
		}},
	)
	return registry, session
}

func dropRequest(sessionID uuid.UUID, targetAgentID int64) *Request {
	return &Request{
		SessionID:      sessionID,
		TargetAgentID:  targetAgentID,
		TargetDateKey:  "2026-09-05",
		TargetSlotCode: "AM",
		Position:       domain.DropZoneCenter,
	}
}

func TestExecute_CommitsMove(t *testing.T) {
	registry, session := newTestPlanner(t, gridActivity(1, 10))
	client := &mockBookingClient{}
	uc := NewUseCase(client, registry, time.Second, noopLogger{})

	_, err := session.BeginDrag(1)
	require.NoError(t, err)

	resp, err := uc.Execute(context.Background(), dropRequest(session.ID, 20))
	require.NoError(t, err)

	assert.False(t, resp.Unassigned)
	assert.Equal(t, int64(20), resp.Target.Key.AgentID)
	require.Len(t, resp.Target.Activities, 1)
	assert.Equal(t, int64(1), resp.Target.Activities[0].ID)
	assert.Empty(t, resp.Source.Activities)

	// Сохранен один PATCH с agentId и полными границами слота
	require.Len(t, client.updates, 1)
	update := client.updates[0]
	assert.Equal(t, int64(1), update.ActivityID)
	require.NotNil(t, update.Request.AgentID)
	assert.Equal(t, int64(20), *update.Request.AgentID)

	// Сессия свободна для следующей операции
	_, err = session.BeginDrag(1)
	assert.NoError(t, err)
}

func TestExecute_SplitPersistsNeighbours(t *testing.T) {
	registry, session := newTestPlanner(t, gridActivity(1, 10), gridActivity(2, 20))
	client := &mockBookingClient{}
	uc := NewUseCase(client, registry, time.Second, noopLogger{})

	_, err := session.BeginDrag(1)
	require.NoError(t, err)

	req := dropRequest(session.ID, 20)
	req.Position = domain.DropZoneRight
	_, err = uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Обе активности ячейки сохранены: перетащенная с агентом и
	// расписанием, сосед только с расписанием
	require.Len(t, client.updates, 2)
	byID := map[int64]recordedUpdate{}
	for _, update := range client.updates {
		byID[update.ActivityID] = update
	}
	assert.NotNil(t, byID[1].Request.AgentID)
	assert.Nil(t, byID[2].Request.AgentID)
	assert.NotNil(t, byID[2].Request.ScheduleFrom)
}

func TestExecute_RollsBackOnPersistFailure(t *testing.T) {
	registry, session := newTestPlanner(t, gridActivity(1, 10), gridActivity(2, 20))
	client := &mockBookingClient{failOn: map[int64]error{
		1: bookingservice.ErrUpdateRejected,
		2: bookingservice.ErrUpdateRejected,
	}}
	uc := NewUseCase(client, registry, time.Second, noopLogger{})

	before := session.Index()

	_, err := session.BeginDrag(1)
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), dropRequest(session.ID, 20))
	assert.ErrorIs(t, err, ErrPersistFailed)

	// Сетка восстановлена до состояния перед перемещением
	after := session.Index()
	require.Equal(t, before.Len(), after.Len())
	for _, key := range before.Keys() {
		assert.Equal(t, before.Cell(key), after.Cell(key))
	}

	// Блокировка снята
	_, err = session.BeginDrag(1)
	assert.NoError(t, err)
}

func TestExecute_UnassignNotRolledBack(t *testing.T) {
	registry, session := newTestPlanner(t, gridActivity(1, 10))
	client := &mockBookingClient{failOn: map[int64]error{1: bookingservice.ErrUpdateRejected}}
	uc := NewUseCase(client, registry, time.Second, noopLogger{})

	_, err := session.BeginDrag(1)
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), dropRequest(session.ID, domain.UnassignedAgentID))
	assert.ErrorIs(t, err, ErrPersistFailed)

	// Путь снятия назначения не откатывается: активность остается в
	// корзине "не назначено" до следующего обновления сетки
	index := session.Index()
	assert.True(t, index.ContainsActivity(
		domain.CellKey{AgentID: domain.UnassignedAgentID, DateKey: "2026-09-05", SlotCode: "AM"}, 1))

	_, err = session.BeginDrag(1)
	assert.NoError(t, err)
}

func TestExecute_Unassign(t *testing.T) {
	registry, session := newTestPlanner(t, gridActivity(1, 10))
	client := &mockBookingClient{}
	uc := NewUseCase(client, registry, time.Second, noopLogger{})

	_, err := session.BeginDrag(1)
	require.NoError(t, err)

	resp, err := uc.Execute(context.Background(), dropRequest(session.ID, domain.UnassignedAgentID))
	require.NoError(t, err)

	assert.True(t, resp.Unassigned)
	require.Len(t, client.updates, 1)
	assert.True(t, client.updates[0].Request.UnassignAgent)
	assert.Nil(t, client.updates[0].Request.ScheduleFrom)
}

func TestExecute_ErrorMapping(t *testing.T) {
	registry, session := newTestPlanner(t, gridActivity(1, 10))
	uc := NewUseCase(&mockBookingClient{}, registry, time.Second, noopLogger{})

	// Сессия не найдена
	_, err := uc.Execute(context.Background(), dropRequest(uuid.New(), 20))
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// Drop без drag
	_, err = uc.Execute(context.Background(), dropRequest(session.ID, 20))
	assert.ErrorIs(t, err, ErrNoDragInProgress)

	// Отклонение по правилам: другой день
	_, err = session.BeginDrag(1)
	require.NoError(t, err)
	req := dropRequest(session.ID, 20)
	req.TargetDateKey = "2026-09-06"
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrIncompatibleSlot)

	// Дата вне отображаемого окна сессии
	outside := dropRequest(session.ID, 20)
	outside.TargetDateKey = "2026-10-01"
	_, err = uc.Execute(context.Background(), outside)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_Validation(t *testing.T) {
	registry, _ := newTestPlanner(t, gridActivity(1, 10))
	uc := NewUseCase(&mockBookingClient{}, registry, time.Second, noopLogger{})

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing session id", func(r *Request) { r.SessionID = uuid.Nil }},
		{"negative agent id", func(r *Request) { r.TargetAgentID = -1 }},
		{"bad date key", func(r *Request) { r.TargetDateKey = "05.09.2026" }},
		{"missing slot code", func(r *Request) { r.TargetSlotCode = "" }},
		{"unknown position", func(r *Request) { r.Position = "top" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dropRequest(uuid.New(), 20)
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_SilentRejection(t *testing.T) {
	exclusive := gridActivity(2, 20)
	exclusive.IsExclusive = true

	registry, session := newTestPlanner(t, gridActivity(1, 10), exclusive)
	uc := NewUseCase(&mockBookingClient{}, registry, time.Second, noopLogger{})

	_, err := session.BeginDrag(1)
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), dropRequest(session.ID, 20))
	assert.ErrorIs(t, err, ErrRejected)
	assert.False(t, errors.Is(err, ErrIncompatibleSlot))
}
