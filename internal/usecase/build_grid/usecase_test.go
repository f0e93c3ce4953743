package build_grid

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campora/PMS-SchedulerService/internal/domain"
	"github.com/campora/PMS-SchedulerService/internal/integrations/bookingservice"
	"github.com/campora/PMS-SchedulerService/internal/service/planner"
	"github.com/campora/PMS-SchedulerService/pkg/ptr"
	"github.com/campora/PMS-SchedulerService/pkg/types"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

var testDate = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

type mockBookingClient struct {
	activities  []domain.Activity
	slots       []domain.TimeSlot
	lastRequest *bookingservice.ListActivitiesRequest
}

func (m *mockBookingClient) ListActivities(ctx context.Context, req *bookingservice.ListActivitiesRequest) ([]domain.Activity, error) {
	m.lastRequest = req
	return m.activities, nil
}

func (m *mockBookingClient) ListTimeSlots(ctx context.Context) ([]domain.TimeSlot, error) {
	return m.slots, nil
}

type mockDirectoryClient struct {
	agents []domain.Agent
}

func (m *mockDirectoryClient) ListAgents(ctx context.Context) ([]domain.Agent, error) {
	return m.agents, nil
}

type mockPreferences struct {
	prefs *domain.DisplayPreferences
}

func (m *mockPreferences) GetForUser(ctx context.Context, userID int64) (*domain.DisplayPreferences, error) {
	if m.prefs != nil {
		return m.prefs, nil
	}
	return domain.DefaultDisplayPreferences(userID), nil
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func testSlots() []domain.TimeSlot {
	return []domain.TimeSlot{
		{Code: "AM", Name: "Morning", ScheduleFrom: types.NewTimeOfDay(8, 0, 0), ScheduleTo: types.NewTimeOfDay(12, 0, 0)},
		{Code: "PM", Name: "Afternoon", ScheduleFrom: types.NewTimeOfDay(13, 0, 0), ScheduleTo: types.NewTimeOfDay(17, 0, 0)},
	}
}

func testAgents() []domain.Agent {
	return []domain.Agent{
		{ID: 10, Name: "Anna", Relationship: domain.RelationshipEmployee},
		{ID: 30, Name: "Supply Co", Relationship: domain.RelationshipProvider},
	}
}

func newTestUseCase(booking *mockBookingClient, directory *mockDirectoryClient, prefs *mockPreferences) (*UseCase, *planner.Planner) {
	registry := planner.NewPlanner(domain.DropRules{}, time.Hour, time.Millisecond*100, noopLogger{})
	uc := NewUseCase(booking, directory, prefs, registry, noopLogger{})
	uc.timeProvider = fixedTime{now: testDate}
	return uc, registry
}

func TestExecute_CreatesSession(t *testing.T) {
	booking := &mockBookingClient{
		slots: testSlots(),
		activities: []domain.Activity{
			{ID: 1, ActivityDate: testDate, TimeSlotCode: "AM", AgentID: 10},
			{ID: 2, ActivityDate: testDate, TimeSlotCode: "AM"},
		},
	}
	uc, registry := newTestUseCase(booking, &mockDirectoryClient{agents: testAgents()}, &mockPreferences{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, DateFrom: testDate, DurationInDays: 14})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, resp.SessionID)
	assert.Len(t, resp.Grid.Calendar.Days, 14)
	assert.Len(t, resp.Grid.Agents, 2)
	assert.Len(t, resp.Grid.TimeSlots, 2)
	assert.Equal(t, 2, resp.Grid.Index.Len())

	// Сессия зарегистрирована в реестре
	_, err = registry.Get(resp.SessionID)
	assert.NoError(t, err)

	// Запрошены активности всех видимых агентов
	require.NotNil(t, booking.lastRequest)
	assert.Equal(t, []int64{10, 30}, booking.lastRequest.AgentIDs)
	assert.Equal(t, 14, booking.lastRequest.DurationInDays)
}

func TestExecute_DefaultsFromPreferences(t *testing.T) {
	relationship := domain.RelationshipEmployee
	prefs := &mockPreferences{prefs: &domain.DisplayPreferences{
		UserID:           1,
		Relationship:     &relationship,
		VisibleSlotCodes: []string{"AM"},
		DurationDays:     7,
	}}

	booking := &mockBookingClient{slots: testSlots()}
	uc, _ := newTestUseCase(booking, &mockDirectoryClient{agents: testAgents()}, prefs)

	// Запрос без фильтров берет все из настроек
	resp, err := uc.Execute(context.Background(), &Request{UserID: 1})
	require.NoError(t, err)

	assert.Len(t, resp.Grid.Calendar.Days, 7)
	require.Len(t, resp.Grid.Agents, 1)
	assert.Equal(t, int64(10), resp.Grid.Agents[0].ID)
	require.Len(t, resp.Grid.TimeSlots, 1)
	assert.Equal(t, "AM", resp.Grid.TimeSlots[0].Code)

	// Пустая дата начала = сегодня
	assert.Equal(t, "2026-09-01", resp.Grid.Calendar.Days[0].Key)
}

func TestExecute_RequestOverridesPreferences(t *testing.T) {
	relationship := domain.RelationshipEmployee
	prefs := &mockPreferences{prefs: &domain.DisplayPreferences{
		UserID:       1,
		Relationship: &relationship,
		DurationDays: 7,
	}}

	uc, _ := newTestUseCase(&mockBookingClient{slots: testSlots()}, &mockDirectoryClient{agents: testAgents()}, prefs)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:         1,
		DurationInDays: 31,
		Relationship:   ptr.Ptr("provider"),
	})
	require.NoError(t, err)

	assert.Len(t, resp.Grid.Calendar.Days, 31)
	require.Len(t, resp.Grid.Agents, 1)
	assert.Equal(t, int64(30), resp.Grid.Agents[0].ID)
}

func TestExecute_RefreshReplacesGrid(t *testing.T) {
	booking := &mockBookingClient{
		slots:      testSlots(),
		activities: []domain.Activity{{ID: 1, ActivityDate: testDate, TimeSlotCode: "AM", AgentID: 10}},
	}
	uc, registry := newTestUseCase(booking, &mockDirectoryClient{agents: testAgents()}, &mockPreferences{})

	opened, err := uc.Execute(context.Background(), &Request{UserID: 1, DurationInDays: 7})
	require.NoError(t, err)

	// Немедленный refresh дебаунсится
	_, err = uc.Execute(context.Background(), &Request{UserID: 1, SessionID: &opened.SessionID, DurationInDays: 7})
	assert.ErrorIs(t, err, ErrRefreshDebounced)

	// После интервала дебаунса сетка полностью заменяется
	time.Sleep(time.Millisecond * 120)
	booking.activities = nil

	refreshed, err := uc.Execute(context.Background(), &Request{UserID: 1, SessionID: &opened.SessionID, DurationInDays: 7})
	require.NoError(t, err)

	assert.Equal(t, opened.SessionID, refreshed.SessionID)
	assert.Equal(t, 0, refreshed.Grid.Index.Len())

	session, err := registry.Get(opened.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 0, session.Index().Len())
}

func TestExecute_UnknownSession(t *testing.T) {
	uc, _ := newTestUseCase(&mockBookingClient{slots: testSlots()}, &mockDirectoryClient{agents: testAgents()}, &mockPreferences{})

	unknown := uuid.New()
	_, err := uc.Execute(context.Background(), &Request{UserID: 1, SessionID: &unknown, DurationInDays: 7})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestExecute_Validation(t *testing.T) {
	uc, _ := newTestUseCase(&mockBookingClient{}, &mockDirectoryClient{}, &mockPreferences{})

	tests := []struct {
		name string
		req  *Request
	}{
		{"missing user id", &Request{DurationInDays: 7}},
		{"negative duration", &Request{UserID: 1, DurationInDays: -1}},
		{"duration above max", &Request{UserID: 1, DurationInDays: domain.MaxDurationDays + 1}},
		{"unknown relationship", &Request{UserID: 1, Relationship: ptr.Ptr("contractor")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
