package preferences

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campora/PMS-SchedulerService/internal/domain"
	preferencesRepo "github.com/campora/PMS-SchedulerService/internal/infra/storage/preferences"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type mockRepository struct {
	stored  map[int64]*domain.DisplayPreferences
	deleted []int64
	err     error
}

func newMockRepository() *mockRepository {
	return &mockRepository{stored: map[int64]*domain.DisplayPreferences{}}
}

func (m *mockRepository) GetByUserID(ctx context.Context, userID int64) (*domain.DisplayPreferences, error) {
	if m.err != nil {
		return nil, m.err
	}
	prefs, ok := m.stored[userID]
	if !ok {
		return nil, preferencesRepo.ErrPreferencesNotFound
	}
	return prefs, nil
}

func (m *mockRepository) Upsert(ctx context.Context, prefs *domain.DisplayPreferences) (*domain.DisplayPreferences, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.stored[prefs.UserID] = prefs
	return prefs, nil
}

func (m *mockRepository) Delete(ctx context.Context, userID int64) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.stored[userID]; !ok {
		return preferencesRepo.ErrPreferencesNotFound
	}
	delete(m.stored, userID)
	m.deleted = append(m.deleted, userID)
	return nil
}

// passthroughTxManager выполняет fn без транзакции
type passthroughTxManager struct {
	calls int
}

func (m *passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

func TestGetForUser_DefaultsWhenNotSaved(t *testing.T) {
	service := NewService(newMockRepository(), &passthroughTxManager{}, noopLogger{})

	prefs, err := service.GetForUser(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, int64(7), prefs.UserID)
	assert.Nil(t, prefs.Relationship)
	assert.Equal(t, domain.DefaultDurationDays, prefs.DurationDays)
}

func TestGetForUser_InvalidUser(t *testing.T) {
	service := NewService(newMockRepository(), &passthroughTxManager{}, noopLogger{})

	_, err := service.GetForUser(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSave_RunsInTransaction(t *testing.T) {
	repo := newMockRepository()
	txManager := &passthroughTxManager{}
	service := NewService(repo, txManager, noopLogger{})

	relationship := domain.RelationshipEmployee
	saved, err := service.Save(context.Background(), &domain.DisplayPreferences{
		UserID:       7,
		Relationship: &relationship,
		DurationDays: 14,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, txManager.calls)
	assert.Equal(t, 14, saved.DurationDays)
	assert.Contains(t, repo.stored, int64(7))
}

func TestReset_DeletesSavedPreferences(t *testing.T) {
	repo := newMockRepository()
	repo.stored[7] = &domain.DisplayPreferences{UserID: 7, DurationDays: 14}
	txManager := &passthroughTxManager{}
	service := NewService(repo, txManager, noopLogger{})

	require.NoError(t, service.Reset(context.Background(), 7))

	assert.Equal(t, 1, txManager.calls)
	assert.Equal(t, []int64{7}, repo.deleted)

	// После сброса снова действуют настройки по умолчанию
	prefs, err := service.GetForUser(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultDurationDays, prefs.DurationDays)
}

func TestReset_NothingSavedIsNotAnError(t *testing.T) {
	service := NewService(newMockRepository(), &passthroughTxManager{}, noopLogger{})

	assert.NoError(t, service.Reset(context.Background(), 7))
}

func TestReset_InvalidUser(t *testing.T) {
	service := NewService(newMockRepository(), &passthroughTxManager{}, noopLogger{})

	assert.ErrorIs(t, service.Reset(context.Background(), -1), ErrInvalidInput)
}

func TestReset_RepositoryError(t *testing.T) {
	repo := newMockRepository()
	repo.err = errors.New("connection lost")
	service := NewService(repo, &passthroughTxManager{}, noopLogger{})

	assert.ErrorIs(t, service.Reset(context.Background(), 7), ErrInternal)
}
