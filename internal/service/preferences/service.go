package preferences

import (
	"context"
	"errors"
	"fmt"

	"github.com/campora/PMS-SchedulerService/internal/domain"
	preferencesRepo "github.com/campora/PMS-SchedulerService/internal/infra/storage/preferences"
)

// Service сервис настроек отображения сетки. Настройки — это бывшее
// browser-local состояние навбара планировщика, вынесенное в явный порт
type Service struct {
	repo      PreferencesRepository
	txManager TxManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(repo PreferencesRepository, txManager TxManager, logger Logger) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		logger:    logger,
	}
}

// GetForUser возвращает настройки пользователя; если пользователь ничего
// не сохранял, возвращаются настройки по умолчанию
func (s *Service) GetForUser(ctx context.Context, userID int64) (*domain.DisplayPreferences, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	prefs, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, preferencesRepo.ErrPreferencesNotFound) {
			s.logger.Info("GetForUser: no saved preferences for user=%d, using defaults", userID)
			return domain.DefaultDisplayPreferences(userID), nil
		}
		s.logger.Error("GetForUser: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetForUser - repository error: %v", ErrInternal, err)
	}

	return prefs, nil
}

// Save сохраняет настройки пользователя
func (s *Service) Save(ctx context.Context, prefs *domain.DisplayPreferences) (*domain.DisplayPreferences, error) {
	if prefs.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if prefs.Relationship != nil &&
		*prefs.Relationship != domain.RelationshipEmployee &&
		*prefs.Relationship != domain.RelationshipProvider {
		return nil, fmt.Errorf("%w: unknown relationship %q", ErrInvalidInput, *prefs.Relationship)
	}
	if prefs.DurationDays <= 0 {
		prefs.DurationDays = domain.DefaultDurationDays
	}
	if prefs.DurationDays > domain.MaxDurationDays {
		return nil, fmt.Errorf("%w: durationDays must not exceed %d", ErrInvalidInput, domain.MaxDurationDays)
	}

	var saved *domain.DisplayPreferences
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		upserted, err := s.repo.Upsert(ctx, prefs)
		if err != nil {
			return err
		}
		saved = upserted
		return nil
	})
	if err != nil {
		s.logger.Error("Save: repository error for user=%d: %v", prefs.UserID, err)
		return nil, fmt.Errorf("%w: Save - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Save: preferences saved for user=%d", prefs.UserID)
	return saved, nil
}

// Reset удаляет сохраненные настройки пользователя; после сброса
// GetForUser снова возвращает настройки по умолчанию. Сброс настроек,
// которые и так не сохранялись, не считается ошибкой
func (s *Service) Reset(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, userID)
	})
	if err != nil {
		if errors.Is(err, preferencesRepo.ErrPreferencesNotFound) {
			s.logger.Info("Reset: no saved preferences for user=%d", userID)
			return nil
		}
		s.logger.Error("Reset: repository error for user=%d: %v", userID, err)
		return fmt.Errorf("%w: Reset - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Reset: preferences reset for user=%d", userID)
	return nil
}
