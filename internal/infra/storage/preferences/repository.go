package preferences

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/campora/PMS-SchedulerService/internal/domain"
	"github.com/campora/PMS-SchedulerService/pkg/dbmetrics"
	"github.com/campora/PMS-SchedulerService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с настройками отображения сетки
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByUserID получает настройки отображения пользователя
func (r *Repository) GetByUserID(ctx context.Context, userID int64) (*domain.DisplayPreferences, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"user_id",
		"relationship",
		"skill_filter_enabled",
		"visible_slot_codes",
		"duration_days",
		"created_at",
		"updated_at",
	).
		From("display_preferences").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	var prefs domain.DisplayPreferences
	var relationship sql.NullString
	var slotCodes pq.StringArray
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&prefs.ID,
		&prefs.UserID,
		&relationship,
		&prefs.SkillFilterEnabled,
		&slotCodes,
		&prefs.DurationDays,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPreferencesNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - scan preferences: %v", ErrScanRow, err)
	}

	if relationship.Valid {
		rel := domain.Relationship(relationship.String)
		prefs.Relationship = &rel
	}
	prefs.VisibleSlotCodes = slotCodes
	prefs.CreatedAt = createdAt.Time
	prefs.UpdatedAt = updatedAt.Time

	return &prefs, nil
}

// Upsert сохраняет настройки пользователя (insert или update по user_id)
func (r *Repository) Upsert(ctx context.Context, prefs *domain.DisplayPreferences) (*domain.DisplayPreferences, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var relationship interface{}
	if prefs.Relationship != nil {
		relationship = string(*prefs.Relationship)
	}

	query, args, err := psqlbuilder.Insert("display_preferences").
		Columns(
			"user_id",
			"relationship",
			"skill_filter_enabled",
			"visible_slot_codes",
			"duration_days",
		).
		Values(
			prefs.UserID,
			relationship,
			prefs.SkillFilterEnabled,
			pq.Array(prefs.VisibleSlotCodes),
			prefs.DurationDays,
		).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			relationship = EXCLUDED.relationship,
			skill_filter_enabled = EXCLUDED.skill_filter_enabled,
			visible_slot_codes = EXCLUDED.visible_slot_codes,
			duration_days = EXCLUDED.duration_days,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&prefs.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	prefs.CreatedAt = createdAt.Time
	prefs.UpdatedAt = updatedAt.Time

	return prefs, nil
}

// Delete удаляет сохраненные настройки пользователя
func (r *Repository) Delete(ctx context.Context, userID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("display_preferences").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPreferencesNotFound
	}

	return nil
}
