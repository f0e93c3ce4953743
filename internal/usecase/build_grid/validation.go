package build_grid

import (
	"fmt"

	"github.com/campora/PMS-SchedulerService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.DurationInDays < 0 {
		return fmt.Errorf("%w: durationInDays must not be negative", ErrInvalidInput)
	}
	if req.DurationInDays > domain.MaxDurationDays {
		return fmt.Errorf("%w: durationInDays must not exceed %d", ErrInvalidInput, domain.MaxDurationDays)
	}

	if req.Relationship != nil {
		rel := domain.Relationship(*req.Relationship)
		if rel != domain.RelationshipEmployee && rel != domain.RelationshipProvider {
			return fmt.Errorf("%w: unknown relationship %q", ErrInvalidInput, *req.Relationship)
		}
	}

	return nil
}
