package move_activity

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/campora/PMS-SchedulerService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SessionID == uuid.Nil {
		return fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}

	if req.TargetAgentID < 0 {
		return fmt.Errorf("%w: targetAgentID must not be negative", ErrInvalidInput)
	}

	if _, err := time.Parse(domain.DateFormat, req.TargetDateKey); err != nil {
		return fmt.Errorf("%w: targetDateKey must be in %s format", ErrInvalidInput, domain.DateFormat)
	}

	if req.TargetSlotCode == "" {
		return fmt.Errorf("%w: targetSlotCode is required", ErrInvalidInput)
	}

	if req.Position != "" && !domain.ValidDropZonePosition(req.Position) {
		return fmt.Errorf("%w: unknown drop zone position %q", ErrInvalidInput, req.Position)
	}

	return nil
}
