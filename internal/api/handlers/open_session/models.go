package open_session

import (
	"time"

	"github.com/campora/PMS-SchedulerService/internal/api/handlers"
	"github.com/campora/PMS-SchedulerService/internal/domain"
	buildGrid "github.com/campora/PMS-SchedulerService/internal/usecase/build_grid"
)

// OpenSessionRequest HTTP request model
type OpenSessionRequest struct {
	DateFrom         string   `json:"dateFrom,omitempty"` // "2026-09-01"
	DurationInDays   int      `json:"durationInDays,omitempty"`
	Relationship     *string  `json:"relationship,omitempty"` // employee | provider
	VisibleSlotCodes []string `json:"visibleSlotCodes,omitempty"`
}

// OpenSessionResponse HTTP response model
type OpenSessionResponse struct {
	SessionID string                 `json:"sessionId"`
	Grid      *handlers.GridResponse `json:"grid"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *OpenSessionRequest) ToUseCaseRequest(userID int64) (*buildGrid.Request, error) {
	var dateFrom time.Time
	if r.DateFrom != "" {
		parsed, err := time.Parse(domain.DateFormat, r.DateFrom)
		if err != nil {
			return nil, err
		}
		dateFrom = parsed
	}

	return &buildGrid.Request{
		UserID:           userID,
		DateFrom:         dateFrom,
		DurationInDays:   r.DurationInDays,
		Relationship:     r.Relationship,
		VisibleSlotCodes: r.VisibleSlotCodes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *buildGrid.Response) *OpenSessionResponse {
	return &OpenSessionResponse{
		SessionID: resp.SessionID.String(),
		Grid:      handlers.FromGridSnapshot(resp.Grid),
	}
}
