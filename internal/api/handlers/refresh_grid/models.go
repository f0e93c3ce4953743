package refresh_grid

import (
	"time"

	"github.com/google/uuid"

	"github.com/campora/PMS-SchedulerService/internal/api/handlers"
	"github.com/campora/PMS-SchedulerService/internal/domain"
	buildGrid "github.com/campora/PMS-SchedulerService/internal/usecase/build_grid"
)

// RefreshGridRequest HTTP request model. Заданные поля меняют фильтры
// сетки, незаданные сохраняют текущие значения из настроек
type RefreshGridRequest struct {
	DateFrom         string   `json:"dateFrom,omitempty"`
	DurationInDays   int      `json:"durationInDays,omitempty"`
	Relationship     *string  `json:"relationship,omitempty"`
	VisibleSlotCodes []string `json:"visibleSlotCodes,omitempty"`
}

// RefreshGridResponse HTTP response model
type RefreshGridResponse struct {
	SessionID string                 `json:"sessionId"`
	Grid      *handlers.GridResponse `json:"grid"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RefreshGridRequest) ToUseCaseRequest(userID int64, sessionID uuid.UUID) (*buildGrid.Request, error) {
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
		SessionID:        &sessionID,
		DateFrom:         dateFrom,
		DurationInDays:   r.DurationInDays,
		Relationship:     r.Relationship,
		VisibleSlotCodes: r.VisibleSlotCodes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *buildGrid.Response) *RefreshGridResponse {
	return &RefreshGridResponse{
		SessionID: resp.SessionID.String(),
		Grid:      handlers.FromGridSnapshot(resp.Grid),
	}
}
