package bookingservice

import (
	"time"

	"github.com/campora/PMS-SchedulerService/internal/domain"
	"github.com/campora/PMS-SchedulerService/pkg/types"
)

// Activity модель активности из BookingService
type Activity struct {
	ID                     int64           `json:"id"`
	Name                   string          `json:"name"`
	ActivityDate           string          `json:"activityDate"` // YYYY-MM-DD
	TimeSlot               string          `json:"timeSlot"`
	ScheduleFrom           types.TimeOfDay `json:"scheduleFrom"`
	ScheduleTo             types.TimeOfDay `json:"scheduleTo"`
	IsExclusive            bool            `json:"isExclusive"`
	HasStaffRequired       bool            `json:"hasStaffRequired"`
	HasProviderRequired    bool            `json:"hasProviderRequired"`
	RequiredProductModelID int64           `json:"requiredProductModelId"`
	AgentID                int64           `json:"agentId"`
	ProvidersIDs           []int64         `json:"providersIds"`
	IsPartnerEvent         bool            `json:"isPartnerEvent"`
}

// ToDomain конвертирует активность в доменную модель
func (a *Activity) ToDomain() (domain.Activity, error) {
	date, err := time.ParseInLocation(domain.DateFormat, a.ActivityDate, time.UTC)
	if err != nil {
		return domain.Activity{}, err
	}
	return domain.Activity{
		ID:                     a.ID,
		Name:                   a.Name,
		ActivityDate:           date,
		TimeSlotCode:           a.TimeSlot,
		ScheduleFrom:           a.ScheduleFrom,
		ScheduleTo:             a.ScheduleTo,
		IsExclusive:            a.IsExclusive,
		HasStaffRequired:       a.HasStaffRequired,
		HasProviderRequired:    a.HasProviderRequired,
		RequiredProductModelID: a.RequiredProductModelID,
		AgentID:                a.AgentID,
		ProviderIDs:            a.ProvidersIDs,
		IsPartnerEvent:         a.IsPartnerEvent,
	}, nil
}

// ActivitiesResponse ответ BookingService на запрос активностей.
// Активности сгруппированы agentId → dateKey → slotCode
type ActivitiesResponse struct {
	Activities map[string]map[string]map[string][]Activity `json:"activities"`
}

// ListActivitiesRequest параметры запроса активностей
type ListActivitiesRequest struct {
	DateFrom        time.Time
	DurationInDays  int
	AgentIDs        []int64
	ProductModelIDs []int64
}

// UpdateActivityRequest частичное обновление активности.
// Поле попадает в PATCH payload, только когда соответствующий
// указатель/флаг выставлен; UnassignAgent сериализуется как agentId=null
type UpdateActivityRequest struct {
	AgentID       *int64
	UnassignAgent bool
	ScheduleFrom  *types.TimeOfDay
	ScheduleTo    *types.TimeOfDay
	ProvidersIDs  *[]int64
}

// payload собирает тело PATCH запроса
func (r *UpdateActivityRequest) payload() map[string]interface{} {
	body := make(map[string]interface{})
	if r.UnassignAgent {
		body["agentId"] = nil
	} else if r.AgentID != nil {
		body["agentId"] = *r.AgentID
	}
	if r.ScheduleFrom != nil {
		body["scheduleFrom"] = *r.ScheduleFrom
	}
	if r.ScheduleTo != nil {
		body["scheduleTo"] = *r.ScheduleTo
	}
	if r.ProvidersIDs != nil {
		body["providersIds"] = *r.ProvidersIDs
	}
	return body
}

// TimeSlot модель временного слота из BookingService
type TimeSlot struct {
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	ScheduleFrom types.TimeOfDay `json:"scheduleFrom"`
	ScheduleTo   types.TimeOfDay `json:"scheduleTo"`
}

// ToDomain конвертирует слот в доменную модель
func (s *TimeSlot) ToDomain() domain.TimeSlot {
	return domain.TimeSlot{
		Code:         s.Code,
		Name:         s.Name,
		ScheduleFrom: s.ScheduleFrom,
		ScheduleTo:   s.ScheduleTo,
	}
}

// RentalUnit модель средства размещения из BookingService
type RentalUnit struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	ParentID *int64 `json:"parentId,omitempty"`
}

// ToDomain конвертирует средство размещения в доменную модель
func (u *RentalUnit) ToDomain() domain.RentalUnit {
	return domain.RentalUnit{
		ID:       u.ID,
		Name:     u.Name,
		Capacity: u.Capacity,
		ParentID: u.ParentID,
	}
}

// ProductModel модель продукта из BookingService
type ProductModel struct {
	ID                  int64   `json:"id"`
	Name                string  `json:"name"`
	QtyAccountingMethod string  `json:"qtyAccountingMethod"`
	Capacity            *int    `json:"capacity,omitempty"`
	ProviderIDs         []int64 `json:"providersIds"`
}

// ToDomain конвертирует продукт в доменную модель
func (m *ProductModel) ToDomain() domain.ProductModel {
	return domain.ProductModel{
		ID:                  m.ID,
		Name:                m.Name,
		QtyAccountingMethod: m.QtyAccountingMethod,
		Capacity:            m.Capacity,
		ProviderIDs:         m.ProviderIDs,
	}
}

// CreateRentalUnitAssignmentRequest запрос на создание назначения
// средства размещения группе
type CreateRentalUnitAssignmentRequest struct {
	RentalUnitID int64 `json:"rentalUnitId"`
	GroupID      int64 `json:"groupId"`
	Qty          int   `json:"qty"`
}

// ErrorResponse модель ошибки от BookingService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
