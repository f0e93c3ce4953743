package handlers

import (
	"github.com/campora/PMS-SchedulerService/internal/domain"
	"github.com/campora/PMS-SchedulerService/internal/service/planner"
	"github.com/campora/PMS-SchedulerService/pkg/types"
)

// Общие view-модели сетки планирования: снимок сессии сериализуется
// несколькими операциями (открытие сессии, чтение, обновление)

// ActivityView HTTP модель активности в ячейке
type ActivityView struct {
	ID                     int64           `json:"id"`
	Name                   string          `json:"name"`
	DateKey                string          `json:"dateKey"`
	TimeSlotCode           string          `json:"timeSlotCode"`
	ScheduleFrom           types.TimeOfDay `json:"scheduleFrom"`
	ScheduleTo             types.TimeOfDay `json:"scheduleTo"`
	IsExclusive            bool            `json:"isExclusive"`
	HasStaffRequired       bool            `json:"hasStaffRequired"`
	HasProviderRequired    bool            `json:"hasProviderRequired"`
	RequiredProductModelID int64           `json:"requiredProductModelId,omitempty"`
	AgentID                int64           `json:"agentId"`
	ProviderIDs            []int64         `json:"providersIds,omitempty"`
	IsPartnerEvent         bool            `json:"isPartnerEvent"`
}

// CellView одна непустая ячейка сетки
type CellView struct {
	AgentID    int64          `json:"agentId"`
	DateKey    string         `json:"dateKey"`
	SlotCode   string         `json:"slotCode"`
	Activities []ActivityView `json:"activities"`
}

// AgentView HTTP модель строки сетки
type AgentView struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
}

// TimeSlotView HTTP модель колонки слота
type TimeSlotView struct {
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	ScheduleFrom types.TimeOfDay `json:"scheduleFrom"`
	ScheduleTo   types.TimeOfDay `json:"scheduleTo"`
}

// CalendarDayView HTTP модель дня календарной оси
type CalendarDayView struct {
	DateKey string `json:"dateKey"`
}

// MonthGroupView группа последовательных дней одного месяца
type MonthGroupView struct {
	MonthKey string `json:"monthKey"`
	DayCount int    `json:"dayCount"`
}

// CalendarView HTTP модель календарной оси
type CalendarView struct {
	DateFrom string            `json:"dateFrom"`
	Days     []CalendarDayView `json:"days"`
	Months   []MonthGroupView  `json:"months"`
}

// GridResponse полный снимок сетки планирования
type GridResponse struct {
	Calendar  CalendarView   `json:"calendar"`
	Agents    []AgentView    `json:"agents"`
	TimeSlots []TimeSlotView `json:"timeSlots"`
	Cells     []CellView     `json:"cells"`
}

// FromActivity конвертирует доменную активность в HTTP модель
func FromActivity(activity domain.Activity) ActivityView {
	return ActivityView{
		ID:                     activity.ID,
		Name:                   activity.Name,
		DateKey:                activity.DateKey(),
		TimeSlotCode:           activity.TimeSlotCode,
		ScheduleFrom:           activity.ScheduleFrom,
		ScheduleTo:             activity.ScheduleTo,
		IsExclusive:            activity.IsExclusive,
		HasStaffRequired:       activity.HasStaffRequired,
		HasProviderRequired:    activity.HasProviderRequired,
		RequiredProductModelID: activity.RequiredProductModelID,
		AgentID:                activity.AgentID,
		ProviderIDs:            activity.ProviderIDs,
		IsPartnerEvent:         activity.IsPartnerEvent,
	}
}

// FromActivities конвертирует содержимое ячейки
func FromActivities(activities []domain.Activity) []ActivityView {
	views := make([]ActivityView, 0, len(activities))
	for _, activity := range activities {
		views = append(views, FromActivity(activity))
	}
	return views
}

// FromGridSnapshot конвертирует снимок сессии в HTTP модель сетки
func FromGridSnapshot(grid planner.GridSnapshot) *GridResponse {
	days := make([]CalendarDayView, 0, len(grid.Calendar.Days))
	for _, day := range grid.Calendar.Days {
		days = append(days, CalendarDayView{DateKey: day.Key})
	}

	months := make([]MonthGroupView, 0, len(grid.Calendar.Months))
	for _, month := range grid.Calendar.Months {
		months = append(months, MonthGroupView{MonthKey: month.Key, DayCount: len(month.Days)})
	}

	agents := make([]AgentView, 0, len(grid.Agents))
	for _, agent := range grid.Agents {
		agents = append(agents, AgentView{
			ID:           agent.ID,
			Name:         agent.Name,
			Relationship: string(agent.Relationship),
		})
	}

	slots := make([]TimeSlotView, 0, len(grid.TimeSlots))
	for _, slot := range grid.TimeSlots {
		slots = append(slots, TimeSlotView{
			Code:         slot.Code,
			Name:         slot.Name,
			ScheduleFrom: slot.ScheduleFrom,
			ScheduleTo:   slot.ScheduleTo,
		})
	}

	cells := make([]CellView, 0, grid.Index.Len())
	for _, key := range grid.Index.Keys() {
		cells = append(cells, CellView{
			AgentID:    key.AgentID,
			DateKey:    key.DateKey,
			SlotCode:   key.SlotCode,
			Activities: FromActivities(grid.Index.Cell(key)),
		})
	}

	return &GridResponse{
		Calendar: CalendarView{
			DateFrom: grid.Calendar.DateFrom.Format(domain.DateFormat),
			Days:     days,
			Months:   months,
		},
		Agents:    agents,
		TimeSlots: slots,
		Cells:     cells,
	}
}
