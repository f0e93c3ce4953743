package directoryservice

import "github.com/campora/PMS-SchedulerService/internal/domain"

// Agent модель агента из DirectoryService
type Agent struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Relationship string `json:"relationship"` // employee | provider

	// ActivityCapableProductModelIDs список компетенций (только сотрудники)
	ActivityCapableProductModelIDs []int64 `json:"activityCapableProductModelIds,omitempty"`

	// ProviderProductModelIDs продукты, которые поставляет провайдер
	ProviderProductModelIDs []int64 `json:"providerProductModelIds,omitempty"`
}

// ToDomain конвертирует агента в доменную модель
func (a *Agent) ToDomain() domain.Agent {
	return domain.Agent{
		ID:                      a.ID,
		Name:                    a.Name,
		Relationship:            domain.Relationship(a.Relationship),
		CapableProductModelIDs:  a.ActivityCapableProductModelIDs,
		ProviderProductModelIDs: a.ProviderProductModelIDs,
	}
}

// ErrorResponse модель ошибки от DirectoryService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
