package allocate_units

import (
	allocateUnits "github.com/campora/PMS-SchedulerService/internal/usecase/allocate_units"
)

// AllocateUnitsRequest HTTP request model
type AllocateUnitsRequest struct {
	ProductModelID     int64   `json:"productModelId"`
	GroupSize          int     `json:"groupSize"`
	AlreadyAssignedQty int     `json:"alreadyAssignedQty"`
	UnitIDs            []int64 `json:"unitIds"`
}

// UnitAssignmentResponse одно созданное назначение
type UnitAssignmentResponse struct {
	UnitID int64 `json:"unitId"`
	Qty    int   `json:"qty"`
}

// AssignmentFailureResponse одно несозданное назначение
type AssignmentFailureResponse struct {
	UnitID  int64  `json:"unitId"`
	Qty     int    `json:"qty"`
	Message string `json:"message"`
}

// AllocateUnitsResponse HTTP response model
type AllocateUnitsResponse struct {
	GroupID  int64                       `json:"groupId"`
	Assigned []UnitAssignmentResponse    `json:"assigned"`
	Failed   []AssignmentFailureResponse `json:"failed,omitempty"`
	TotalQty int                         `json:"totalQty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *AllocateUnitsRequest) ToUseCaseRequest(groupID int64) *allocateUnits.Request {
	return &allocateUnits.Request{
		GroupID:            groupID,
		ProductModelID:     r.ProductModelID,
		GroupSize:          r.GroupSize,
		AlreadyAssignedQty: r.AlreadyAssignedQty,
		UnitIDs:            r.UnitIDs,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *allocateUnits.Response) *AllocateUnitsResponse {
	assigned := make([]UnitAssignmentResponse, 0, len(resp.Assigned))
	for _, allocation := range resp.Assigned {
		assigned = append(assigned, UnitAssignmentResponse{
			UnitID: allocation.UnitID,
			Qty:    allocation.Qty,
		})
	}

	var failed []AssignmentFailureResponse
	for _, failure := range resp.Failed {
		failed = append(failed, AssignmentFailureResponse{
			UnitID:  failure.UnitID,
			Qty:     failure.Qty,
			Message: failure.Message,
		})
	}

	return &AllocateUnitsResponse{
		GroupID:  resp.GroupID,
		Assigned: assigned,
		Failed:   failed,
		TotalQty: resp.TotalQty,
	}
}
