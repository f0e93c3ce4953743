package allocate_units

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/campora/PMS-SchedulerService/internal/api/handlers"
	allocateUnits "github.com/campora/PMS-SchedulerService/internal/usecase/allocate_units"
)

const (
	msgInvalidGroupID       = "некорректный ID группы"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidData          = "некорректные параметры распределения"
	msgGroupNotFound        = "группа не найдена"
	msgProductModelNotFound = "продукт не найден"
	msgNoUnits              = "выбранные средства размещения недоступны"
	msgAllFailed            = "не удалось создать ни одного назначения"
)

type Handler struct {
	useCase AllocateUnitsUseCase
	logger  Logger
}

func NewHandler(useCase AllocateUnitsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/groups/{groupId}/unit-assignments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	groupID, err := strconv.ParseInt(vars["groupId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /groups/{id}/unit-assignments - Invalid group ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGroupID)
		return
	}

	var req AllocateUnitsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /groups/{id}/unit-assignments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(groupID))
	if err != nil {
		switch {
		case errors.Is(err, allocateUnits.ErrInvalidInput):
			h.logger.Warn("POST /groups/{id}/unit-assignments - Invalid input: group_id=%d, error=%v", groupID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, allocateUnits.ErrGroupNotFound):
			h.logger.Warn("POST /groups/{id}/unit-assignments - Group not found: group_id=%d", groupID)
			handlers.RespondNotFound(w, msgGroupNotFound)

		case errors.Is(err, allocateUnits.ErrProductModelNotFound):
			h.logger.Warn("POST /groups/{id}/unit-assignments - Product model not found: group_id=%d, product_model_id=%d",
				groupID, req.ProductModelID)
			handlers.RespondNotFound(w, msgProductModelNotFound)

		case errors.Is(err, allocateUnits.ErrNoUnitsSelected):
			h.logger.Warn("POST /groups/{id}/unit-assignments - No units available: group_id=%d", groupID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgNoUnits)

		case errors.Is(err, allocateUnits.ErrAllAssignmentsFailed):
			h.logger.Error("POST /groups/{id}/unit-assignments - All assignments failed: group_id=%d", groupID)
			handlers.RespondError(w, http.StatusBadGateway, msgAllFailed)

		default:
			h.logger.Error("POST /groups/{id}/unit-assignments - Failed to allocate: group_id=%d, error=%v",
				groupID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /groups/{id}/unit-assignments - Allocation done: group_id=%d, created=%d, failed=%d",
		groupID, len(result.Assigned), len(result.Failed))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
