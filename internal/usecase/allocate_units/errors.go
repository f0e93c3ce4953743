package allocate_units

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("allocate_units: invalid input data")

	// ErrGroupNotFound возвращается, когда группа не найдена
	ErrGroupNotFound = errors.New("allocate_units: group not found")

	// ErrProductModelNotFound возвращается, когда продукт не найден
	ErrProductModelNotFound = errors.New("allocate_units: product model not found")

	// ErrNoUnitsSelected возвращается, когда ни одно из выбранных средств
	// размещения не доступно для группы
	ErrNoUnitsSelected = errors.New("allocate_units: no selected rental units available")

	// ErrAllAssignmentsFailed возвращается, когда не удалось создать ни
	// одно назначение
	ErrAllAssignmentsFailed = errors.New("allocate_units: all assignments failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("allocate_units: internal error")
)
