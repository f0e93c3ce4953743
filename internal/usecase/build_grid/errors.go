package build_grid

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("build_grid: invalid input data")

	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("build_grid: session not found")

	// ErrRefreshDebounced возвращается, когда обновление запрошено
	// раньше интервала дебаунса
	ErrRefreshDebounced = errors.New("build_grid: refresh debounced")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("build_grid: internal error")
)
