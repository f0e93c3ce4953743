package bookingservice

import "errors"

var (
	// ErrActivityNotFound возвращается, когда активность не найдена
	ErrActivityNotFound = errors.New("bookingservice client: activity not found")

	// ErrGroupNotFound возвращается, когда группа (заезд) не найдена
	ErrGroupNotFound = errors.New("bookingservice client: group not found")

	// ErrProductModelNotFound возвращается, когда продукт не найден
	ErrProductModelNotFound = errors.New("bookingservice client: product model not found")

	// ErrUpdateRejected возвращается, когда BookingService отклонил обновление
	ErrUpdateRejected = errors.New("bookingservice client: update rejected")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("bookingservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе сервиса
	ErrInvalidResponse = errors.New("bookingservice client: invalid response")
)
