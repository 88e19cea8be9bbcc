package catalog

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrStylistNotFound возвращается, когда стилист не найден
	ErrStylistNotFound = errors.New("stylist not found")

	// ErrServiceNotOffered возвращается, когда стилист не предоставляет услугу
	ErrServiceNotOffered = errors.New("stylist does not offer this service")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
