package get_available_slots

import "errors"

var (
	// ErrStylistNotFound возвращается, когда стилист не найден или неактивен
	ErrStylistNotFound = errors.New("stylist not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrServiceNotOffered возвращается, когда стилист не предоставляет услугу
	// Отличается от пустого списка слотов: это ошибка запроса, а не занятый день
	ErrServiceNotOffered = errors.New("stylist does not offer this service")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
