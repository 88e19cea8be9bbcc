package create_manual_appointment

import "errors"

var (
	// ErrNotStylist возвращается, когда пользователь не является стилистом
	ErrNotStylist = errors.New("user is not a stylist")

	// ErrStylistNotFound возвращается, когда стилист не найден
	ErrStylistNotFound = errors.New("stylist not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrServiceNotOffered возвращается, когда стилист не предоставляет услугу
	ErrServiceNotOffered = errors.New("stylist does not offer this service")

	// ErrSlotNotAvailable возвращается, когда запрошенное время занято
	ErrSlotNotAvailable = errors.New("time slot is not available")

	// ErrOutsideWorkingHours возвращается, когда время вне рабочего окна
	ErrOutsideWorkingHours = errors.New("time is outside stylist working hours")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
