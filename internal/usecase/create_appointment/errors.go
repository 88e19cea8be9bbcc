package create_appointment

import "errors"

var (
	// ErrStylistNotFound возвращается, когда стилист не найден или неактивен
	ErrStylistNotFound = errors.New("stylist not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrServiceNotOffered возвращается, когда стилист не предоставляет услугу
	ErrServiceNotOffered = errors.New("stylist does not offer this service")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrSlotNotAvailable возвращается, когда запрошенное время занято
	ErrSlotNotAvailable = errors.New("time slot is not available")

	// ErrNoStylistAvailable возвращается, когда автоподбор не нашел свободного стилиста
	ErrNoStylistAvailable = errors.New("no stylist available at this time")

	// ErrAutoAssignDisabled возвращается, когда автоподбор выключен в конфигурации
	ErrAutoAssignDisabled = errors.New("automatic stylist assignment is disabled")

	// ErrOutsideWorkingHours возвращается, когда время вне рабочего окна стилиста
	ErrOutsideWorkingHours = errors.New("time is outside stylist working hours")

	// ErrLinkNotFound возвращается, когда код ссылки для записи не существует
	ErrLinkNotFound = errors.New("booking link not found")

	// ErrLinkInactive возвращается, когда ссылка деактивирована
	ErrLinkInactive = errors.New("booking link is inactive")

	// ErrGuestNotAllowed возвращается, когда ссылка запрещает гостевую запись
	ErrGuestNotAllowed = errors.New("guest booking is not allowed for this link")

	// ErrDateTooFarInFuture возвращается, когда дата за горизонтом ссылки
	ErrDateTooFarInFuture = errors.New("date is too far in the future")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("invalid date")

	// ErrPaymentFailed возвращается, когда не удалось создать платежную сессию
	// Созданная запись к этому моменту уже удалена
	ErrPaymentFailed = errors.New("payment session could not be created")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
