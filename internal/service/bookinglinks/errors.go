package bookinglinks

import "errors"

var (
	// ErrLinkNotFound возвращается, когда ссылка не найдена
	ErrLinkNotFound = errors.New("booking link not found")

	// ErrLinkInactive возвращается, когда ссылка деактивирована
	ErrLinkInactive = errors.New("booking link is inactive")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
