package bookinglink

import "errors"

var (
	// ErrLinkNotFound возвращается, когда ссылка для записи не найдена
	ErrLinkNotFound = errors.New("bookinglink.repository: booking link not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("bookinglink.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("bookinglink.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("bookinglink.repository: failed to scan row")
)
