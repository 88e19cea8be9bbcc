package referralservice

import "errors"

var (
	// ErrCodeNotFound возвращается, когда реферальный код не существует
	// Вызывающий код игнорирует эту ошибку: бронирование не должно падать
	// из-за опечатки в необязательном поле
	ErrCodeNotFound = errors.New("referralservice client: referral code not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("referralservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("referralservice client: invalid response")
)
