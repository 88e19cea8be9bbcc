package payments

import "errors"

var (
	// ErrCheckoutFailed возвращается, когда не удалось создать платежную сессию
	// Вызывающий код обязан компенсировать уже созданную запись
	ErrCheckoutFailed = errors.New("payments client: failed to create checkout session")

	// ErrInvalidSignature возвращается при неверной подписи webhook
	ErrInvalidSignature = errors.New("payments client: invalid webhook signature")

	// ErrUnhandledEvent возвращается для событий, которые сервис не обрабатывает
	ErrUnhandledEvent = errors.New("payments client: unhandled event type")
)
