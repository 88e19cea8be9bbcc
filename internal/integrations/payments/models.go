package payments

// CheckoutSession результат создания платежной сессии
type CheckoutSession struct {
	SessionID   string
	CheckoutURL string
}

// PaymentCompleted событие успешной оплаты из webhook
type PaymentCompleted struct {
	AppointmentID   int64
	PaymentIntentID string
}
