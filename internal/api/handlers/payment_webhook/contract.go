package payment_webhook

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/integrations/payments"
)

type PaymentsClient interface {
	ParseWebhook(payload []byte, sigHeader string) (*payments.PaymentCompleted, error)
}

type AppointmentsService interface {
	HandlePaymentCompleted(ctx context.Context, appointmentID int64, paymentIntentID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
