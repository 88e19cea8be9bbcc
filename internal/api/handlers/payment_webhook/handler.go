package payment_webhook

import (
	"errors"
	"io"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/integrations/payments"
)

const (
	msgInvalidPayload   = "некорректное тело запроса"
	msgInvalidSignature = "некорректная подпись запроса"

	// Тела webhook-запросов ограничены, чтобы не читать произвольный объём
	maxPayloadBytes = 1 << 16
)

type Handler struct {
	payments PaymentsClient
	service  AppointmentsService
	logger   Logger
}

func NewHandler(paymentsClient PaymentsClient, service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		payments: paymentsClient,
		service:  service,
		logger:   logger,
	}
}

// Handle POST /api/v1/payments/webhook
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxPayloadBytes))
	if err != nil {
		h.logger.Warn("POST /payments/webhook - Failed to read payload: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPayload)
		return
	}
	defer r.Body.Close()

	completed, err := h.payments.ParseWebhook(payload, r.Header.Get("Stripe-Signature"))
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrInvalidSignature):
			h.logger.Warn("POST /payments/webhook - Invalid signature")
			handlers.RespondBadRequest(w, msgInvalidSignature)

		case errors.Is(err, payments.ErrUnhandledEvent):
			// Неинтересные события подтверждаем, чтобы шлюз не повторял их
			h.logger.Info("POST /payments/webhook - Unhandled event type, acknowledged")
			handlers.RespondJSON(w, http.StatusOK, nil)

		default:
			h.logger.Warn("POST /payments/webhook - Failed to parse webhook: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPayload)
		}
		return
	}

	if err := h.service.HandlePaymentCompleted(r.Context(), completed.AppointmentID, completed.PaymentIntentID); err != nil {
		// 5xx заставит шлюз повторить доставку
		h.logger.Error("POST /payments/webhook - Failed to handle payment: appointment_id=%d, error=%v",
			completed.AppointmentID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /payments/webhook - Payment completed: appointment_id=%d", completed.AppointmentID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
