package payments

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v79"
	checkoutsession "github.com/stripe/stripe-go/v79/checkout/session"
	"github.com/stripe/stripe-go/v79/webhook"
)

const webhookTolerance = 5 * time.Minute

// Config настройки платежного клиента
type Config struct {
	MockMode        bool
	MockCheckoutURL string
	SecretKey       string
	WebhookSecret   string
	SuccessURL      string
	CancelURL       string
	Currency        string
}

// Client клиент для работы с платежами через Stripe Checkout
//
// В mock-режиме сессия не создается: клиент возвращает ссылку на локальную
// страницу оплаты, а подпись webhook не проверяется. Используется в
// разработке и интеграционных тестах.
type Client struct {
	cfg Config
	log Logger
}

// NewClient создает новый экземпляр платежного клиента
func NewClient(cfg Config, log Logger) *Client {
	if !cfg.MockMode {
		stripe.Key = cfg.SecretKey
	}
	return &Client{cfg: cfg, log: log}
}

// CreateCheckoutSession создает платежную сессию для записи
// Сумма передается в минимальных единицах валюты (для JPY это иены)
func (c *Client) CreateCheckoutSession(appointmentID int64, serviceName string, amount decimal.Decimal) (*CheckoutSession, error) {
	if c.cfg.MockMode {
		url := fmt.Sprintf("%s?appointment_id=%d&amount=%s", c.cfg.MockCheckoutURL, appointmentID, amount.Round(0).String())
		c.log.Info("Mock checkout session for appointment %d: %s", appointmentID, url)
		return &CheckoutSession{
			SessionID:   fmt.Sprintf("mock_%d", appointmentID),
			CheckoutURL: url,
		}, nil
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(c.cfg.SuccessURL),
		CancelURL:          stripe.String(c.cfg.CancelURL),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(c.cfg.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(serviceName),
					},
					UnitAmount: stripe.Int64(amount.Round(0).IntPart()),
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.AddMetadata("appointment_id", strconv.FormatInt(appointmentID, 10))

	sess, err := checkoutsession.New(params)
	if err != nil {
		return nil, fmt.Errorf("%w: appointment_id=%d: %v", ErrCheckoutFailed, appointmentID, err)
	}

	return &CheckoutSession{
		SessionID:   sess.ID,
		CheckoutURL: sess.URL,
	}, nil
}

// ParseWebhook проверяет подпись webhook и извлекает событие успешной оплаты
// Возвращает ErrUnhandledEvent для всех событий кроме checkout.session.completed
func (c *Client) ParseWebhook(payload []byte, sigHeader string) (*PaymentCompleted, error) {
	var session stripe.CheckoutSession

	if c.cfg.MockMode {
		// В mock-режиме принимаем тело как готовый объект сессии без подписи
		if err := json.Unmarshal(payload, &session); err != nil {
			return nil, fmt.Errorf("%w: mock payload: %v", ErrInvalidSignature, err)
		}
	} else {
		evt, err := webhook.ConstructEventWithTolerance(payload, sigHeader, c.cfg.WebhookSecret, webhookTolerance)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
		}

		if evt.Type != "checkout.session.completed" {
			return nil, fmt.Errorf("%w: %s", ErrUnhandledEvent, evt.Type)
		}

		if err := json.Unmarshal(evt.Data.Raw, &session); err != nil {
			return nil, fmt.Errorf("%w: event data: %v", ErrInvalidSignature, err)
		}
	}

	rawID, ok := session.Metadata["appointment_id"]
	if !ok {
		return nil, fmt.Errorf("%w: missing appointment_id metadata", ErrUnhandledEvent)
	}

	appointmentID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad appointment_id metadata %q", ErrUnhandledEvent, rawID)
	}

	result := &PaymentCompleted{AppointmentID: appointmentID}
	if session.PaymentIntent != nil {
		result.PaymentIntentID = session.PaymentIntent.ID
	}

	return result, nil
}
