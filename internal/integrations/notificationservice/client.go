package notificationservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы с NotificationService
//
// Уведомления не критичны для бизнес-операции: вызывающий код запускает
// отправку в фоне и только логирует ошибки, бронирование от них не зависит.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента NotificationService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendAppointmentEvent отправляет уведомление о событии с записью
func (c *Client) SendAppointmentEvent(ctx context.Context, event AppointmentEvent) error {
	url := fmt.Sprintf("%s/internal/notifications/appointments", c.baseURL)

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal event: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	return nil
}

// SendAppointmentEventAsync отправляет уведомление в фоне
// Ошибки только логируются, вызывающий код не блокируется
func (c *Client) SendAppointmentEventAsync(event AppointmentEvent) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := c.SendAppointmentEvent(ctx, event); err != nil {
			c.log.Error("Failed to send %s notification for appointment %d: %v", event.Event, event.AppointmentID, err)
			return
		}
		c.log.Info("Sent %s notification for appointment %d", event.Event, event.AppointmentID)
	}()
}
