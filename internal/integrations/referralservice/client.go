package referralservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы с ReferralService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента ReferralService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

type attachRequest struct {
	Code          string `json:"code"`
	CustomerID    int64  `json:"customer_id"`
	AppointmentID int64  `json:"appointment_id"`
}

type markSuccessRequest struct {
	AppointmentID int64 `json:"appointment_id"`
}

// Attach привязывает реферальный код к созданной записи
// Возвращает ErrCodeNotFound для несуществующего кода
func (c *Client) Attach(ctx context.Context, code string, customerID, appointmentID int64) error {
	url := fmt.Sprintf("%s/internal/referrals/attach", c.baseURL)
	return c.post(ctx, url, attachRequest{
		Code:          code,
		CustomerID:    customerID,
		AppointmentID: appointmentID,
	})
}

// MarkSuccess помечает реферал успешным после оплаты записи
func (c *Client) MarkSuccess(ctx context.Context, appointmentID int64) error {
	url := fmt.Sprintf("%s/internal/referrals/success", c.baseURL)
	return c.post(ctx, url, markSuccessRequest{AppointmentID: appointmentID})
}

func (c *Client) post(ctx context.Context, url string, body interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
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

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return ErrCodeNotFound
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}
