package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	createAppointment "github.com/m04kA/SMC-SalonService/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
//
// stylistId отсутствует - стилист подбирается автоматически.
// customerName/customerPhone нужны только для гостевой записи по коду.
type CreateAppointmentRequest struct {
	StylistID     *int64  `json:"stylistId,omitempty"`
	ServiceID     int64   `json:"serviceId"`
	Date          string  `json:"date"`      // "2025-10-15"
	StartTime     string  `json:"startTime"` // "10:00"
	Notes         *string `json:"notes,omitempty"`
	PayNow        bool    `json:"payNow,omitempty"`
	ReferralCode  *string `json:"referralCode,omitempty"`
	BookingCode   *string `json:"bookingCode,omitempty"`
	CustomerName  *string `json:"customerName,omitempty"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
}

// AppointmentCreatedResponse HTTP response model
type AppointmentCreatedResponse struct {
	ID              int64   `json:"id"`
	Kind            string  `json:"kind"`
	StylistID       int64   `json:"stylistId"`
	StylistName     string  `json:"stylistName"`
	ServiceID       int64   `json:"serviceId"`
	ServiceName     string  `json:"serviceName"`
	BookingDate     string  `json:"bookingDate"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	TotalAmount     string  `json:"totalAmount"`
	RequiresPayment bool    `json:"requiresPayment"`
	CheckoutURL     *string `json:"checkoutUrl,omitempty"`
	CreatedAt       string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(userID *int64) (*createAppointment.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		UserID:        userID,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		StylistID:     r.StylistID,
		ServiceID:     r.ServiceID,
		Date:          date,
		StartTime:     r.StartTime,
		Notes:         r.Notes,
		PayNow:        r.PayNow,
		ReferralCode:  r.ReferralCode,
		BookingCode:   r.BookingCode,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentCreatedResponse {
	return &AppointmentCreatedResponse{
		ID:              resp.ID,
		Kind:            resp.Kind,
		StylistID:       resp.StylistID,
		StylistName:     resp.StylistName,
		ServiceID:       resp.ServiceID,
		ServiceName:     resp.ServiceName,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime,
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		TotalAmount:     resp.TotalAmount,
		RequiresPayment: resp.RequiresPayment,
		CheckoutURL:     resp.CheckoutURL,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
