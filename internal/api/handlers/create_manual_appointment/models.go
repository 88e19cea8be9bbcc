package create_manual_appointment

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	createManualAppointment "github.com/m04kA/SMC-SalonService/internal/usecase/create_manual_appointment"
)

// CreateManualAppointmentRequest HTTP request model
type CreateManualAppointmentRequest struct {
	CustomerName    string  `json:"customerName"`
	CustomerPhone   *string `json:"customerPhone,omitempty"`
	ServiceID       *int64  `json:"serviceId,omitempty"`
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
	Date            string  `json:"date"`      // "2025-10-15"
	StartTime       string  `json:"startTime"` // "10:00"
	Notes           *string `json:"notes,omitempty"`
}

// ManualAppointmentResponse HTTP response model
type ManualAppointmentResponse struct {
	ID              int64   `json:"id"`
	Kind            string  `json:"kind"`
	StylistID       int64   `json:"stylistId"`
	CustomerName    string  `json:"customerName"`
	ServiceID       *int64  `json:"serviceId,omitempty"`
	ServiceName     *string `json:"serviceName,omitempty"`
	BookingDate     string  `json:"bookingDate"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	TotalAmount     string  `json:"totalAmount"`
	CreatedAt       string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateManualAppointmentRequest) ToUseCaseRequest(userID int64) (*createManualAppointment.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createManualAppointment.Request{
		UserID:          userID,
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		ServiceID:       r.ServiceID,
		DurationMinutes: r.DurationMinutes,
		Date:            date,
		StartTime:       r.StartTime,
		Notes:           r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createManualAppointment.Response) *ManualAppointmentResponse {
	return &ManualAppointmentResponse{
		ID:              resp.ID,
		Kind:            resp.Kind,
		StylistID:       resp.StylistID,
		CustomerName:    resp.CustomerName,
		ServiceID:       resp.ServiceID,
		ServiceName:     resp.ServiceName,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime,
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		TotalAmount:     resp.TotalAmount,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
