package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// CancelAppointmentRequest запрос на отмену записи
type CancelAppointmentRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// GetUserAppointmentsRequest запрос на получение записей клиента
type GetUserAppointmentsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// GetStylistAppointmentsRequest запрос на получение записей стилиста
type GetStylistAppointmentsRequest struct {
	UserID          int64      `json:"userId"`
	StartDate       *time.Time `json:"startDate,omitempty"`
	EndDate         *time.Time `json:"endDate,omitempty"`
	Status          *string    `json:"status,omitempty"`
	IncludeInactive bool       `json:"includeInactive,omitempty"`
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	Kind            string  `json:"kind"`
	StylistID       int64   `json:"stylistId"`
	CustomerID      *int64  `json:"customerId,omitempty"`
	CustomerName    *string `json:"customerName,omitempty"`
	CustomerPhone   *string `json:"customerPhone,omitempty"`
	ServiceID       *int64  `json:"serviceId,omitempty"`
	BookingDate     string  `json:"bookingDate"` // "2025-10-15"
	StartTime       string  `json:"startTime"`   // "10:00"
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`

	RequiresPayment bool    `json:"requiresPayment"`
	TotalAmount     string  `json:"totalAmount"`
	ServiceName     *string `json:"serviceName,omitempty"`
	Notes           *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:                 a.ID,
		Kind:               string(a.Kind),
		StylistID:          a.StylistID,
		CustomerID:         a.CustomerID,
		CustomerName:       a.CustomerName,
		CustomerPhone:      a.CustomerPhone,
		ServiceID:          a.ServiceID,
		BookingDate:        a.BookingDate.Format(domain.DateFormat),
		StartTime:          a.StartTime.String(),
		DurationMinutes:    a.DurationMinutes,
		Status:             string(a.Status),
		RequiresPayment:    a.RequiresPayment,
		TotalAmount:        a.TotalAmount.StringFixed(2),
		ServiceName:        a.ServiceName,
		Notes:              a.Notes,
		CancellationReason: a.CancellationReason,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if a.CancelledAt != nil {
		cancelledStr := a.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	if appointments == nil {
		return &AppointmentListResponse{
			Appointments: []AppointmentResponse{},
		}
	}

	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, len(appointments)),
	}

	for i, apt := range appointments {
		if aptResp := FromDomainAppointment(apt); aptResp != nil {
			resp.Appointments[i] = *aptResp
		}
	}

	return resp
}

// ToDomainAppointmentStatus конвертирует строку в domain.AppointmentStatus с валидацией
func ToDomainAppointmentStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)

	validStatuses := []domain.AppointmentStatus{
		domain.StatusReserved,
		domain.StatusPaid,
		domain.StatusCancelled,
		domain.StatusCompleted,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
