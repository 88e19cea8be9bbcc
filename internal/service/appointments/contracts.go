package appointments

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/integrations/notificationservice"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByCustomerID(ctx context.Context, customerID int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error)
	GetByStylistWithFilter(ctx context.Context, filter domain.StylistAppointmentsFilter) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
	MarkPaid(ctx context.Context, id int64, paymentIntentID string) error
	Cancel(ctx context.Context, id int64, reason string) error
	Delete(ctx context.Context, id int64) error
}

// StylistRepository интерфейс репозитория стилистов
type StylistRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Stylist, error)
}

// IdentityClient интерфейс клиента IdentityService
type IdentityClient interface {
	StylistIDForUser(ctx context.Context, userID int64) (int64, error)
}

// ReferralClient интерфейс клиента ReferralService
type ReferralClient interface {
	MarkSuccess(ctx context.Context, appointmentID int64) error
}

// NotificationClient интерфейс клиента NotificationService
type NotificationClient interface {
	SendAppointmentEventAsync(event notificationservice.AppointmentEvent)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
