package create_appointment

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/integrations/identityservice"
	"github.com/m04kA/SMC-SalonService/internal/integrations/notificationservice"
	"github.com/m04kA/SMC-SalonService/internal/integrations/payments"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, apt *domain.Appointment) (*domain.Appointment, error)
	ListBlockingForDay(ctx context.Context, stylistID int64, date time.Time) ([]*domain.Appointment, error)
	Delete(ctx context.Context, id int64) error
}

// StylistRepository интерфейс репозитория стилистов
type StylistRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Stylist, error)
	ListWalkInCandidates(ctx context.Context) ([]*domain.Stylist, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// CatalogService интерфейс сервиса каталога
type CatalogService interface {
	ResolveServiceTerms(ctx context.Context, stylistID, serviceID int64) (*domain.ServiceTerms, error)
}

// BookingLinkRepository интерфейс репозитория ссылок для записи
type BookingLinkRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.BookingLink, error)
}

// IdentityClient интерфейс клиента IdentityService
type IdentityClient interface {
	GetUser(ctx context.Context, userID int64) (*identityservice.User, error)
}

// PaymentsClient интерфейс платежного клиента
type PaymentsClient interface {
	CreateCheckoutSession(appointmentID int64, serviceName string, amount decimal.Decimal) (*payments.CheckoutSession, error)
}

// ReferralClient интерфейс клиента ReferralService
type ReferralClient interface {
	Attach(ctx context.Context, code string, customerID, appointmentID int64) error
}

// NotificationClient интерфейс клиента NotificationService
type NotificationClient interface {
	SendAppointmentEventAsync(event notificationservice.AppointmentEvent)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Settings настройки салона для создания записей
type Settings struct {
	Open              types.TimeString
	Close             types.TimeString
	AutoAssignEnabled bool
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
