package create_manual_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/integrations/notificationservice"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, apt *domain.Appointment) (*domain.Appointment, error)
	ListBlockingForDay(ctx context.Context, stylistID int64, date time.Time) ([]*domain.Appointment, error)
}

// StylistRepository интерфейс репозитория стилистов
type StylistRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Stylist, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// CatalogService интерфейс сервиса каталога
type CatalogService interface {
	ResolveServiceTerms(ctx context.Context, stylistID, serviceID int64) (*domain.ServiceTerms, error)
}

// IdentityClient интерфейс клиента IdentityService
type IdentityClient interface {
	StylistIDForUser(ctx context.Context, userID int64) (int64, error)
}

// NotificationClient интерфейс клиента NotificationService
type NotificationClient interface {
	SendAppointmentEventAsync(event notificationservice.AppointmentEvent)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Settings настройки салона
type Settings struct {
	Open  types.TimeString
	Close types.TimeString
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
