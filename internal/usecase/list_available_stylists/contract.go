package list_available_stylists

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	ListBlockingForDay(ctx context.Context, stylistID int64, date time.Time) ([]*domain.Appointment, error)
}

// StylistRepository интерфейс репозитория стилистов
type StylistRepository interface {
	ListWalkInCandidates(ctx context.Context) ([]*domain.Stylist, error)
}

// CatalogService интерфейс сервиса каталога
type CatalogService interface {
	ResolveServiceTerms(ctx context.Context, stylistID, serviceID int64) (*domain.ServiceTerms, error)
}

// SalonHours рабочее окно салона по умолчанию
type SalonHours struct {
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
