package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// ListBlockingForDay получает активные записи стилиста на дату
	// с пересчитанной длительностью
	ListBlockingForDay(ctx context.Context, stylistID int64, date time.Time) ([]*domain.Appointment, error)
}

// StylistRepository интерфейс репозитория стилистов
type StylistRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Stylist, error)
}

// CatalogService интерфейс сервиса каталога
type CatalogService interface {
	ResolveServiceTerms(ctx context.Context, stylistID, serviceID int64) (*domain.ServiceTerms, error)
}

// SalonHours салонное окно работы и шаг сетки слотов из конфигурации
type SalonHours struct {
	Open           types.TimeString
	Close          types.TimeString
	CadenceMinutes int
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
