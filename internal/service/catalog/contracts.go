package catalog

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/infra/storage/stylist"
	"github.com/m04kA/SMC-SalonService/internal/integrations/identityservice"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	ListActive(ctx context.Context) ([]*domain.Service, error)
	GetOverride(ctx context.Context, stylistID, serviceID int64) (*domain.StylistService, error)
}

// StylistRepository интерфейс репозитория стилистов
type StylistRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Stylist, error)
	ListActive(ctx context.Context) ([]*domain.Stylist, error)
	UpdateSchedule(ctx context.Context, id int64, params stylist.UpdateScheduleParams) error
}

// IdentityClient интерфейс клиента IdentityService
type IdentityClient interface {
	GetUser(ctx context.Context, userID int64) (*identityservice.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
