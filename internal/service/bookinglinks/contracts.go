package bookinglinks

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// BookingLinkRepository интерфейс репозитория ссылок для записи
type BookingLinkRepository interface {
	Create(ctx context.Context, link *domain.BookingLink) (*domain.BookingLink, error)
	GetByStylistID(ctx context.Context, stylistID int64) (*domain.BookingLink, error)
	GetByCode(ctx context.Context, code string) (*domain.BookingLink, error)
	UpdateCode(ctx context.Context, stylistID int64, code string) error
}

// StylistRepository интерфейс репозитория стилистов
type StylistRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Stylist, error)
}

// IdentityClient интерфейс клиента IdentityService
type IdentityClient interface {
	StylistIDForUser(ctx context.Context, userID int64) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
