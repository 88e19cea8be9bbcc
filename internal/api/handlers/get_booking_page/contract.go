package get_booking_page

import (
	"context"

	linkModels "github.com/m04kA/SMC-SalonService/internal/service/bookinglinks/models"
)

type BookingLinksService interface {
	ResolveCode(ctx context.Context, code string) (*linkModels.BookingPageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
