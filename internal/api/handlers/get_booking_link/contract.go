package get_booking_link

import (
	"context"

	linkModels "github.com/m04kA/SMC-SalonService/internal/service/bookinglinks/models"
)

type BookingLinksService interface {
	GetOrCreate(ctx context.Context, userID int64) (*linkModels.BookingLinkResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
