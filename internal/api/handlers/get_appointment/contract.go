package get_appointment

import (
	"context"

	aptModels "github.com/m04kA/SMC-SalonService/internal/service/appointments/models"
)

type AppointmentsService interface {
	GetByID(ctx context.Context, id int64, userID int64) (*aptModels.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
