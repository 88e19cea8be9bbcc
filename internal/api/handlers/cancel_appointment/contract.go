package cancel_appointment

import (
	"context"

	aptModels "github.com/m04kA/SMC-SalonService/internal/service/appointments/models"
)

type AppointmentsService interface {
	Cancel(ctx context.Context, appointmentID int64, req *aptModels.CancelAppointmentRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
