package get_user_appointments

import (
	"context"

	aptModels "github.com/m04kA/SMC-SalonService/internal/service/appointments/models"
)

type AppointmentsService interface {
	GetUserAppointments(ctx context.Context, req *aptModels.GetUserAppointmentsRequest) (*aptModels.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
