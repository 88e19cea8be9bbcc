package get_stylist_appointments

import (
	"context"

	aptModels "github.com/m04kA/SMC-SalonService/internal/service/appointments/models"
)

type AppointmentsService interface {
	GetStylistAppointments(ctx context.Context, req *aptModels.GetStylistAppointmentsRequest) (*aptModels.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
