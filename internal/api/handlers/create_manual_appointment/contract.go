package create_manual_appointment

import (
	"context"

	createManualAppointment "github.com/m04kA/SMC-SalonService/internal/usecase/create_manual_appointment"
)

type CreateManualAppointmentUseCase interface {
	Execute(ctx context.Context, req *createManualAppointment.Request) (*createManualAppointment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
