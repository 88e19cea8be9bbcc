package complete_appointment

import (
	"context"
)

type AppointmentsService interface {
	Complete(ctx context.Context, appointmentID int64, userID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
