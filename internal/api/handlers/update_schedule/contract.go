package update_schedule

import (
	"context"

	catalogModels "github.com/m04kA/SMC-SalonService/internal/service/catalog/models"
)

type CatalogService interface {
	UpdateSchedule(ctx context.Context, stylistID int64, req *catalogModels.UpdateScheduleRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
