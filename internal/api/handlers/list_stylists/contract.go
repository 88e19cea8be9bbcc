package list_stylists

import (
	"context"

	catalogModels "github.com/m04kA/SMC-SalonService/internal/service/catalog/models"
)

type CatalogService interface {
	ListStylists(ctx context.Context) (*catalogModels.StylistListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
