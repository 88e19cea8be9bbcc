package list_available_stylists

import (
	"context"

	listAvailableStylists "github.com/m04kA/SMC-SalonService/internal/usecase/list_available_stylists"
)

type ListAvailableStylistsUseCase interface {
	Execute(ctx context.Context, req *listAvailableStylists.Request) (*listAvailableStylists.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
