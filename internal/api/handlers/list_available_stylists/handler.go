package list_available_stylists

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	listAvailableStylists "github.com/m04kA/SMC-SalonService/internal/usecase/list_available_stylists"
)

const (
	msgInvalidServiceID = "некорректный ID услуги"
	msgMissingDate      = "дата обязательна"
	msgMissingTime      = "время обязательно"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDateValue = "некорректная дата"
	msgServiceNotFound  = "услуга не найдена"
)

type Handler struct {
	useCase ListAvailableStylistsUseCase
	logger  Logger
}

func NewHandler(useCase ListAvailableStylistsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-stylists
// Query params: date (required, YYYY-MM-DD), time (required, HH:MM), serviceId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /available-stylists - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /available-stylists - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	timeStr := query.Get("time")
	if timeStr == "" {
		h.logger.Warn("GET /available-stylists - Missing time")
		handlers.RespondBadRequest(w, msgMissingTime)
		return
	}

	useCaseReq := &listAvailableStylists.Request{
		Date: date,
		Time: timeStr,
	}

	// serviceId опционален: с ним проверяется и интервал услуги
	if serviceIDStr := query.Get("serviceId"); serviceIDStr != "" {
		serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /available-stylists - Invalid service ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidServiceID)
			return
		}
		useCaseReq.ServiceID = &serviceID
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, listAvailableStylists.ErrServiceNotFound):
			h.logger.Warn("GET /available-stylists - Service not found")
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, listAvailableStylists.ErrInvalidDate):
			h.logger.Warn("GET /available-stylists - Invalid date: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgInvalidDateValue)

		case errors.Is(err, listAvailableStylists.ErrInvalidInput):
			h.logger.Warn("GET /available-stylists - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /available-stylists - Failed to list stylists: date=%s, time=%s, error=%v",
				dateStr, timeStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /available-stylists - Stylists retrieved successfully: date=%s, time=%s, count=%d",
		dateStr, timeStr, len(result.Stylists))
	handlers.RespondJSON(w, http.StatusOK, result)
}
