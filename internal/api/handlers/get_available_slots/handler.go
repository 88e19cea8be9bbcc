package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-SalonService/internal/usecase/get_available_slots"
)

const (
	msgInvalidStylistID  = "некорректный ID стилиста"
	msgInvalidServiceID  = "некорректный ID услуги"
	msgMissingServiceID  = "ID услуги обязателен"
	msgMissingDate       = "дата обязательна"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDateValue  = "некорректная дата"
	msgStylistNotFound   = "стилист не найден"
	msgServiceNotFound   = "услуга не найдена"
	msgServiceNotOffered = "стилист не предоставляет эту услугу"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/stylists/{stylistId}/available-slots
// Query params: serviceId (required), date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем stylistId из URL
	stylistIDStr := vars["stylistId"]
	stylistID, err := strconv.ParseInt(stylistIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /stylists/{id}/available-slots - Invalid stylist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStylistID)
		return
	}

	// Извлекаем serviceId из query параметров
	serviceIDStr := r.URL.Query().Get("serviceId")
	if serviceIDStr == "" {
		h.logger.Warn("GET /stylists/{id}/available-slots - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /stylists/{id}/available-slots - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /stylists/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(stylistID, serviceID, dateStr)
	if err != nil {
		h.logger.Warn("GET /stylists/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, getAvailableSlots.ErrStylistNotFound):
			h.logger.Warn("GET /stylists/{id}/available-slots - Stylist not found: stylist_id=%d", stylistID)
			handlers.RespondNotFound(w, msgStylistNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /stylists/{id}/available-slots - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotOffered):
			h.logger.Warn("GET /stylists/{id}/available-slots - Service not offered: stylist_id=%d, service_id=%d",
				stylistID, serviceID)
			handlers.RespondBadRequest(w, msgServiceNotOffered)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /stylists/{id}/available-slots - Invalid date: stylist_id=%d, date=%s", stylistID, dateStr)
			handlers.RespondBadRequest(w, msgInvalidDateValue)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /stylists/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /stylists/{id}/available-slots - Failed to get slots: stylist_id=%d, service_id=%d, error=%v",
				stylistID, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /stylists/{id}/available-slots - Slots retrieved successfully: stylist_id=%d, service_id=%d, slots_count=%d",
		stylistID, serviceID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
