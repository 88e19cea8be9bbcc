package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	createAppointment "github.com/m04kA/SMC-SalonService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgSlotNotAvailable    = "выбранное время недоступно"
	msgNoStylistAvailable  = "нет свободных стилистов на выбранное время"
	msgAutoAssignDisabled  = "автоподбор стилиста отключен"
	msgStylistNotFound     = "стилист не найден"
	msgServiceNotFound     = "услуга не найдена"
	msgServiceNotOffered   = "стилист не предоставляет эту услугу"
	msgUserNotFound        = "пользователь не найден"
	msgOutsideWorkingHours = "время вне рабочих часов стилиста"
	msgLinkNotFound        = "ссылка для записи не найдена"
	msgLinkInactive        = "ссылка для записи недоступна"
	msgGuestNotAllowed     = "гостевая запись по этой ссылке запрещена"
	msgDateTooFar          = "дата записи слишком далеко в будущем"
	msgInvalidBookingDate  = "некорректная дата записи"
	msgPaymentFailed       = "не удалось создать платежную сессию, запись не создана"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
//
// Маршрут доступен и без X-User-ID: гостевая запись проходит по коду
// ссылки стилиста, проверка принадлежности кода - в use case.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID := middleware.OptionalUserID(r)

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments - Slot not available: service_id=%d, time=%s", req.ServiceID, req.StartTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createAppointment.ErrNoStylistAvailable):
			h.logger.Warn("POST /appointments - No stylist available: service_id=%d, time=%s", req.ServiceID, req.StartTime)
			handlers.RespondConflict(w, msgNoStylistAvailable)

		case errors.Is(err, createAppointment.ErrAutoAssignDisabled):
			h.logger.Warn("POST /appointments - Auto-assign disabled")
			handlers.RespondBadRequest(w, msgAutoAssignDisabled)

		case errors.Is(err, createAppointment.ErrStylistNotFound):
			h.logger.Warn("POST /appointments - Stylist not found: stylist_id=%v", req.StylistID)
			handlers.RespondNotFound(w, msgStylistNotFound)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrServiceNotOffered):
			h.logger.Warn("POST /appointments - Service not offered: stylist_id=%v, service_id=%d", req.StylistID, req.ServiceID)
			handlers.RespondBadRequest(w, msgServiceNotOffered)

		case errors.Is(err, createAppointment.ErrUserNotFound):
			h.logger.Warn("POST /appointments - User not found")
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, createAppointment.ErrOutsideWorkingHours):
			h.logger.Warn("POST /appointments - Outside working hours: stylist_id=%v, time=%s", req.StylistID, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		case errors.Is(err, createAppointment.ErrLinkNotFound):
			h.logger.Warn("POST /appointments - Booking link not found")
			handlers.RespondNotFound(w, msgLinkNotFound)

		case errors.Is(err, createAppointment.ErrLinkInactive):
			h.logger.Warn("POST /appointments - Booking link inactive")
			handlers.RespondNotFound(w, msgLinkInactive)

		case errors.Is(err, createAppointment.ErrGuestNotAllowed):
			h.logger.Warn("POST /appointments - Guest booking not allowed")
			handlers.RespondForbidden(w, msgGuestNotAllowed)

		case errors.Is(err, createAppointment.ErrDateTooFarInFuture):
			h.logger.Warn("POST /appointments - Date too far in future: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Invalid date: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createAppointment.ErrPaymentFailed):
			h.logger.Error("POST /appointments - Payment session failed: service_id=%d", req.ServiceID)
			handlers.RespondError(w, http.StatusBadGateway, msgPaymentFailed)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: service_id=%d, error=%v", req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, stylist_id=%d",
		result.ID, result.StylistID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
