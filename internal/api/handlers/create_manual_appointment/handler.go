package create_manual_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	createManualAppointment "github.com/m04kA/SMC-SalonService/internal/usecase/create_manual_appointment"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgNotStylist          = "пользователь не является стилистом"
	msgStylistNotFound     = "стилист не найден"
	msgServiceNotFound     = "услуга не найдена"
	msgServiceNotOffered   = "стилист не предоставляет эту услугу"
	msgSlotNotAvailable    = "выбранное время занято"
	msgOutsideWorkingHours = "время вне рабочих часов стилиста"
	msgInvalidBookingDate  = "некорректная дата записи"
)

type Handler struct {
	useCase CreateManualAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateManualAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/stylists/{stylistId}/manual-appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "требуется заголовок X-User-ID")
		return
	}

	var req CreateManualAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /stylists/{id}/manual-appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /stylists/{id}/manual-appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createManualAppointment.ErrNotStylist):
			h.logger.Warn("POST /stylists/{id}/manual-appointments - Not a stylist: user_id=%d", userID)
			handlers.RespondForbidden(w, msgNotStylist)

		case errors.Is(err, createManualAppointment.ErrStylistNotFound):
			h.logger.Warn("POST /stylists/{id}/manual-appointments - Stylist not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgStylistNotFound)

		case errors.Is(err, createManualAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /stylists/{id}/manual-appointments - Service not found: service_id=%v", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createManualAppointment.ErrServiceNotOffered):
			h.logger.Warn("POST /stylists/{id}/manual-appointments - Service not offered: service_id=%v", req.ServiceID)
			handlers.RespondBadRequest(w, msgServiceNotOffered)

		case errors.Is(err, createManualAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /stylists/{id}/manual-appointments - Slot not available: time=%s", req.StartTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createManualAppointment.ErrOutsideWorkingHours):
			h.logger.Warn("POST /stylists/{id}/manual-appointments - Outside working hours: time=%s", req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		case errors.Is(err, createManualAppointment.ErrInvalidDate):
			h.logger.Warn("POST /stylists/{id}/manual-appointments - Invalid date: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createManualAppointment.ErrInvalidInput):
			h.logger.Warn("POST /stylists/{id}/manual-appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /stylists/{id}/manual-appointments - Failed to create: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /stylists/{id}/manual-appointments - Manual appointment created: appointment_id=%d, stylist_id=%d",
		result.ID, result.StylistID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
