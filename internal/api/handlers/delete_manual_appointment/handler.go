package delete_manual_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgAppointmentNotFound  = "запись не найдена"
	msgAccessDenied         = "доступ запрещен"
	msgNotManual            = "удалять можно только записи, добавленные вручную"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/stylists/{stylistId}/manual-appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "требуется заголовок X-User-ID")
		return
	}

	appointmentID, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /stylists/{id}/manual-appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	if err := h.service.DeleteManual(r.Context(), appointmentID, userID); err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("DELETE /stylists/{id}/manual-appointments/{id} - Not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("DELETE /stylists/{id}/manual-appointments/{id} - Access denied: appointment_id=%d, user_id=%d",
				appointmentID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, appointments.ErrNotManual):
			h.logger.Warn("DELETE /stylists/{id}/manual-appointments/{id} - Not a manual entry: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, msgNotManual)

		default:
			h.logger.Error("DELETE /stylists/{id}/manual-appointments/{id} - Failed to delete: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /stylists/{id}/manual-appointments/{id} - Manual appointment deleted: appointment_id=%d, user_id=%d",
		appointmentID, userID)
	w.WriteHeader(http.StatusNoContent)
}
