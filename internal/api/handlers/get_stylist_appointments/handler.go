package get_stylist_appointments

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments"
	aptModels "github.com/m04kA/SMC-SalonService/internal/service/appointments/models"
)

const (
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStatus = "некорректный статус записи"
	msgAccessDenied  = "доступ запрещен"
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

// Handle GET /api/v1/stylists/{stylistId}/appointments
// Query params: date (optional), dateFrom/dateTo (optional), status (optional),
// includeInactive (optional). Календарь отдается только самому стилисту:
// принадлежность проверяется по аккаунту, а не по ID в пути.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "требуется заголовок X-User-ID")
		return
	}

	query := r.URL.Query()
	req := &aptModels.GetStylistAppointmentsRequest{
		UserID:          userID,
		IncludeInactive: query.Get("includeInactive") == "true",
	}

	// Одиночная дата - сокращение для dateFrom == dateTo
	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /stylists/{id}/appointments - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = &date
		req.EndDate = &date
	} else {
		if fromStr := query.Get("dateFrom"); fromStr != "" {
			from, err := time.Parse(domain.DateFormat, fromStr)
			if err != nil {
				h.logger.Warn("GET /stylists/{id}/appointments - Invalid dateFrom: %v", err)
				handlers.RespondBadRequest(w, msgInvalidDate)
				return
			}
			req.StartDate = &from
		}
		if toStr := query.Get("dateTo"); toStr != "" {
			to, err := time.Parse(domain.DateFormat, toStr)
			if err != nil {
				h.logger.Warn("GET /stylists/{id}/appointments - Invalid dateTo: %v", err)
				handlers.RespondBadRequest(w, msgInvalidDate)
				return
			}
			req.EndDate = &to
		}
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.GetStylistAppointments(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /stylists/{id}/appointments - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /stylists/{id}/appointments - Invalid status: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /stylists/{id}/appointments - Failed to get appointments: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /stylists/{id}/appointments - Appointments retrieved: user_id=%d, count=%d",
		userID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
