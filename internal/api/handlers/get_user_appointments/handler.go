package get_user_appointments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments"
	aptModels "github.com/m04kA/SMC-SalonService/internal/service/appointments/models"
)

const (
	msgInvalidUserID = "некорректный ID пользователя"
	msgAccessDenied  = "доступ запрещен"
	msgInvalidStatus = "некорректный статус записи"
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

// Handle GET /api/v1/users/{userId}/appointments
// Query params: status (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	authUserID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "требуется заголовок X-User-ID")
		return
	}

	pathUserID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /users/{id}/appointments - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	// Историю записей видит только их владелец
	if pathUserID != authUserID {
		h.logger.Warn("GET /users/{id}/appointments - Access denied: path_user=%d, auth_user=%d", pathUserID, authUserID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	req := &aptModels.GetUserAppointmentsRequest{
		UserID: pathUserID,
	}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.GetUserAppointments(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /users/{id}/appointments - Invalid status: user_id=%d", pathUserID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /users/{id}/appointments - Failed to get appointments: user_id=%d, error=%v", pathUserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{id}/appointments - Appointments retrieved: user_id=%d, count=%d",
		pathUserID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
