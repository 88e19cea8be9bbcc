package get_booking_link

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/service/bookinglinks"
)

const msgAccessDenied = "доступ запрещен"

type Handler struct {
	service BookingLinksService
	logger  Logger
}

func NewHandler(service BookingLinksService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/stylists/{stylistId}/booking-link
// Ссылка создается лениво при первом запросе
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "требуется заголовок X-User-ID")
		return
	}

	result, err := h.service.GetOrCreate(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, bookinglinks.ErrAccessDenied):
			h.logger.Warn("GET /stylists/{id}/booking-link - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /stylists/{id}/booking-link - Failed to get link: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /stylists/{id}/booking-link - Link retrieved: user_id=%d", userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
