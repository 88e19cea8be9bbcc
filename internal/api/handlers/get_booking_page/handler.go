package get_booking_page

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/service/bookinglinks"
)

const (
	msgMissingCode  = "код ссылки обязателен"
	msgLinkNotFound = "ссылка для записи не найдена"
	msgLinkInactive = "ссылка для записи недоступна"
)

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

// Handle GET /api/v1/booking-code/{code}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	if code == "" {
		handlers.RespondBadRequest(w, msgMissingCode)
		return
	}

	result, err := h.service.ResolveCode(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, bookinglinks.ErrLinkNotFound):
			h.logger.Warn("GET /booking-code/{code} - Link not found")
			handlers.RespondNotFound(w, msgLinkNotFound)

		case errors.Is(err, bookinglinks.ErrLinkInactive):
			h.logger.Warn("GET /booking-code/{code} - Link inactive")
			handlers.RespondNotFound(w, msgLinkInactive)

		default:
			h.logger.Error("GET /booking-code/{code} - Failed to resolve code: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /booking-code/{code} - Booking page resolved: stylist_id=%d", result.StylistID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
