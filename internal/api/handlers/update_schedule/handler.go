package update_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog"
	catalogModels "github.com/m04kA/SMC-SalonService/internal/service/catalog/models"
)

const (
	msgInvalidStylistID   = "некорректный ID стилиста"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgStylistNotFound    = "стилист не найден"
	msgAccessDenied       = "доступ запрещен"
	msgInvalidSchedule    = "некорректные параметры расписания"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/stylists/{stylistId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "требуется заголовок X-User-ID")
		return
	}

	stylistID, err := strconv.ParseInt(mux.Vars(r)["stylistId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /stylists/{id}/schedule - Invalid stylist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStylistID)
		return
	}

	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /stylists/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq := &catalogModels.UpdateScheduleRequest{
		UserID:            userID,
		WorkingHoursStart: req.WorkingHoursStart,
		WorkingHoursEnd:   req.WorkingHoursEnd,
		AcceptsWalkIns:    req.AcceptsWalkIns,
		PriorityLevel:     req.PriorityLevel,
		IsActive:          req.IsActive,
	}

	if err := h.service.UpdateSchedule(r.Context(), stylistID, serviceReq); err != nil {
		switch {
		case errors.Is(err, catalog.ErrStylistNotFound):
			h.logger.Warn("PUT /stylists/{id}/schedule - Stylist not found: stylist_id=%d", stylistID)
			handlers.RespondNotFound(w, msgStylistNotFound)

		case errors.Is(err, catalog.ErrAccessDenied):
			h.logger.Warn("PUT /stylists/{id}/schedule - Access denied: stylist_id=%d, user_id=%d", stylistID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /stylists/{id}/schedule - Invalid schedule: stylist_id=%d, error=%v", stylistID, err)
			handlers.RespondBadRequest(w, msgInvalidSchedule)

		default:
			h.logger.Error("PUT /stylists/{id}/schedule - Failed to update schedule: stylist_id=%d, error=%v", stylistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /stylists/{id}/schedule - Schedule updated: stylist_id=%d, user_id=%d", stylistID, userID)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}
