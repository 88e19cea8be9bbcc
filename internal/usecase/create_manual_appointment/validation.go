package create_manual_appointment

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.CustomerName == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}

	if len(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customer name is too long", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if _, err := types.NewTimeStringFromString(req.StartTime); err != nil {
		return fmt.Errorf("%w: startTime must be in HH:MM format", ErrInvalidInput)
	}

	if req.ServiceID != nil && *req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	// Без услуги длительность задает стилист
	if req.ServiceID == nil && req.DurationMinutes == nil {
		return fmt.Errorf("%w: durationMinutes is required when no service is given", ErrInvalidInput)
	}

	if req.DurationMinutes != nil && (*req.DurationMinutes < domain.MinServiceDurationMinutes || *req.DurationMinutes > domain.MaxServiceDurationMinutes) {
		return fmt.Errorf("%w: durationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом
func validateDate(requestDate time.Time, now time.Time) error {
	dateOnly := time.Date(requestDate.Year(), requestDate.Month(), requestDate.Day(), 0, 0, 0, 0, requestDate.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}
	return nil
}
