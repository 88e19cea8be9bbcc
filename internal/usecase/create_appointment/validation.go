package create_appointment

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if _, err := types.NewTimeStringFromString(req.StartTime); err != nil {
		return fmt.Errorf("%w: startTime must be in HH:MM format", ErrInvalidInput)
	}

	if req.StylistID != nil && *req.StylistID <= 0 {
		return fmt.Errorf("%w: stylistID must be positive", ErrInvalidInput)
	}

	// Гостевая запись: нужен код ссылки и контактные данные
	if req.UserID == nil {
		if req.BookingCode == nil || *req.BookingCode == "" {
			return fmt.Errorf("%w: guest booking requires a booking code", ErrInvalidInput)
		}
		if req.CustomerName == nil || *req.CustomerName == "" {
			return fmt.Errorf("%w: guest booking requires customer name", ErrInvalidInput)
		}
		if req.CustomerPhone == nil || *req.CustomerPhone == "" {
			return fmt.Errorf("%w: guest booking requires customer phone", ErrInvalidInput)
		}
		// Гость платит в салоне: нет аккаунта - нет онлайн-оплаты
		if req.PayNow {
			return fmt.Errorf("%w: guest booking does not support online payment", ErrInvalidInput)
		}
	}

	if req.CustomerName != nil && len(*req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customer name is too long", ErrInvalidInput)
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
