package domain

import "github.com/m04kA/SMC-SalonService/pkg/types"

// Default scheduling values. The salon-wide working window comes from
// configuration and is passed into the slot generator explicitly; these
// are the fallbacks used when configuration is silent.
const (
	DefaultSlotCadenceMinutes = 30

	DefaultOpeningTime types.TimeString = "09:00"
	DefaultClosingTime types.TimeString = "18:00"
)

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 hours

	MinSlotCadenceMinutes = 5
	MaxSlotCadenceMinutes = 240

	MaxNotesLength        = 500
	MaxCustomerNameLength = 100

	DefaultBookingLinkAdvanceDays = 30
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BlockingStatuses are the statuses whose intervals occupy a stylist's
// calendar. Cancelled and completed appointments release their slot.
var BlockingStatuses = []AppointmentStatus{
	StatusReserved,
	StatusPaid,
}
