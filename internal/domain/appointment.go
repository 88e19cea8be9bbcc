package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	StatusReserved  AppointmentStatus = "RESERVED"
	StatusPaid      AppointmentStatus = "PAID"
	StatusCancelled AppointmentStatus = "CANCELLED"
	StatusCompleted AppointmentStatus = "COMPLETED"
)

// AppointmentKind distinguishes how an appointment entered the system
type AppointmentKind string

const (
	// KindOnline is a regular customer booking with an explicitly chosen stylist
	KindOnline AppointmentKind = "online"
	// KindWalkIn is a booking without a requested stylist, assigned automatically
	KindWalkIn AppointmentKind = "walk_in"
	// KindManual is a stylist-entered booking with free-text customer identity
	KindManual AppointmentKind = "manual"
)

// Appointment represents a booked interval on a stylist's calendar.
//
// DurationMinutes is the effective duration of this row's interval. For
// online and walk-in appointments it is re-resolved on every read from the
// current StylistService override (so editing an override retroactively
// moves the interval); for manual appointments it is the stylist-supplied
// value stored on the row.
type Appointment struct {
	ID        int64
	Kind      AppointmentKind
	StylistID int64

	// Customer identity: account reference for online/walk-in bookings,
	// free text for manual and guest ones.
	CustomerID    *int64
	CustomerName  *string
	CustomerPhone *string

	ServiceID       *int64
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          AppointmentStatus

	RequiresPayment bool
	PaymentIntentID *string
	TotalAmount     decimal.Decimal

	// Denormalized for history: service data as of booking time
	ServiceName *string

	Notes              *string
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Blocks reports whether this appointment occupies its interval on the
// stylist's calendar (RESERVED or PAID).
func (a *Appointment) Blocks() bool {
	return a.Status == StatusReserved || a.Status == StatusPaid
}

// IsCancelled reports whether the appointment has been cancelled.
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// CanBeCancelled reports whether a transition to CANCELLED is allowed.
// Any non-terminal state may be cancelled.
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusReserved || a.Status == StatusPaid
}

// CanBeCompleted reports whether a transition to COMPLETED is allowed.
func (a *Appointment) CanBeCompleted() bool {
	return a.Status == StatusReserved || a.Status == StatusPaid
}

// CanBePaid reports whether the RESERVED -> PAID transition is allowed.
func (a *Appointment) CanBePaid() bool {
	return a.Status == StatusReserved
}

// Interval returns the half-open interval this appointment occupies.
func (a *Appointment) Interval() (Interval, error) {
	return NewInterval(a.StartTime, a.DurationMinutes)
}

// StylistDayFilter selects appointments of one stylist on one date.
type StylistDayFilter struct {
	StylistID       int64
	Date            time.Time
	IncludeInactive bool // include CANCELLED and COMPLETED rows
}

// StylistAppointmentsFilter selects a stylist's appointments over an
// optional date range and status.
type StylistAppointmentsFilter struct {
	StylistID       int64
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *AppointmentStatus
	IncludeInactive bool
}
