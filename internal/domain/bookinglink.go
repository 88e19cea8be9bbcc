package domain

import "time"

// BookingLink is a stylist's shareable booking-page configuration. The
// code is opaque and regenerable; regenerating invalidates the old URL
// without touching existing appointments.
type BookingLink struct {
	ID                int64
	StylistID         int64
	Code              string
	IsActive          bool
	MaxAdvanceDays    int
	AllowGuestBooking bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AcceptsDate reports whether the link allows booking the given date:
// not in the past and within the advance horizon (0 = unlimited).
func (l *BookingLink) AcceptsDate(date, today time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	todayOnly := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	if dateOnly.Before(todayOnly) {
		return false
	}
	if l.MaxAdvanceDays <= 0 {
		return true
	}
	return !dateOnly.After(todayOnly.AddDate(0, 0, l.MaxAdvanceDays))
}
