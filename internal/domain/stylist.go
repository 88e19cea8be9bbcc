package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Stylist is the unified staff entity: identity, schedule settings and
// auto-assignment knobs in one record. Stylists are never hard-deleted;
// deactivation preserves booking history.
type Stylist struct {
	ID              int64
	DisplayName     string
	Bio             string
	ExperienceYears int

	// Working window overrides. Nil means "use the salon-wide window"
	// threaded in from configuration.
	WorkingHoursStart *types.TimeString
	WorkingHoursEnd   *types.TimeString

	// AcceptsWalkIns controls participation in auto-assignment only;
	// explicitly requested bookings ignore it.
	AcceptsWalkIns bool

	// PriorityLevel orders stylists for auto-assignment; lower wins.
	PriorityLevel int

	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// WorkingWindow returns the stylist's working-hours window for a day,
// falling back to the salon-wide defaults where the record has no override.
func (s *Stylist) WorkingWindow(salonOpen, salonClose types.TimeString) (types.TimeString, types.TimeString) {
	start, end := salonOpen, salonClose
	if s.WorkingHoursStart != nil {
		start = *s.WorkingHoursStart
	}
	if s.WorkingHoursEnd != nil {
		end = *s.WorkingHoursEnd
	}
	return start, end
}

// IsAvailableAt reports whether the stylist can take a walk-in booking at
// the given wall-clock time. Both window ends are inclusive: a stylist
// finishing at 18:00 still accepts an 18:00 request. This differs from the
// half-open interval overlap test on purpose.
func (s *Stylist) IsAvailableAt(t types.TimeString, salonOpen, salonClose types.TimeString) bool {
	if !s.IsActive || !s.AcceptsWalkIns {
		return false
	}
	start, end := s.WorkingWindow(salonOpen, salonClose)
	return !t.IsBefore(start) && !t.IsAfter(end)
}

// WorksAt reports whether the wall-clock time falls inside the working
// window (inclusive), ignoring the walk-in and active flags. Used when a
// customer explicitly requests this stylist.
func (s *Stylist) WorksAt(t types.TimeString, salonOpen, salonClose types.TimeString) bool {
	start, end := s.WorkingWindow(salonOpen, salonClose)
	return !t.IsBefore(start) && !t.IsAfter(end)
}
