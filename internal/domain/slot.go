package domain

import "github.com/m04kA/SMC-SalonService/pkg/types"

// Slot is a candidate bookable interval of the required duration within a
// stylist's working window.
type Slot struct {
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
}

// Interval returns the slot as a half-open interval.
func (s Slot) Interval() Interval {
	return Interval{Start: s.StartTime, End: s.EndTime}
}
