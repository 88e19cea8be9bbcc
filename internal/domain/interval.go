package domain

import "github.com/m04kA/SMC-SalonService/pkg/types"

// Interval is a half-open time range [Start, End) within one day.
// All interval arithmetic is whole minutes; sub-minute precision is not
// supported anywhere in the scheduling core.
type Interval struct {
	Start types.TimeString
	End   types.TimeString
}

// NewInterval builds [start, start+durationMinutes). Fails when the
// interval would cross midnight.
func NewInterval(start types.TimeString, durationMinutes int) (Interval, error) {
	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: start, End: end}, nil
}

// Overlaps reports whether two half-open intervals intersect:
// a.Start < b.End AND b.Start < a.End. An interval ending exactly where
// another begins is NOT a conflict.
func (a Interval) Overlaps(b Interval) bool {
	return a.Start.IsBefore(b.End) && b.Start.IsBefore(a.End)
}

// Contains reports whether t lies inside the half-open interval.
func (a Interval) Contains(t types.TimeString) bool {
	return !t.IsBefore(a.Start) && t.IsBefore(a.End)
}
