package update_schedule

// UpdateScheduleRequest HTTP request model
// nil-поля остаются без изменений
type UpdateScheduleRequest struct {
	WorkingHoursStart *string `json:"workingHoursStart,omitempty"` // "HH:MM"
	WorkingHoursEnd   *string `json:"workingHoursEnd,omitempty"`   // "HH:MM"
	AcceptsWalkIns    *bool   `json:"acceptsWalkIns,omitempty"`
	PriorityLevel     *int    `json:"priorityLevel,omitempty"`
	IsActive          *bool   `json:"isActive,omitempty"`
}
