package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonService/pkg/ptr"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

func TestStylist_IsAvailableAt(t *testing.T) {
	stylist := &Stylist{
		IsActive:       true,
		AcceptsWalkIns: true,
	}

	open, close := types.TimeString("09:00"), types.TimeString("18:00")

	// Обе границы окна включительны
	assert.True(t, stylist.IsAvailableAt("09:00", open, close))
	assert.True(t, stylist.IsAvailableAt("18:00", open, close))
	assert.True(t, stylist.IsAvailableAt("12:30", open, close))

	assert.False(t, stylist.IsAvailableAt("08:59", open, close))
	assert.False(t, stylist.IsAvailableAt("18:01", open, close))
}

func TestStylist_IsAvailableAt_Flags(t *testing.T) {
	open, close := types.TimeString("09:00"), types.TimeString("18:00")

	inactive := &Stylist{IsActive: false, AcceptsWalkIns: true}
	assert.False(t, inactive.IsAvailableAt("12:00", open, close))

	noWalkIns := &Stylist{IsActive: true, AcceptsWalkIns: false}
	assert.False(t, noWalkIns.IsAvailableAt("12:00", open, close))
	// Но в явном бронировании участвует
	assert.True(t, noWalkIns.WorksAt("12:00", open, close))
}

func TestStylist_WorkingWindow_Override(t *testing.T) {
	stylist := &Stylist{
		IsActive:          true,
		AcceptsWalkIns:    true,
		WorkingHoursStart: ptr.Ptr(types.TimeString("11:00")),
		WorkingHoursEnd:   ptr.Ptr(types.TimeString("20:00")),
	}

	start, end := stylist.WorkingWindow("09:00", "18:00")
	assert.Equal(t, types.TimeString("11:00"), start)
	assert.Equal(t, types.TimeString("20:00"), end)

	assert.False(t, stylist.IsAvailableAt("10:00", "09:00", "18:00"))
	assert.True(t, stylist.IsAvailableAt("19:30", "09:00", "18:00"))
}
