package create_appointment

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

const (
	testOpen  = types.TimeString("09:00")
	testClose = types.TimeString("18:00")
)

func walkInStylist(id int64, priority int) *domain.Stylist {
	return &domain.Stylist{
		ID:             id,
		DisplayName:    "Stylist",
		AcceptsWalkIns: true,
		PriorityLevel:  priority,
		IsActive:       true,
	}
}

func offeredTerms(duration int) termsFor {
	return func(stylistID int64) (*domain.ServiceTerms, error) {
		return &domain.ServiceTerms{DurationMinutes: duration, Price: decimal.NewFromInt(1500)}, nil
	}
}

func emptyDay(stylistID int64) ([]*domain.Appointment, error) {
	return nil, nil
}

func blockedAt(start types.TimeString, minutes int) []*domain.Appointment {
	return []*domain.Appointment{
		{
			StylistID:       1,
			StartTime:       start,
			DurationMinutes: minutes,
			Status:          domain.StatusReserved,
		},
	}
}

func TestSelectStylist_PicksFirstByPriority(t *testing.T) {
	candidates := []*domain.Stylist{
		walkInStylist(1, 1),
		walkInStylist(2, 2),
	}

	stylist, terms, err := selectStylist(candidates, "10:00", testOpen, testClose, offeredTerms(60), emptyDay)

	require.NoError(t, err)
	assert.Equal(t, int64(1), stylist.ID)
	assert.Equal(t, 60, terms.DurationMinutes)
}

func TestSelectStylist_SkipsStylistNotOfferingService(t *testing.T) {
	candidates := []*domain.Stylist{
		walkInStylist(1, 1),
		walkInStylist(2, 2),
	}
	terms := func(stylistID int64) (*domain.ServiceTerms, error) {
		if stylistID == 1 {
			return nil, nil
		}
		return &domain.ServiceTerms{DurationMinutes: 45, Price: decimal.NewFromInt(2000)}, nil
	}

	stylist, picked, err := selectStylist(candidates, "10:00", testOpen, testClose, terms, emptyDay)

	require.NoError(t, err)
	assert.Equal(t, int64(2), stylist.ID)
	assert.Equal(t, 45, picked.DurationMinutes)
}

func TestSelectStylist_SkipsOverlappingAppointment(t *testing.T) {
	// У первого стилиста запись 10:00-11:30: клиент на 11:00 не должен
	// попасть к нему, хотя начала не совпадают
	candidates := []*domain.Stylist{
		walkInStylist(1, 1),
		walkInStylist(2, 2),
	}
	day := func(stylistID int64) ([]*domain.Appointment, error) {
		if stylistID == 1 {
			return blockedAt("10:00", 90), nil
		}
		return nil, nil
	}

	stylist, _, err := selectStylist(candidates, "11:00", testOpen, testClose, offeredTerms(60), day)

	require.NoError(t, err)
	assert.Equal(t, int64(2), stylist.ID)
}

func TestSelectStylist_BackToBackIsNotConflict(t *testing.T) {
	candidates := []*domain.Stylist{walkInStylist(1, 1)}
	day := func(stylistID int64) ([]*domain.Appointment, error) {
		return blockedAt("10:00", 60), nil
	}

	stylist, _, err := selectStylist(candidates, "11:00", testOpen, testClose, offeredTerms(60), day)

	require.NoError(t, err)
	assert.Equal(t, int64(1), stylist.ID)
}

func TestSelectStylist_WindowBoundsInclusive(t *testing.T) {
	candidates := []*domain.Stylist{walkInStylist(1, 1)}

	_, _, err := selectStylist(candidates, "09:00", testOpen, testClose, offeredTerms(30), emptyDay)
	require.NoError(t, err)

	_, _, err = selectStylist(candidates, "18:00", testOpen, testClose, offeredTerms(30), emptyDay)
	require.NoError(t, err)

	_, _, err = selectStylist(candidates, "08:59", testOpen, testClose, offeredTerms(30), emptyDay)
	assert.ErrorIs(t, err, ErrNoStylistAvailable)
}

func TestSelectStylist_RespectsPersonalWindow(t *testing.T) {
	late := walkInStylist(1, 1)
	start := types.TimeString("12:00")
	late.WorkingHoursStart = &start

	candidates := []*domain.Stylist{late, walkInStylist(2, 2)}

	stylist, _, err := selectStylist(candidates, "10:00", testOpen, testClose, offeredTerms(60), emptyDay)

	require.NoError(t, err)
	assert.Equal(t, int64(2), stylist.ID)
}

func TestSelectStylist_NoOneAvailable(t *testing.T) {
	candidates := []*domain.Stylist{
		walkInStylist(1, 1),
		walkInStylist(2, 2),
	}
	day := func(stylistID int64) ([]*domain.Appointment, error) {
		return blockedAt("10:00", 60), nil
	}

	stylist, terms, err := selectStylist(candidates, "10:30", testOpen, testClose, offeredTerms(60), day)

	assert.ErrorIs(t, err, ErrNoStylistAvailable)
	assert.Nil(t, stylist)
	assert.Nil(t, terms)
}

func TestSelectStylist_EmptyCandidates(t *testing.T) {
	_, _, err := selectStylist(nil, "10:00", testOpen, testClose, offeredTerms(60), emptyDay)
	assert.ErrorIs(t, err, ErrNoStylistAvailable)
}

func TestFitsCalendar_IgnoresAppointmentThatWouldCrossMidnight(t *testing.T) {
	requested, err := domain.NewInterval("23:00", 30)
	require.NoError(t, err)

	// Некорректная строка с выходом за полночь не блокирует календарь
	existing := []*domain.Appointment{
		{StartTime: "23:30", DurationMinutes: 120, Status: domain.StatusReserved},
	}

	assert.True(t, fitsCalendar(requested, existing))
}
