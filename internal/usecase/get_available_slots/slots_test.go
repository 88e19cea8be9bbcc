package get_available_slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

func blocking(start types.TimeString, minutes int) *domain.Appointment {
	return &domain.Appointment{
		StartTime:       start,
		DurationMinutes: minutes,
		Status:          domain.StatusReserved,
	}
}

func starts(slots []domain.Slot) []string {
	result := make([]string, len(slots))
	for i, s := range slots {
		result[i] = s.StartTime.String()
	}
	return result
}

func TestGenerateSlots_EmptyDay(t *testing.T) {
	slots, err := generateSlots("09:00", "18:00", 60, 30, nil)
	require.NoError(t, err)

	// С 09:00 каждые 30 минут, последний часовой слот начинается в 17:00
	require.Len(t, slots, 17)
	assert.Equal(t, "09:00", slots[0].StartTime.String())
	assert.Equal(t, "10:00", slots[0].EndTime.String())
	assert.Equal(t, "17:00", slots[16].StartTime.String())
	assert.Equal(t, "18:00", slots[16].EndTime.String())
}

func TestGenerateSlots_ExistingAppointmentBlocksOverlaps(t *testing.T) {
	existing := []*domain.Appointment{blocking("10:00", 60)}

	slots, err := generateSlots("09:00", "18:00", 60, 30, existing)
	require.NoError(t, err)

	got := starts(slots)
	// Часовой слот пересекается с записью 10:00-11:00, если начинается
	// в 09:30, 10:00 или 10:30
	assert.NotContains(t, got, "09:30")
	assert.NotContains(t, got, "10:00")
	assert.NotContains(t, got, "10:30")

	// Граничные слоты не задеты: 09:00-10:00 и 11:00-12:00
	assert.Contains(t, got, "09:00")
	assert.Contains(t, got, "11:00")
}

func TestGenerateSlots_BackToBackIsAvailable(t *testing.T) {
	existing := []*domain.Appointment{blocking("09:00", 90)}

	slots, err := generateSlots("09:00", "18:00", 30, 30, existing)
	require.NoError(t, err)

	got := starts(slots)
	assert.NotContains(t, got, "09:00")
	assert.NotContains(t, got, "10:00")
	// Запись заканчивается в 10:30, слот с 10:30 свободен
	assert.Contains(t, got, "10:30")
}

func TestGenerateSlots_DurationLongerThanWindow(t *testing.T) {
	slots, err := generateSlots("09:00", "10:00", 90, 30, nil)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_LastSlotEndsExactlyAtClose(t *testing.T) {
	slots, err := generateSlots("16:00", "18:00", 120, 30, nil)
	require.NoError(t, err)

	// Единственный кандидат 16:00-18:00 заканчивается ровно в закрытие
	require.Len(t, slots, 1)
	assert.Equal(t, "16:00", slots[0].StartTime.String())
	assert.Equal(t, "18:00", slots[0].EndTime.String())
}

func TestGenerateSlots_CadenceIndependentOfDuration(t *testing.T) {
	slots, err := generateSlots("09:00", "12:00", 45, 30, nil)
	require.NoError(t, err)

	// Сетка идет по 30 минут, независимо от длительности услуги
	got := starts(slots)
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00"}, got)
}

func TestGenerateSlots_FullyBookedDay(t *testing.T) {
	existing := []*domain.Appointment{blocking("09:00", 540)}

	slots, err := generateSlots("09:00", "18:00", 30, 30, existing)
	require.NoError(t, err)
	assert.Empty(t, slots)
}
