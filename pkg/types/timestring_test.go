package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = NewTimeStringFromString("9:30am")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("09:00")

	end, err := ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), end)

	// Переход через полночь запрещён
	_, err = TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrOutOfRange)

	back, err := TimeString("10:30").AddMinutes(-30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:00"), back)
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:01"))
	assert.False(t, TimeString("09:01").IsBefore("09:00"))
	assert.True(t, TimeString("18:00").IsAfter("17:59"))
	assert.True(t, TimeString("12:00").Equal("12:00"))
	assert.False(t, TimeString("12:00").Equal("12:01"))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:30:00"))
	assert.Equal(t, TimeString("10:30"), ts)

	require.NoError(t, ts.Scan([]byte("08:15:00")))
	assert.Equal(t, TimeString("08:15"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, 10, 15, 14, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("14:45"), ts)

	assert.Error(t, ts.Scan(42))
}
