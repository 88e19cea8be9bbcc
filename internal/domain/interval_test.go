package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

func mustInterval(t *testing.T, start types.TimeString, minutes int) Interval {
	t.Helper()
	iv, err := NewInterval(start, minutes)
	require.NoError(t, err)
	return iv
}

func TestInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a    Interval
		b    Interval
		want bool
	}{
		{
			name: "identical intervals",
			a:    Interval{"10:00", "11:00"},
			b:    Interval{"10:00", "11:00"},
			want: true,
		},
		{
			name: "partial overlap",
			a:    Interval{"10:00", "11:00"},
			b:    Interval{"10:30", "11:30"},
			want: true,
		},
		{
			name: "containment",
			a:    Interval{"09:00", "12:00"},
			b:    Interval{"10:00", "10:30"},
			want: true,
		},
		{
			name: "back to back is not a conflict",
			a:    Interval{"10:00", "11:00"},
			b:    Interval{"11:00", "12:00"},
			want: false,
		},
		{
			name: "disjoint",
			a:    Interval{"09:00", "09:30"},
			b:    Interval{"14:00", "15:00"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// overlaps(A,B) == overlaps(B,A)
			assert.Equal(t, tt.a.Overlaps(tt.b), tt.b.Overlaps(tt.a))
		})
	}
}

func TestNewInterval(t *testing.T) {
	iv := mustInterval(t, "09:00", 90)
	assert.Equal(t, types.TimeString("10:30"), iv.End)

	_, err := NewInterval("23:30", 60)
	assert.Error(t, err)
}

func TestInterval_Contains(t *testing.T) {
	iv := Interval{"10:00", "11:00"}

	assert.True(t, iv.Contains("10:00"))
	assert.True(t, iv.Contains("10:59"))
	// End is exclusive
	assert.False(t, iv.Contains("11:00"))
	assert.False(t, iv.Contains("09:59"))
}
