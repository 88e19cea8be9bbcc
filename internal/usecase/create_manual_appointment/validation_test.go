package create_manual_appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

func validManualRequest() *Request {
	return &Request{
		UserID:       7,
		CustomerName: "Анна",
		ServiceID:    ptr.Ptr(int64(3)),
		Date:         time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime:    "10:00",
	}
}

func TestValidateRequest_Valid(t *testing.T) {
	require.NoError(t, validateRequest(validManualRequest()))
}

func TestValidateRequest_ServicelessNeedsDuration(t *testing.T) {
	req := validManualRequest()
	req.ServiceID = nil
	req.DurationMinutes = nil

	err := validateRequest(req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req.DurationMinutes = ptr.Ptr(45)
	require.NoError(t, validateRequest(req))
}

func TestValidateRequest_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{
			name:   "missing customer name",
			mutate: func(req *Request) { req.CustomerName = "" },
		},
		{
			name:   "bad time format",
			mutate: func(req *Request) { req.StartTime = "10-00" },
		},
		{
			name:   "zero date",
			mutate: func(req *Request) { req.Date = time.Time{} },
		},
		{
			name:   "non-positive service id",
			mutate: func(req *Request) { req.ServiceID = ptr.Ptr(int64(0)) },
		},
		{
			name:   "duration below minimum",
			mutate: func(req *Request) { req.DurationMinutes = ptr.Ptr(1) },
		},
		{
			name:   "duration above maximum",
			mutate: func(req *Request) { req.DurationMinutes = ptr.Ptr(600) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validManualRequest()
			tt.mutate(req)
			assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
		})
	}
}

func TestValidateDate_PastDateRejected(t *testing.T) {
	now := time.Date(2025, 10, 15, 12, 30, 0, 0, time.UTC)

	// Сегодняшняя дата допустима даже после полудня
	assert.NoError(t, validateDate(time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), now))
	assert.NoError(t, validateDate(time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC), now))
	assert.ErrorIs(t, validateDate(time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC), now), ErrInvalidDate)
}
