package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartsAt(t *testing.T) {
	appt := &Appointment{
		ID:        "appt-1",
		Date:      time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		StartTime: "14:30",
	}

	start, err := appt.StartsAt()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 10, 14, 30, 0, 0, time.UTC), start)

	// Seconds on the wire are tolerated and ignored.
	appt.StartTime = "09:05:00"
	start, err = appt.StartsAt()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 10, 9, 5, 0, 0, time.UTC), start)

	for _, bad := range []string{"", "14", "25:00", "14:75", "xx:yy"} {
		appt.StartTime = bad
		_, err := appt.StartsAt()
		assert.Error(t, err, "start time %q", bad)
	}
}

func TestParseAppointmentStatus(t *testing.T) {
	for _, valid := range []string{"Pending", "Approved", "Cancelled", "Completed", "Rescheduled"} {
		status, err := ParseAppointmentStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, AppointmentStatus(valid), status)
	}

	_, err := ParseAppointmentStatus("NoShow")
	assert.ErrorContains(t, err, `unknown appointment status "NoShow"`)
}

func TestTerminalStatuses(t *testing.T) {
	assert.True(t, StatusCancelled.Terminal())
	assert.True(t, StatusCompleted.Terminal())
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusApproved.Terminal())
	assert.False(t, StatusRescheduled.Terminal())
}
