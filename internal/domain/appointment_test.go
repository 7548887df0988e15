package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CMS-SchedulingService/pkg/types"
)

func TestOverlaps(t *testing.T) {
	// Existing appointment occupies [09:00, 09:30)
	appt := &Appointment{
		StartTime:       "09:00",
		DurationMinutes: 30,
		Status:          StatusScheduled,
	}

	tests := []struct {
		name     string
		start    types.TimeString
		duration int
		want     bool
	}{
		{"identical interval", "09:00", 30, true},
		{"candidate starts inside", "09:15", 30, true},
		{"candidate ends inside", "08:45", 30, true},
		{"candidate covers existing", "08:30", 90, true},
		{"candidate inside existing", "09:10", 15, true},
		{"touching at existing end does not overlap", "09:30", 30, false},
		{"touching at existing start does not overlap", "08:30", 30, false},
		{"disjoint before", "08:00", 15, false},
		{"disjoint after", "10:00", 30, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, appt.Overlaps(tt.start, tt.duration))
		})
	}
}

func TestEndTime(t *testing.T) {
	appt := &Appointment{StartTime: "11:45", DurationMinutes: 30}

	end, err := appt.EndTime()

	require.NoError(t, err)
	assert.Equal(t, types.TimeString("12:15"), end)
}

func TestBlocksSlot(t *testing.T) {
	blocking := []AppointmentStatus{StatusScheduled, StatusConfirmed, StatusInProgress}
	for _, status := range blocking {
		appt := &Appointment{Status: status}
		assert.True(t, appt.BlocksSlot(), "status %s should block its slot", status)
	}

	freeing := []AppointmentStatus{StatusCancelled, StatusCompleted, StatusMissed}
	for _, status := range freeing {
		appt := &Appointment{Status: status}
		assert.False(t, appt.BlocksSlot(), "status %s should free its slot", status)
	}
}

func TestDefaultDurationForKind(t *testing.T) {
	assert.Equal(t, 30, DefaultDurationForKind(KindConsultation))
	assert.Equal(t, 15, DefaultDurationForKind(KindFollowUp))
	assert.Equal(t, 60, DefaultDurationForKind(KindProcedure))
	assert.Equal(t, 30, DefaultDurationForKind(KindEmergency))
}
