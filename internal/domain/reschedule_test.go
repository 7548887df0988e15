package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateReschedule(t *testing.T) {
	now := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		appt   *Appointment
		want   bool
		reason RescheduleDenialReason
	}{
		{
			name: "scheduled with 48 hours of lead time",
			appt: &Appointment{
				Date: time.Date(2026, 9, 17, 0, 0, 0, 0, time.UTC), StartTime: "10:00",
				DurationMinutes: 30, Status: StatusScheduled,
			},
			want:   true,
			reason: DenialNone,
		},
		{
			name: "exactly 24 hours of lead time is allowed",
			appt: &Appointment{
				Date: time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC), StartTime: "10:00",
				DurationMinutes: 30, Status: StatusScheduled,
			},
			want:   true,
			reason: DenialNone,
		},
		{
			name: "one minute short of the lead time is denied",
			appt: &Appointment{
				Date: time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC), StartTime: "09:59",
				DurationMinutes: 30, Status: StatusScheduled,
			},
			want:   false,
			reason: DenialInsideLeadTime,
		},
		{
			name: "scheduled later today is inside the lead time",
			appt: &Appointment{
				Date: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), StartTime: "18:00",
				DurationMinutes: 30, Status: StatusScheduled,
			},
			want:   false,
			reason: DenialInsideLeadTime,
		},
		{
			name: "already past",
			appt: &Appointment{
				Date: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), StartTime: "08:00",
				DurationMinutes: 30, Status: StatusScheduled,
			},
			want:   false,
			reason: DenialAlreadyPast,
		},
		{
			name: "starting exactly now counts as past",
			appt: &Appointment{
				Date: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), StartTime: "10:00",
				DurationMinutes: 30, Status: StatusScheduled,
			},
			want:   false,
			reason: DenialAlreadyPast,
		},
		{
			name: "confirmed is denied even far in the future",
			appt: &Appointment{
				Date: time.Date(2026, 9, 17, 0, 0, 0, 0, time.UTC), StartTime: "10:00",
				DurationMinutes: 30, Status: StatusConfirmed,
			},
			want:   false,
			reason: DenialWrongStatus,
		},
		{
			name: "cancelled is denied",
			appt: &Appointment{
				Date: time.Date(2026, 9, 17, 0, 0, 0, 0, time.UTC), StartTime: "10:00",
				DurationMinutes: 30, Status: StatusCancelled,
			},
			want:   false,
			reason: DenialWrongStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, reason := EvaluateReschedule(tt.appt, now)
			assert.Equal(t, tt.want, ok)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

func TestCanReschedule(t *testing.T) {
	now := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)
	appt := &Appointment{
		Date:            time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		DurationMinutes: 30,
		Status:          StatusScheduled,
	}

	assert.True(t, CanReschedule(appt, now))

	appt.Status = StatusCompleted
	assert.False(t, CanReschedule(appt, now))
}
