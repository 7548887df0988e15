package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CMS-SchedulingService/pkg/types"
)

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{"scheduled to confirmed", StatusScheduled, StatusConfirmed, true},
		{"scheduled to cancelled", StatusScheduled, StatusCancelled, true},
		{"scheduled to completed requires confirmation first", StatusScheduled, StatusCompleted, false},
		{"scheduled to inProgress", StatusScheduled, StatusInProgress, false},
		{"confirmed to inProgress", StatusConfirmed, StatusInProgress, true},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"confirmed to scheduled", StatusConfirmed, StatusScheduled, false},
		{"inProgress to completed", StatusInProgress, StatusCompleted, true},
		{"inProgress to cancelled", StatusInProgress, StatusCancelled, false},
		{"completed is terminal", StatusCompleted, StatusCancelled, false},
		{"cancelled is terminal", StatusCancelled, StatusScheduled, false},
		{"missed is terminal", StatusMissed, StatusScheduled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestTransitionTo(t *testing.T) {
	t.Run("allowed transition changes status", func(t *testing.T) {
		appt := &Appointment{Status: StatusScheduled}

		err := appt.TransitionTo(StatusConfirmed)

		require.NoError(t, err)
		assert.Equal(t, StatusConfirmed, appt.Status)
	})

	t.Run("rejected transition keeps status", func(t *testing.T) {
		appt := &Appointment{Status: StatusScheduled}

		err := appt.TransitionTo(StatusCompleted)

		require.ErrorIs(t, err, ErrInvalidTransition)
		assert.Equal(t, StatusScheduled, appt.Status)
	})
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, StatusScheduled.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.False(t, StatusInProgress.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusMissed.IsTerminal())
}

func TestParseStatus(t *testing.T) {
	status, err := ParseStatus("confirmed")
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, status)

	_, err = ParseStatus("postponed")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestEffectiveStatus(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)

	appointment := func(status AppointmentStatus, start types.TimeString) *Appointment {
		return &Appointment{
			Date:            date,
			StartTime:       start,
			DurationMinutes: 30,
			Status:          status,
		}
	}

	tests := []struct {
		name string
		appt *Appointment
		want AppointmentStatus
	}{
		{"scheduled in the past is presented as missed", appointment(StatusScheduled, "09:00"), StatusMissed},
		{"scheduled in the future stays scheduled", appointment(StatusScheduled, "15:00"), StatusScheduled},
		{"scheduled starting exactly now stays scheduled", appointment(StatusScheduled, "12:00"), StatusScheduled},
		{"confirmed in the past is not projected", appointment(StatusConfirmed, "09:00"), StatusConfirmed},
		{"completed is never projected", appointment(StatusCompleted, "09:00"), StatusCompleted},
		{"cancelled is never projected", appointment(StatusCancelled, "09:00"), StatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.appt.EffectiveStatus(now))
		})
	}
}

func TestEffectiveStatusIsReadOnly(t *testing.T) {
	appt := &Appointment{
		Date:            time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       "09:00",
		DurationMinutes: 30,
		Status:          StatusScheduled,
	}
	now := time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, StatusMissed, appt.EffectiveStatus(now))
	assert.Equal(t, StatusScheduled, appt.Status)
	// Same input, same output
	assert.Equal(t, StatusMissed, appt.EffectiveStatus(now))
}
