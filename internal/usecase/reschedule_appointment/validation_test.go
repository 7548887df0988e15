package reschedule_appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/CMS-SchedulingService/internal/domain"
)

func TestValidateRequest(t *testing.T) {
	valid := &Request{
		AppointmentID: 1,
		NewDate:       time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
		NewStartTime:  "14:30",
	}
	assert.NoError(t, validateRequest(valid))

	tests := []struct {
		name string
		req  *Request
	}{
		{"missing appointment ID", &Request{NewDate: valid.NewDate, NewStartTime: "14:30"}},
		{"missing date", &Request{AppointmentID: 1, NewStartTime: "14:30"}},
		{"missing time", &Request{AppointmentID: 1, NewDate: valid.NewDate}},
		{"malformed time", &Request{AppointmentID: 1, NewDate: valid.NewDate, NewStartTime: "2pm"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, validateRequest(tt.req), ErrInvalidInput)
		})
	}
}

func TestValidateNewSlot(t *testing.T) {
	now := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)

	t.Run("future slot is accepted", func(t *testing.T) {
		req := &Request{
			NewDate:      time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC),
			NewStartTime: "09:00",
		}
		assert.NoError(t, validateNewSlot(req, now))
	})

	t.Run("past slot is rejected", func(t *testing.T) {
		req := &Request{
			NewDate:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
			NewStartTime: "09:00",
		}
		assert.ErrorIs(t, validateNewSlot(req, now), ErrPastDateTime)
	})

	t.Run("slot starting exactly now is rejected", func(t *testing.T) {
		req := &Request{
			NewDate:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
			NewStartTime: "10:00",
		}
		assert.ErrorIs(t, validateNewSlot(req, now), ErrPastDateTime)
	})
}

func TestEligibilityError(t *testing.T) {
	assert.ErrorIs(t, eligibilityError(domain.DenialWrongStatus), ErrWrongStatus)
	assert.ErrorIs(t, eligibilityError(domain.DenialAlreadyPast), ErrAlreadyPast)
	assert.ErrorIs(t, eligibilityError(domain.DenialInsideLeadTime), ErrInsideLeadTime)
}

func TestHasConflict(t *testing.T) {
	existing := []*domain.Appointment{
		{ID: 1, StartTime: "09:00", DurationMinutes: 30, Status: domain.StatusScheduled},
		{ID: 2, StartTime: "10:00", DurationMinutes: 30, Status: domain.StatusCancelled},
	}

	t.Run("overlap with a blocking appointment", func(t *testing.T) {
		assert.True(t, hasConflict(99, "09:15", 30, existing))
	})

	t.Run("the appointment being moved is excluded", func(t *testing.T) {
		assert.False(t, hasConflict(1, "09:15", 30, existing))
	})

	t.Run("cancelled appointments do not block", func(t *testing.T) {
		assert.False(t, hasConflict(99, "10:00", 30, existing))
	})

	t.Run("touching intervals do not conflict", func(t *testing.T) {
		assert.False(t, hasConflict(99, "09:30", 30, existing))
	})
}
