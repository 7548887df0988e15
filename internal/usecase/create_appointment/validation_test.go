package create_appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CMS-SchedulingService/internal/domain"
	"github.com/m04kA/CMS-SchedulingService/pkg/ptr"
)

var testNow = time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)

func validDraft() *Request {
	return &Request{
		PatientID:       ptr.Ptr(int64(42)),
		DoctorID:        7,
		Date:            time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC),
		StartTime:       "09:00",
		DurationMinutes: 30,
		Kind:            domain.KindConsultation,
		PatientName:     "Иванов Иван",
	}
}

func TestValidateDraftValid(t *testing.T) {
	errs := validateDraft(validDraft(), nil, testNow)

	assert.False(t, errs.HasErrors())
}

func TestValidateDraftAccumulatesAllViolations(t *testing.T) {
	req := validDraft()
	req.PatientName = "  "
	req.Date = time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC) // in the past
	req.DurationMinutes = 200

	errs := validateDraft(req, nil, testNow)

	require.True(t, errs.HasErrors())
	assert.Len(t, errs, 3)
	assert.Equal(t, domain.ReasonRequired, errs["patientName"])
	assert.Equal(t, domain.ReasonPastDateTime, errs["date"])
	assert.Equal(t, domain.ReasonDurationOutOfRange, errs["durationMinutes"])
}

func TestValidateDraftRequiredFields(t *testing.T) {
	req := &Request{PatientID: ptr.Ptr(int64(1))}

	errs := validateDraft(req, nil, testNow)

	assert.Equal(t, domain.ReasonRequired, errs["patientName"])
	assert.Equal(t, domain.ReasonRequired, errs["date"])
	assert.Equal(t, domain.ReasonRequired, errs["startTime"])
	assert.Equal(t, domain.ReasonRequired, errs["doctorId"])
	assert.Equal(t, domain.ReasonDurationOutOfRange, errs["durationMinutes"])
}

func TestValidateDraftPastDateTime(t *testing.T) {
	t.Run("start earlier today is rejected", func(t *testing.T) {
		req := validDraft()
		req.Date = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
		req.StartTime = "09:00"

		errs := validateDraft(req, nil, testNow)

		assert.Equal(t, domain.ReasonPastDateTime, errs["date"])
	})

	t.Run("start exactly now is rejected", func(t *testing.T) {
		req := validDraft()
		req.Date = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
		req.StartTime = "10:00"

		errs := validateDraft(req, nil, testNow)

		assert.Equal(t, domain.ReasonPastDateTime, errs["date"])
	})

	t.Run("start later today is accepted", func(t *testing.T) {
		req := validDraft()
		req.Date = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
		req.StartTime = "10:01"

		errs := validateDraft(req, nil, testNow)

		assert.False(t, errs.HasErrors())
	})
}

func TestValidateDraftDurationBounds(t *testing.T) {
	tests := []struct {
		duration int
		valid    bool
	}{
		{14, false},
		{15, true},
		{60, true},
		{120, true},
		{121, false},
		{0, false},
	}

	for _, tt := range tests {
		req := validDraft()
		req.DurationMinutes = tt.duration

		errs := validateDraft(req, nil, testNow)

		if tt.valid {
			assert.NotContains(t, errs, "durationMinutes", "duration %d", tt.duration)
		} else {
			assert.Equal(t, domain.ReasonDurationOutOfRange, errs["durationMinutes"], "duration %d", tt.duration)
		}
	}
}

func TestValidateDraftUnregisteredPatient(t *testing.T) {
	t.Run("phone and age are required", func(t *testing.T) {
		req := validDraft()
		req.PatientID = nil

		errs := validateDraft(req, nil, testNow)

		assert.Equal(t, domain.ReasonRequired, errs["patientPhone"])
		assert.Equal(t, domain.ReasonRequired, errs["patientAge"])
	})

	t.Run("valid contact details pass", func(t *testing.T) {
		req := validDraft()
		req.PatientID = nil
		req.PatientPhone = ptr.Ptr("9161234567")
		req.PatientAge = ptr.Ptr(34)

		errs := validateDraft(req, nil, testNow)

		assert.False(t, errs.HasErrors())
	})

	t.Run("phone with spaces is normalized before matching", func(t *testing.T) {
		req := validDraft()
		req.PatientID = nil
		req.PatientPhone = ptr.Ptr("916 123 45 67")
		req.PatientAge = ptr.Ptr(34)

		errs := validateDraft(req, nil, testNow)

		assert.NotContains(t, errs, "patientPhone")
	})

	t.Run("short phone is rejected", func(t *testing.T) {
		req := validDraft()
		req.PatientID = nil
		req.PatientPhone = ptr.Ptr("12345")
		req.PatientAge = ptr.Ptr(34)

		errs := validateDraft(req, nil, testNow)

		assert.Equal(t, domain.ReasonPhoneInvalid, errs["patientPhone"])
	})

	t.Run("age out of range is rejected", func(t *testing.T) {
		req := validDraft()
		req.PatientID = nil
		req.PatientPhone = ptr.Ptr("9161234567")
		req.PatientAge = ptr.Ptr(151)

		errs := validateDraft(req, nil, testNow)

		assert.Equal(t, domain.ReasonAgeOutOfRange, errs["patientAge"])
	})

	t.Run("registered patient skips contact checks", func(t *testing.T) {
		req := validDraft()
		req.PatientPhone = nil
		req.PatientAge = nil

		errs := validateDraft(req, nil, testNow)

		assert.False(t, errs.HasErrors())
	})
}

func TestValidateDraftSlotConflict(t *testing.T) {
	existing := []*domain.Appointment{
		{ID: 1, StartTime: "09:00", DurationMinutes: 30, Status: domain.StatusConfirmed},
	}

	t.Run("overlapping slot is rejected", func(t *testing.T) {
		req := validDraft()
		req.StartTime = "09:15"

		errs := validateDraft(req, existing, testNow)

		assert.Equal(t, domain.ReasonSlotConflict, errs["slot"])
	})

	t.Run("touching slot is accepted", func(t *testing.T) {
		req := validDraft()
		req.StartTime = "09:30"

		errs := validateDraft(req, existing, testNow)

		assert.False(t, errs.HasErrors())
	})

	t.Run("cancelled appointment does not block the slot", func(t *testing.T) {
		cancelled := []*domain.Appointment{
			{ID: 2, StartTime: "09:00", DurationMinutes: 30, Status: domain.StatusCancelled},
		}
		req := validDraft()
		req.StartTime = "09:00"

		errs := validateDraft(req, cancelled, testNow)

		assert.False(t, errs.HasErrors())
	})

	t.Run("conflict is reported alongside other violations", func(t *testing.T) {
		req := validDraft()
		req.StartTime = "09:15"
		req.PatientName = ""

		errs := validateDraft(req, existing, testNow)

		assert.Equal(t, domain.ReasonSlotConflict, errs["slot"])
		assert.Equal(t, domain.ReasonRequired, errs["patientName"])
	})
}
