package domain

import (
	"time"

	"github.com/m04kA/CMS-SchedulingService/pkg/types"
)

// AppointmentKind classifies an appointment. The kind is informational: it
// drives default duration suggestions and display grouping, never conflict
// rules.
type AppointmentKind string

const (
	KindConsultation AppointmentKind = "consultation"
	KindFollowUp     AppointmentKind = "followUp"
	KindProcedure    AppointmentKind = "procedure"
	KindEmergency    AppointmentKind = "emergency"
)

// IsValid reports whether k is one of the known kinds.
func (k AppointmentKind) IsValid() bool {
	switch k {
	case KindConsultation, KindFollowUp, KindProcedure, KindEmergency:
		return true
	}
	return false
}

// Appointment represents a patient's appointment with a doctor.
//
// Date and StartTime are wall-clock values; they are combined into an
// absolute instant only where a comparison with "now" is needed. The patient
// contact fields are denormalized snapshots taken at creation, not
// authoritative patient records.
type Appointment struct {
	ID        int64
	PatientID *int64 // nil for not-yet-registered patients
	DoctorID  int64

	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int

	Kind   AppointmentKind
	Status AppointmentStatus

	// Denormalized patient snapshot
	PatientName  string
	PatientPhone *string
	PatientAge   *int

	Notes *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StartInstant combines Date and StartTime into an absolute instant.
func (a *Appointment) StartInstant() (time.Time, error) {
	return a.StartTime.OnDate(a.Date)
}

// EndTime returns the exclusive end of the appointment interval.
func (a *Appointment) EndTime() (types.TimeString, error) {
	return a.StartTime.AddMinutes(a.DurationMinutes)
}

// BlocksSlot reports whether the appointment occupies its slot for conflict
// checks. Cancelled, completed and missed appointments free the slot.
func (a *Appointment) BlocksSlot() bool {
	return a.Status == StatusScheduled ||
		a.Status == StatusConfirmed ||
		a.Status == StatusInProgress
}

// IsCancelled reports whether the appointment has been cancelled.
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// IsRegistered reports whether the appointment references a registered
// patient record.
func (a *Appointment) IsRegistered() bool {
	return a.PatientID != nil
}

// Overlaps reports whether the half-open interval [start, start+duration)
// intersects the appointment's own interval. Intervals that merely touch do
// not overlap.
func (a *Appointment) Overlaps(start types.TimeString, durationMinutes int) bool {
	candidateEnd, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return false
	}
	ownEnd, err := a.EndTime()
	if err != nil {
		return false
	}
	return a.StartTime.IsBefore(candidateEnd) && ownEnd.IsAfter(start)
}

// DoctorAppointmentsFilter filters a doctor's appointments.
type DoctorAppointmentsFilter struct {
	DoctorID        int64              // required
	StartDate       *time.Time         // period start (nil = unbounded)
	EndDate         *time.Time         // period end (nil = unbounded)
	Status          *AppointmentStatus // exact status (optional)
	IncludeInactive bool               // include cancelled/completed/missed
}
