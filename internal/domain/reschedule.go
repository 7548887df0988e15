package domain

import "time"

// RescheduleDenialReason explains why an appointment may not be moved.
type RescheduleDenialReason string

const (
	DenialNone           RescheduleDenialReason = ""
	DenialWrongStatus    RescheduleDenialReason = "WRONG_STATUS"
	DenialAlreadyPast    RescheduleDenialReason = "ALREADY_PAST"
	DenialInsideLeadTime RescheduleDenialReason = "INSIDE_LEAD_TIME"
)

// EvaluateReschedule decides whether the appointment may be moved to a new
// slot at now, and if not, why. An appointment is movable only while it is
// still merely scheduled, lies strictly in the future, and starts at least
// RescheduleMinLeadMinutes from now.
//
// Confirmed appointments are deliberately not reschedulable through this
// path: once the patient confirmed, moving the slot requires cancelling and
// rebooking.
func EvaluateReschedule(a *Appointment, now time.Time) (bool, RescheduleDenialReason) {
	if a.Status != StatusScheduled {
		return false, DenialWrongStatus
	}

	start, err := a.StartInstant()
	if err != nil {
		return false, DenialAlreadyPast
	}
	if !start.After(now) {
		return false, DenialAlreadyPast
	}

	if start.Sub(now) < time.Duration(RescheduleMinLeadMinutes)*time.Minute {
		return false, DenialInsideLeadTime
	}

	return true, DenialNone
}

// CanReschedule reports whether the appointment may be moved at now.
func CanReschedule(a *Appointment, now time.Time) bool {
	ok, _ := EvaluateReschedule(a, now)
	return ok
}
