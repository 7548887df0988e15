package domain

import (
	"errors"
	"fmt"
	"time"
)

// AppointmentStatus is the lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusScheduled  AppointmentStatus = "scheduled"
	StatusConfirmed  AppointmentStatus = "confirmed"
	StatusInProgress AppointmentStatus = "inProgress"
	StatusCompleted  AppointmentStatus = "completed"
	StatusCancelled  AppointmentStatus = "cancelled"
	StatusMissed     AppointmentStatus = "missed"
)

// ErrInvalidTransition is returned for a status change the lifecycle does
// not permit.
var ErrInvalidTransition = errors.New("domain: invalid status transition")

// ErrUnknownStatus is returned when parsing an unknown status string.
var ErrUnknownStatus = errors.New("domain: unknown appointment status")

// explicitTransitions lists the caller-triggered single-step transitions.
// Completed, cancelled and missed are terminal. Completing a scheduled
// appointment requires confirming it first.
var explicitTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusScheduled:  {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusInProgress, StatusCompleted, StatusCancelled},
	StatusInProgress: {StatusCompleted},
}

// ParseStatus converts a string into an AppointmentStatus.
func ParseStatus(s string) (AppointmentStatus, error) {
	switch AppointmentStatus(s) {
	case StatusScheduled, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled, StatusMissed:
		return AppointmentStatus(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

// IsTerminal reports whether no further transitions leave s.
func (s AppointmentStatus) IsTerminal() bool {
	return len(explicitTransitions[s]) == 0
}

// CanTransitionTo reports whether the explicit transition s -> target is
// permitted.
func (s AppointmentStatus) CanTransitionTo(target AppointmentStatus) bool {
	for _, allowed := range explicitTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo applies an explicit status change, rejecting anything the
// lifecycle does not permit.
func (a *Appointment) TransitionTo(target AppointmentStatus) error {
	if !a.Status.CanTransitionTo(target) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, a.Status, target)
	}
	a.Status = target
	return nil
}

// EffectiveStatus returns the status as it should be presented at now.
//
// A still-scheduled appointment whose start instant has passed is presented
// as missed. This is a read-time projection: stored state is never changed
// here, so the same input always yields the same output. Confirmed
// appointments are not projected.
func (a *Appointment) EffectiveStatus(now time.Time) AppointmentStatus {
	if a.Status != StatusScheduled {
		return a.Status
	}
	start, err := a.StartInstant()
	if err != nil {
		return a.Status
	}
	if start.Before(now) {
		return StatusMissed
	}
	return a.Status
}
