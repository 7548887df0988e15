package domain

import "github.com/m04kA/CMS-SchedulingService/pkg/types"

// ScheduleSlot is one row of a doctor's annotated day grid.
type ScheduleSlot struct {
	StartTime   types.TimeString
	Occupied    bool         // inside any non-cancelled appointment interval
	Appointment *Appointment // appointment starting exactly here, if any
}

// IsBookable reports whether the slot can be offered for a new appointment.
func (s *ScheduleSlot) IsBookable() bool {
	return !s.Occupied
}

// HasAppointment reports whether an appointment card renders at this row.
func (s *ScheduleSlot) HasAppointment() bool {
	return s.Appointment != nil
}
