package domain

import "time"

// DoctorScheduleConfig holds the slot grid parameters used when building a
// doctor's day schedule. Configuration is hierarchical:
// 1. Doctor-specific (doctor_id set)
// 2. Clinic-wide (doctor_id NULL)
// Settings administration itself lives outside this service; only the read
// path exists here.
type DoctorScheduleConfig struct {
	ID              int64
	DoctorID        *int64 // NULL = clinic-wide default
	DayStartHour    int
	DayEndHour      int
	SlotStepMinutes int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsClinicDefault reports whether this is the clinic-wide configuration.
func (c *DoctorScheduleConfig) IsClinicDefault() bool {
	return c.DoctorID == nil
}

// DefaultScheduleConfig returns the built-in grid parameters used when no
// configuration row exists at all.
func DefaultScheduleConfig() *DoctorScheduleConfig {
	return &DoctorScheduleConfig{
		DayStartHour:    DefaultDayStartHour,
		DayEndHour:      DefaultDayEndHour,
		SlotStepMinutes: DefaultSlotStepMinutes,
	}
}
