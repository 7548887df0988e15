package domain

// Appointment duration bounds. Durations are multiples of the slot step.
const (
	MinDurationMinutes  = 15
	MaxDurationMinutes  = 120
	DurationStepMinutes = 15
)

// Slot grid defaults, used when a doctor has no schedule configuration.
const (
	DefaultDayStartHour    = 8
	DefaultDayEndHour      = 20
	DefaultSlotStepMinutes = 15
)

// RescheduleMinLeadMinutes is the minimum lead time before an appointment
// may still be moved to another slot (24 hours).
const RescheduleMinLeadMinutes = 24 * 60

// Patient contact validation bounds for unregistered patients.
const (
	MinPatientAge    = 0
	MaxPatientAge    = 150
	PhoneDigitsCount = 10
)

const MaxNotesLength = 500

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BlockingStatuses are statuses whose appointments occupy their slot for
// conflict checks. Cancelled, completed and missed appointments free it.
var BlockingStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusConfirmed,
	StatusInProgress,
}

// InactiveStatuses are statuses excluded from agenda and availability views
// by default.
var InactiveStatuses = []AppointmentStatus{
	StatusCancelled,
	StatusCompleted,
	StatusMissed,
}

// defaultKindDurations maps an appointment kind to its suggested duration.
// A draft without an explicit duration inherits the suggestion of its kind.
var defaultKindDurations = map[AppointmentKind]int{
	KindConsultation: 30,
	KindFollowUp:     15,
	KindProcedure:    60,
	KindEmergency:    30,
}

// DefaultDurationForKind returns the suggested duration for kind, falling
// back to the consultation default for unknown kinds.
func DefaultDurationForKind(kind AppointmentKind) int {
	if d, ok := defaultKindDurations[kind]; ok {
		return d
	}
	return defaultKindDurations[KindConsultation]
}
