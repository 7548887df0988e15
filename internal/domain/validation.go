package domain

// ReasonCode identifies a single validation rule violation. Codes are part
// of the API contract; clients map them to localized messages.
type ReasonCode string

const (
	ReasonRequired           ReasonCode = "REQUIRED"
	ReasonPastDateTime       ReasonCode = "PAST_DATETIME"
	ReasonDurationOutOfRange ReasonCode = "DURATION_OUT_OF_RANGE"
	ReasonPhoneInvalid       ReasonCode = "PHONE_INVALID"
	ReasonAgeOutOfRange      ReasonCode = "AGE_OUT_OF_RANGE"
	ReasonSlotConflict       ReasonCode = "SLOT_CONFLICT"
	ReasonInvalidTransition  ReasonCode = "INVALID_TRANSITION"
)

// FieldErrors accumulates validation failures per field. Validation checks
// every applicable rule and reports all failures together; a draft is either
// wholly accepted or rejected with a non-empty set.
type FieldErrors map[string]ReasonCode

// Add records a violation for field. The first recorded reason per field
// wins, so more specific rules must run after presence checks.
func (e FieldErrors) Add(field string, code ReasonCode) {
	if _, exists := e[field]; exists {
		return
	}
	e[field] = code
}

// HasErrors reports whether any violation was recorded.
func (e FieldErrors) HasErrors() bool {
	return len(e) > 0
}
