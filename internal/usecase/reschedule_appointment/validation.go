package reschedule_appointment

import (
	"fmt"
	"time"

	"github.com/m04kA/CMS-SchedulingService/internal/domain"
	"github.com/m04kA/CMS-SchedulingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.AppointmentID <= 0 {
		return fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}

	if req.NewDate.IsZero() {
		return fmt.Errorf("%w: newDate is required", ErrInvalidInput)
	}

	if req.NewStartTime.IsZero() {
		return fmt.Errorf("%w: newStartTime is required", ErrInvalidInput)
	}

	if err := req.NewStartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid newStartTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateNewSlot проверяет, что новый слот строго в будущем
func validateNewSlot(req *Request, now time.Time) error {
	start, err := req.NewStartTime.OnDate(req.NewDate)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if !start.After(now) {
		return ErrPastDateTime
	}
	return nil
}

// eligibilityError транслирует причину отказа в sentinel ошибку usecase
// Каждая из трёх причин (неподходящий статус, приём уже прошёл, меньше суток
// до начала) различима вызывающим кодом
func eligibilityError(reason domain.RescheduleDenialReason) error {
	switch reason {
	case domain.DenialWrongStatus:
		return ErrWrongStatus
	case domain.DenialAlreadyPast:
		return ErrAlreadyPast
	case domain.DenialInsideLeadTime:
		return ErrInsideLeadTime
	default:
		return ErrInternal
	}
}

// hasConflict проверяет пересечение нового слота с приёмами врача
// Сам переносимый приём из проверки исключается
func hasConflict(apptID int64, newStart types.TimeString, durationMinutes int, existing []*domain.Appointment) bool {
	for _, other := range existing {
		if other.ID == apptID {
			continue
		}
		if !other.BlocksSlot() {
			continue
		}
		if other.Overlaps(newStart, durationMinutes) {
			return true
		}
	}
	return false
}
