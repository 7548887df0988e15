package create_appointment

import (
	"errors"
	"fmt"

	"github.com/m04kA/CMS-SchedulingService/internal/domain"
)

var (
	// ErrDoctorNotFound возвращается, когда врач не найден
	ErrDoctorNotFound = errors.New("create_appointment: doctor not found")

	// ErrPatientNotFound возвращается, когда зарегистрированный пациент не найден
	ErrPatientNotFound = errors.New("create_appointment: patient not found")

	// ErrDoctorNotAvailable возвращается, когда врач не принимает в указанную дату
	ErrDoctorNotAvailable = errors.New("create_appointment: doctor is not available on this date")

	// ErrSlotTaken возвращается, когда слот занят конкурентной записью
	// (нарушение уникального индекса при вставке)
	ErrSlotTaken = errors.New("create_appointment: slot was taken concurrently")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)

// ValidationError содержит накопленные нарушения правил валидации по полям.
// Черновик отклоняется целиком: либо все правила выполнены, либо возвращается
// непустой набор нарушений.
type ValidationError struct {
	Fields domain.FieldErrors
}

// Error реализует интерфейс error
func (e *ValidationError) Error() string {
	return fmt.Sprintf("create_appointment: validation failed: %v", e.Fields)
}
