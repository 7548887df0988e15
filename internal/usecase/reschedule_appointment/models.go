package reschedule_appointment

import (
	"time"

	"github.com/m04kA/CMS-SchedulingService/internal/domain"
	"github.com/m04kA/CMS-SchedulingService/pkg/types"
)

// Request модель запроса на перенос приёма
type Request struct {
	RequestedBy   int64            // ID сотрудника, выполняющего перенос (для логирования)
	AppointmentID int64            // ID переносимого приёма
	NewDate       time.Time        // Новая дата (без времени)
	NewStartTime  types.TimeString // Новое время начала
}

// Response модель ответа с перенесённым приёмом
type Response struct {
	ID              int64
	PatientID       *int64
	DoctorID        int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Kind            string
	Status          string
	PatientName     string
	Notes           *string
	UpdatedAt       time.Time
}

// toResponse конвертирует доменную модель в ответ use case
func toResponse(appt *domain.Appointment) *Response {
	return &Response{
		ID:              appt.ID,
		PatientID:       appt.PatientID,
		DoctorID:        appt.DoctorID,
		Date:            appt.Date,
		StartTime:       appt.StartTime,
		DurationMinutes: appt.DurationMinutes,
		Kind:            string(appt.Kind),
		Status:          string(appt.Status),
		PatientName:     appt.PatientName,
		Notes:           appt.Notes,
		UpdatedAt:       appt.UpdatedAt,
	}
}
