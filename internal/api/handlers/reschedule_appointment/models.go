package reschedule_appointment

import (
	"time"

	"github.com/m04kA/CMS-SchedulingService/internal/domain"
	rescheduleAppointment "github.com/m04kA/CMS-SchedulingService/internal/usecase/reschedule_appointment"
	"github.com/m04kA/CMS-SchedulingService/pkg/types"
)

// RescheduleAppointmentRequest HTTP request model
type RescheduleAppointmentRequest struct {
	NewDate      string `json:"newDate"`      // "2026-09-20"
	NewStartTime string `json:"newStartTime"` // "14:30"
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	PatientID       *int64  `json:"patientId,omitempty"`
	DoctorID        int64   `json:"doctorId"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Kind            string  `json:"kind"`
	Status          string  `json:"status"`
	PatientName     string  `json:"patientName"`
	Notes           *string `json:"notes,omitempty"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleAppointmentRequest) ToUseCaseRequest(requestedBy, appointmentID int64) (*rescheduleAppointment.Request, error) {
	// Парсим дату
	newDate, err := time.Parse(domain.DateFormat, r.NewDate)
	if err != nil {
		return nil, err
	}

	// Парсим время
	newStartTime, err := types.NewTimeStringFromString(r.NewStartTime)
	if err != nil {
		return nil, err
	}

	return &rescheduleAppointment.Request{
		RequestedBy:   requestedBy,
		AppointmentID: appointmentID,
		NewDate:       newDate,
		NewStartTime:  newStartTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		PatientID:       resp.PatientID,
		DoctorID:        resp.DoctorID,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Kind:            resp.Kind,
		Status:          resp.Status,
		PatientName:     resp.PatientName,
		Notes:           resp.Notes,
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
