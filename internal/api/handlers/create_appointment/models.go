package create_appointment

import (
	"time"

	"github.com/m04kA/CMS-SchedulingService/internal/domain"
	createAppointment "github.com/m04kA/CMS-SchedulingService/internal/usecase/create_appointment"
	"github.com/m04kA/CMS-SchedulingService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	PatientID       *int64  `json:"patientId,omitempty"`
	DoctorID        int64   `json:"doctorId"`
	Date            string  `json:"date"`      // "2026-09-15"
	StartTime       string  `json:"startTime"` // "10:00"
	DurationMinutes int     `json:"durationMinutes,omitempty"`
	Kind            string  `json:"kind"`
	PreConfirmed    bool    `json:"preConfirmed,omitempty"`
	PatientName     string  `json:"patientName"`
	PatientPhone    *string `json:"patientPhone,omitempty"`
	PatientAge      *int    `json:"patientAge,omitempty"`
	Notes           *string `json:"notes,omitempty"`
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
	PatientPhone    *string `json:"patientPhone,omitempty"`
	PatientAge      *int    `json:"patientAge,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(createdBy int64) (*createAppointment.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		CreatedBy:       createdBy,
		PatientID:       r.PatientID,
		DoctorID:        r.DoctorID,
		Date:            date,
		StartTime:       startTime,
		DurationMinutes: r.DurationMinutes,
		Kind:            domain.AppointmentKind(r.Kind),
		PreConfirmed:    r.PreConfirmed,
		PatientName:     r.PatientName,
		PatientPhone:    r.PatientPhone,
		PatientAge:      r.PatientAge,
		Notes:           r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
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
		PatientPhone:    resp.PatientPhone,
		PatientAge:      resp.PatientAge,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
