package models

import (
	"errors"
	"time"

	"github.com/m04kA/CMS-SchedulingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// CancelAppointmentRequest запрос на отмену приёма
type CancelAppointmentRequest struct {
	UserID int64  `json:"userId"`
	Reason string `json:"reason"`
}

// UpdateStatusRequest запрос на изменение статуса приёма
type UpdateStatusRequest struct {
	UserID int64  `json:"userId"`
	Status string `json:"status"`
}

// GetPatientAppointmentsRequest запрос истории приёмов пациента
type GetPatientAppointmentsRequest struct {
	PatientID int64   `json:"patientId"`
	Status    *string `json:"status,omitempty"`
}

// GetDoctorAppointmentsRequest запрос приёмов врача с фильтрацией
type GetDoctorAppointmentsRequest struct {
	DoctorID        int64      `json:"doctorId"`
	StartDate       *time.Time `json:"startDate,omitempty"`
	EndDate         *time.Time `json:"endDate,omitempty"`
	Status          *string    `json:"status,omitempty"`
	IncludeInactive bool       `json:"includeInactive"`
}

// ToDomainFilter конвертирует запрос в доменный фильтр
func (r *GetDoctorAppointmentsRequest) ToDomainFilter() (domain.DoctorAppointmentsFilter, error) {
	filter := domain.DoctorAppointmentsFilter{
		DoctorID:        r.DoctorID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return domain.DoctorAppointmentsFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// AppointmentResponse представление приёма для вызывающего кода
// Status — эффективный статус на момент чтения (проекция missed),
// StoredStatus — статус, как он записан в хранилище
type AppointmentResponse struct {
	ID              int64      `json:"id"`
	PatientID       *int64     `json:"patientId,omitempty"`
	DoctorID        int64      `json:"doctorId"`
	Date            time.Time  `json:"date"`
	StartTime       string     `json:"startTime"`
	DurationMinutes int        `json:"durationMinutes"`
	Kind            string     `json:"kind"`
	Status          string     `json:"status"`
	StoredStatus    string     `json:"storedStatus"`
	PatientName     string     `json:"patientName"`
	PatientPhone    *string    `json:"patientPhone,omitempty"`
	PatientAge      *int       `json:"patientAge,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
	Reason          *string    `json:"cancellationReason,omitempty"`
	CancelledAt     *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// AppointmentListResponse список приёмов
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse `json:"appointments"`
	Total        int                    `json:"total"`
}

// FromDomainAppointment конвертирует доменную модель в ответ сервиса,
// применяя проекцию статуса на момент now
func FromDomainAppointment(appt *domain.Appointment, now time.Time) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              appt.ID,
		PatientID:       appt.PatientID,
		DoctorID:        appt.DoctorID,
		Date:            appt.Date,
		StartTime:       appt.StartTime.String(),
		DurationMinutes: appt.DurationMinutes,
		Kind:            string(appt.Kind),
		Status:          string(appt.EffectiveStatus(now)),
		StoredStatus:    string(appt.Status),
		PatientName:     appt.PatientName,
		PatientPhone:    appt.PatientPhone,
		PatientAge:      appt.PatientAge,
		Notes:           appt.Notes,
		Reason:          appt.CancellationReason,
		CancelledAt:     appt.CancelledAt,
		CreatedAt:       appt.CreatedAt,
		UpdatedAt:       appt.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список доменных моделей
func FromDomainAppointmentList(appointments []*domain.Appointment, now time.Time) *AppointmentListResponse {
	result := make([]*AppointmentResponse, len(appointments))
	for i, appt := range appointments {
		result[i] = FromDomainAppointment(appt, now)
	}
	return &AppointmentListResponse{
		Appointments: result,
		Total:        len(result),
	}
}

// ToDomainStatus конвертирует строку в доменный статус
func ToDomainStatus(s string) (domain.AppointmentStatus, error) {
	status, err := domain.ParseStatus(s)
	if err != nil {
		return "", ErrInvalidStatus
	}
	return status, nil
}
