package get_day_schedule

import (
	"github.com/m04kA/CMS-SchedulingService/internal/domain"
	getDaySchedule "github.com/m04kA/CMS-SchedulingService/internal/usecase/get_day_schedule"
)

// DayScheduleResponse HTTP response model
type DayScheduleResponse struct {
	DoctorID int64          `json:"doctorId"`
	Date     string         `json:"date"`
	Slots    []SlotResponse `json:"slots"`
}

// SlotResponse одна строка сетки расписания
type SlotResponse struct {
	StartTime   string               `json:"startTime"`
	Occupied    bool                 `json:"occupied"`
	Bookable    bool                 `json:"bookable"`
	Appointment *AppointmentResponse `json:"appointment,omitempty"`
}

// AppointmentResponse карточка приёма, начинающегося в слоте
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	PatientName     string  `json:"patientName"`
	Kind            string  `json:"kind"`
	Status          string  `json:"status"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Notes           *string `json:"notes,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDaySchedule.Response) *DayScheduleResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		s := SlotResponse{
			StartTime: slot.StartTime.String(),
			Occupied:  slot.Occupied,
			Bookable:  slot.Bookable,
		}
		if slot.Appointment != nil {
			s.Appointment = &AppointmentResponse{
				ID:              slot.Appointment.ID,
				PatientName:     slot.Appointment.PatientName,
				Kind:            slot.Appointment.Kind,
				Status:          slot.Appointment.Status,
				StartTime:       slot.Appointment.StartTime.String(),
				DurationMinutes: slot.Appointment.DurationMinutes,
				Notes:           slot.Appointment.Notes,
			}
		}
		slots[i] = s
	}

	return &DayScheduleResponse{
		DoctorID: resp.DoctorID,
		Date:     resp.Date.Format(domain.DateFormat),
		Slots:    slots,
	}
}
