package create_appointment

import (
	"time"

	"github.com/m04kA/CMS-SchedulingService/internal/domain"
	"github.com/m04kA/CMS-SchedulingService/pkg/types"
)

// Request черновик приёма
// PatientID == nil означает незарегистрированного пациента: тогда контактные
// поля (телефон, возраст) обязательны и проверяются строже.
type Request struct {
	CreatedBy       int64                  // ID сотрудника, создающего запись (для логирования)
	PatientID       *int64                 // ID пациента (nil = незарегистрированный)
	DoctorID        int64                  // ID врача
	Date            time.Time              // Дата приёма (без времени)
	StartTime       types.TimeString       // Время начала слота (например, "10:00")
	DurationMinutes int                    // Длительность; 0 = подставить длительность по виду приёма
	Kind            domain.AppointmentKind // Вид приёма
	PreConfirmed    bool                   // Создать сразу в статусе confirmed
	PatientName     string                 // Имя пациента (снимок для отображения)
	PatientPhone    *string                // Телефон (обязателен для незарегистрированных)
	PatientAge      *int                   // Возраст (обязателен для незарегистрированных)
	Notes           *string                // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным приёмом
type Response struct {
	ID              int64
	PatientID       *int64
	DoctorID        int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Kind            string
	Status          string

	// Денормализованный снимок данных пациента
	PatientName  string
	PatientPhone *string
	PatientAge   *int
	Notes        *string

	CreatedAt time.Time
	UpdatedAt time.Time
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
		PatientPhone:    appt.PatientPhone,
		PatientAge:      appt.PatientAge,
		Notes:           appt.Notes,
		CreatedAt:       appt.CreatedAt,
		UpdatedAt:       appt.UpdatedAt,
	}
}
