package get_day_schedule

import (
	"time"

	"github.com/m04kA/CMS-SchedulingService/pkg/types"
)

// Request модель запроса дневного расписания врача
type Request struct {
	DoctorID int64     // ID врача
	Date     time.Time // Дата расписания (без времени)
}

// Response модель ответа с аннотированной сеткой слотов
type Response struct {
	DoctorID int64     // ID врача
	Date     time.Time // Дата, на которую запрашивалось расписание
	Slots    []Slot    // Упорядоченная сетка слотов дня
}

// Slot модель одной строки сетки расписания
type Slot struct {
	StartTime   types.TimeString // Время начала слота (например, "10:00")
	Occupied    bool             // Точка попадает внутрь интервала существующего приёма
	Bookable    bool             // Слот можно предложить для записи
	Appointment *AppointmentCard // Приём, начинающийся ровно в этой точке (если есть)
}

// AppointmentCard карточка приёма для отображения в сетке
// Status — проекция на момент запроса: просроченные scheduled показываются как missed
type AppointmentCard struct {
	ID              int64
	PatientName     string
	Kind            string
	Status          string
	StartTime       types.TimeString
	DurationMinutes int
	Notes           *string
}
