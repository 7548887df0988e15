package get_day_schedule

import (
	"fmt"
	"time"

	"github.com/m04kA/CMS-SchedulingService/internal/domain"
	"github.com/m04kA/CMS-SchedulingService/internal/integrations/staffservice"
	"github.com/m04kA/CMS-SchedulingService/pkg/types"
)

// generateSlots строит упорядоченную сетку временных точек дня
// от startHour:00 (включительно) до endHour:00 (исключительно) с шагом stepMinutes.
//
// Сетка строится по часам: если шаг не делит 60 нацело, последний слот часа —
// просто остаток до границы часа, без округления. startHour >= endHour даёт
// пустую сетку (не ошибку).
func generateSlots(startHour, endHour, stepMinutes int) []types.TimeString {
	slots := make([]types.TimeString, 0)

	if stepMinutes <= 0 {
		return slots
	}

	for hour := startHour; hour < endHour; hour++ {
		for minute := 0; minute < 60; minute += stepMinutes {
			slots = append(slots, types.TimeString(fmt.Sprintf("%02d:%02d", hour, minute)))
		}
	}

	return slots
}

// occupancyIndex предвычисленный индекс занятости дня
// Отменённые приёмы отфильтровываются один раз при построении:
// они освобождают свой слот и не показываются в сетке.
type occupancyIndex struct {
	appointments []*domain.Appointment
}

// newOccupancyIndex строит индекс по приёмам одного дня
func newOccupancyIndex(appointments []*domain.Appointment) *occupancyIndex {
	visible := make([]*domain.Appointment, 0, len(appointments))
	for _, appt := range appointments {
		if appt.IsCancelled() {
			continue
		}
		visible = append(visible, appt)
	}
	return &occupancyIndex{appointments: visible}
}

// appointmentStartingAt возвращает приём, начинающийся ровно в t (если есть)
// Используется для отображения карточки приёма в соответствующей строке сетки
func (idx *occupancyIndex) appointmentStartingAt(t types.TimeString) *domain.Appointment {
	for _, appt := range idx.appointments {
		if appt.StartTime == t {
			return appt
		}
	}
	return nil
}

// isOccupied возвращает true, если точка t попадает внутрь полуинтервала
// [start, start+duration) любого приёма дня — независимо от выравнивания
// приёма по сетке. Такие строки не предлагают запись.
func (idx *occupancyIndex) isOccupied(t types.TimeString) bool {
	for _, appt := range idx.appointments {
		end, err := appt.EndTime()
		if err != nil {
			continue
		}
		if !t.IsBefore(appt.StartTime) && t.IsBefore(end) {
			return true
		}
	}
	return false
}

// getWorkingHoursForDay возвращает рабочие часы врача на указанный день недели
func getWorkingHoursForDay(doctor *staffservice.Doctor, date time.Time) staffservice.DaySchedule {
	weekday := date.Weekday()

	switch weekday {
	case time.Monday:
		return doctor.WorkingHours.Monday
	case time.Tuesday:
		return doctor.WorkingHours.Tuesday
	case time.Wednesday:
		return doctor.WorkingHours.Wednesday
	case time.Thursday:
		return doctor.WorkingHours.Thursday
	case time.Friday:
		return doctor.WorkingHours.Friday
	case time.Saturday:
		return doctor.WorkingHours.Saturday
	case time.Sunday:
		return doctor.WorkingHours.Sunday
	default:
		return staffservice.DaySchedule{Working: false}
	}
}
