package create_appointment

import (
	"regexp"
	"strings"
	"time"

	"github.com/m04kA/CMS-SchedulingService/internal/domain"
)

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// validateDraft проверяет черновик по всем применимым правилам и накапливает
// нарушения. Проверка никогда не останавливается на первом нарушении —
// вызывающий код получает полный набор проблем за один проход.
//
// existing — приёмы того же врача на ту же дату (уже отфильтрованные);
// now передаётся явно, чтобы функция оставалась чистой и детерминированной.
func validateDraft(req *Request, existing []*domain.Appointment, now time.Time) domain.FieldErrors {
	errs := domain.FieldErrors{}

	// Имя пациента обязательно
	if strings.TrimSpace(req.PatientName) == "" {
		errs.Add("patientName", domain.ReasonRequired)
	}

	// Дата и время обязательны; вместе они должны быть строго в будущем
	dateMissing := req.Date.IsZero()
	if dateMissing {
		errs.Add("date", domain.ReasonRequired)
	}

	timeMissing := req.StartTime.IsZero() || req.StartTime.Validate() != nil
	if timeMissing {
		errs.Add("startTime", domain.ReasonRequired)
	}

	if !dateMissing && !timeMissing {
		start, err := req.StartTime.OnDate(req.Date)
		if err == nil && !start.After(now) {
			errs.Add("date", domain.ReasonPastDateTime)
		}
	}

	// Врач обязателен
	if req.DoctorID <= 0 {
		errs.Add("doctorId", domain.ReasonRequired)
	}

	// Длительность в допустимых границах (округление до шага 15 минут —
	// ответственность вызывающего кода)
	if req.DurationMinutes < domain.MinDurationMinutes || req.DurationMinutes > domain.MaxDurationMinutes {
		errs.Add("durationMinutes", domain.ReasonDurationOutOfRange)
	}

	// Контактные данные незарегистрированного пациента
	if req.PatientID == nil {
		validateContactFields(req, errs)
	}

	// Проверка пересечения со слотами существующих приёмов
	if !dateMissing && !timeMissing {
		for _, appt := range existing {
			if !appt.BlocksSlot() {
				continue
			}
			if appt.Overlaps(req.StartTime, req.DurationMinutes) {
				errs.Add("slot", domain.ReasonSlotConflict)
				break
			}
		}
	}

	return errs
}

// validateContactFields проверяет телефон и возраст незарегистрированного пациента
func validateContactFields(req *Request, errs domain.FieldErrors) {
	if req.PatientPhone == nil || strings.TrimSpace(*req.PatientPhone) == "" {
		errs.Add("patientPhone", domain.ReasonRequired)
	} else if !phonePattern.MatchString(stripWhitespace(*req.PatientPhone)) {
		errs.Add("patientPhone", domain.ReasonPhoneInvalid)
	}

	if req.PatientAge == nil {
		errs.Add("patientAge", domain.ReasonRequired)
	} else if *req.PatientAge < domain.MinPatientAge || *req.PatientAge > domain.MaxPatientAge {
		errs.Add("patientAge", domain.ReasonAgeOutOfRange)
	}
}

// stripWhitespace убирает все пробельные символы из строки
func stripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
