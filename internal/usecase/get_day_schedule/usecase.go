package get_day_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CMS-SchedulingService/internal/domain"
	configRepo "github.com/m04kA/CMS-SchedulingService/internal/infra/storage/scheduleconfig"
	staffClient "github.com/m04kA/CMS-SchedulingService/internal/integrations/staffservice"
	"github.com/m04kA/CMS-SchedulingService/pkg/ptr"
)

// UseCase use case дневного расписания врача: сетка слотов,
// аннотированная занятостью и карточками приёмов
type UseCase struct {
	appointmentRepo AppointmentRepository
	configRepo      ConfigRepository
	staffClient     StaffServiceClient
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	configRepo ConfigRepository,
	staffClient StaffServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		configRepo:      configRepo,
		staffClient:     staffClient,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case построения дневного расписания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDaySchedule: doctor=%d, date=%s", req.DoctorID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.DoctorID <= 0 {
		return nil, fmt.Errorf("%w: doctorID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем врача с его рабочими часами
	doctor, err := uc.staffClient.GetDoctor(ctx, req.DoctorID)
	if err != nil {
		if errors.Is(err, staffClient.ErrDoctorNotFound) {
			uc.logger.Warn("GetDaySchedule: doctor id=%d not found", req.DoctorID)
			return nil, ErrDoctorNotFound
		}
		uc.logger.Error("GetDaySchedule: failed to get doctor id=%d: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: failed to get doctor: %v", ErrInternal, err)
	}

	// 4. Получаем конфигурацию сетки с учетом иерархии
	config, err := uc.configRepo.GetForDoctor(ctx, req.DoctorID)
	if err != nil && !errors.Is(err, configRepo.ErrConfigNotFound) {
		uc.logger.Error("GetDaySchedule: failed to get config: %v", err)
		return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}
	if config == nil {
		config = domain.DefaultScheduleConfig()
		uc.logger.Info("GetDaySchedule: using default schedule config for doctor=%d", req.DoctorID)
	}

	// 5. Рабочие часы на указанную дату
	// Часы врача из StaffService приоритетнее конфигурации сетки
	workingHours := getWorkingHoursForDay(doctor, req.Date)
	if !workingHours.Working {
		uc.logger.Info("GetDaySchedule: doctor=%d is not working on %s", req.DoctorID, req.Date.Format(domain.DateFormat))
		return &Response{DoctorID: req.DoctorID, Date: req.Date, Slots: []Slot{}}, nil
	}

	startHour, endHour := config.DayStartHour, config.DayEndHour
	if workingHours.EndHour > workingHours.StartHour {
		startHour, endHour = workingHours.StartHour, workingHours.EndHour
	}

	// 6. Генерируем сетку слотов
	grid := generateSlots(startHour, endHour, config.SlotStepMinutes)

	// 7. Получаем приёмы врача на дату
	// IncludeInactive: завершённые и пропущенные приёмы остаются видимыми
	// в сетке; отменённые отфильтрует индекс занятости
	filter := domain.DoctorAppointmentsFilter{
		DoctorID:        req.DoctorID,
		StartDate:       ptr.Ptr(req.Date),
		EndDate:         ptr.Ptr(req.Date),
		IncludeInactive: true,
	}

	appointments, err := uc.appointmentRepo.GetByDoctorWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetDaySchedule: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 8. Строим индекс занятости один раз на весь рендер
	index := newOccupancyIndex(appointments)

	// 9. Аннотируем сетку
	slots := make([]Slot, len(grid))
	for i, t := range grid {
		row := domain.ScheduleSlot{
			StartTime:   t,
			Occupied:    index.isOccupied(t),
			Appointment: index.appointmentStartingAt(t),
		}

		slot := Slot{
			StartTime: row.StartTime,
			Occupied:  row.Occupied,
			Bookable:  row.IsBookable(),
		}

		if row.HasAppointment() {
			appt := row.Appointment
			slot.Appointment = &AppointmentCard{
				ID:              appt.ID,
				PatientName:     appt.PatientName,
				Kind:            string(appt.Kind),
				Status:          string(appt.EffectiveStatus(now)),
				StartTime:       appt.StartTime,
				DurationMinutes: appt.DurationMinutes,
				Notes:           appt.Notes,
			}
		}

		slots[i] = slot
	}

	uc.logger.Info("GetDaySchedule: built %d slots for doctor=%d, date=%s, appointments=%d",
		len(slots), req.DoctorID, req.Date.Format(domain.DateFormat), len(appointments))

	return &Response{
		DoctorID: req.DoctorID,
		Date:     req.Date,
		Slots:    slots,
	}, nil
}
