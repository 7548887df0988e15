package reschedule_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CMS-SchedulingService/internal/domain"
	apptRepo "github.com/m04kA/CMS-SchedulingService/internal/infra/storage/appointment"
	"github.com/m04kA/CMS-SchedulingService/pkg/ptr"
)

// UseCase use case переноса приёма на новый слот
// Право на перенос определяется доменным правилом: переносить можно только
// scheduled-приёмы, строго будущие, не позднее чем за 24 часа до начала
type UseCase struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case переноса приёма
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleAppointment: requested_by=%d, appointment=%d, new_date=%s, new_time=%s",
		req.RequestedBy, req.AppointmentID, req.NewDate.Format(domain.DateFormat), req.NewStartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Новый слот должен быть строго в будущем
	if err := validateNewSlot(req, now); err != nil {
		uc.logger.Warn("RescheduleAppointment: new slot validation failed: %v", err)
		return nil, err
	}

	var result *domain.Appointment

	// 4. Проверки и обновление в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем приём
		appt, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("RescheduleAppointment: appointment id=%d not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("RescheduleAppointment: failed to get appointment id=%d: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		// 4.2. Проверяем право на перенос
		if ok, reason := domain.EvaluateReschedule(appt, now); !ok {
			uc.logger.Warn("RescheduleAppointment: appointment id=%d not reschedulable: %s", appt.ID, reason)
			return eligibilityError(reason)
		}

		// 4.3. Приёмы врача на новую дату с блокировкой (FOR UPDATE)
		filter := domain.DoctorAppointmentsFilter{
			DoctorID:        appt.DoctorID,
			StartDate:       ptr.Ptr(req.NewDate),
			EndDate:         ptr.Ptr(req.NewDate),
			IncludeInactive: false,
		}

		existing, err := uc.appointmentRepo.GetByDoctorWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("RescheduleAppointment: failed to get existing appointments: %v", err)
			return fmt.Errorf("%w: failed to get existing appointments: %v", ErrInternal, err)
		}

		// 4.4. Проверяем пересечение нового слота
		if hasConflict(appt.ID, req.NewStartTime, appt.DurationMinutes, existing) {
			uc.logger.Warn("RescheduleAppointment: slot conflict for appointment id=%d, doctor=%d, date=%s, time=%s",
				appt.ID, appt.DoctorID, req.NewDate.Format(domain.DateFormat), req.NewStartTime)
			return ErrSlotConflict
		}

		// 4.5. Переносим приём
		if err := uc.appointmentRepo.UpdateSchedule(txCtx, appt.ID, req.NewDate, req.NewStartTime, appt.DurationMinutes); err != nil {
			if errors.Is(err, apptRepo.ErrSlotTaken) {
				return ErrSlotConflict
			}
			uc.logger.Error("RescheduleAppointment: failed to update schedule for id=%d: %v", appt.ID, err)
			return fmt.Errorf("%w: failed to update schedule: %v", ErrInternal, err)
		}

		appt.Date = req.NewDate
		appt.StartTime = req.NewStartTime
		result = appt
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleAppointment: successfully moved appointment id=%d to %s %s",
		result.ID, result.Date.Format(domain.DateFormat), result.StartTime)

	return toResponse(result), nil
}
