package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/CMS-SchedulingService/internal/domain"
	apptRepo "github.com/m04kA/CMS-SchedulingService/internal/infra/storage/appointment"
	patientClient "github.com/m04kA/CMS-SchedulingService/internal/integrations/patientservice"
	staffClient "github.com/m04kA/CMS-SchedulingService/internal/integrations/staffservice"
	"github.com/m04kA/CMS-SchedulingService/pkg/ptr"
)

// UseCase use case создания приёма
// Проверка занятости слота и вставка выполняются в сериализуемой транзакции,
// чтобы два параллельных создания не получили один и тот же слот
type UseCase struct {
	appointmentRepo AppointmentRepository
	patientClient   PatientServiceClient
	staffClient     StaffServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	patientClient PatientServiceClient,
	staffClient StaffServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		patientClient:   patientClient,
		staffClient:     staffClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания приёма
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: created_by=%d, doctor=%d, date=%s, time=%s, kind=%s",
		req.CreatedBy, req.DoctorID, req.Date.Format(domain.DateFormat), req.StartTime, req.Kind)

	// 1. Получаем текущее время
	now := uc.timeProvider.Now()

	// 2. Вид приёма и длительность по умолчанию
	if req.Kind == "" {
		req.Kind = domain.KindConsultation
	}
	if !req.Kind.IsValid() {
		uc.logger.Warn("CreateAppointment: unknown kind=%s", req.Kind)
		return nil, fmt.Errorf("%w: unknown appointment kind", ErrInvalidInput)
	}
	if req.DurationMinutes == 0 {
		req.DurationMinutes = domain.DefaultDurationForKind(req.Kind)
	}

	// 3. Снимок данных зарегистрированного пациента
	// При недоступности PatientService остаёмся на данных черновика
	if req.PatientID != nil {
		patient, err := uc.patientClient.GetPatientWithGracefulDegradation(ctx, *req.PatientID)
		switch {
		case err == nil:
			req.PatientName = patient.FullName
			req.PatientPhone = ptr.Ptr(patient.Phone)
			req.PatientAge = ptr.Ptr(patient.Age)
		case errors.Is(err, patientClient.ErrPatientNotFound):
			uc.logger.Warn("CreateAppointment: patient id=%d not found", *req.PatientID)
			return nil, ErrPatientNotFound
		case errors.Is(err, patientClient.ErrServiceDegraded):
			uc.logger.Warn("CreateAppointment: patient service degraded, using draft contact fields for patient id=%d", *req.PatientID)
		default:
			uc.logger.Error("CreateAppointment: failed to get patient id=%d: %v", *req.PatientID, err)
			return nil, fmt.Errorf("%w: failed to get patient: %v", ErrInternal, err)
		}
	}

	// 4. Получаем врача и проверяем, что он принимает в эту дату
	if req.DoctorID > 0 {
		doctor, err := uc.staffClient.GetDoctor(ctx, req.DoctorID)
		if err != nil {
			if errors.Is(err, staffClient.ErrDoctorNotFound) {
				uc.logger.Warn("CreateAppointment: doctor id=%d not found", req.DoctorID)
				return nil, ErrDoctorNotFound
			}
			uc.logger.Error("CreateAppointment: failed to get doctor id=%d: %v", req.DoctorID, err)
			return nil, fmt.Errorf("%w: failed to get doctor: %v", ErrInternal, err)
		}

		if !req.Date.IsZero() {
			workingHours := getWorkingHoursForDay(doctor, req.Date)
			if !workingHours.Working {
				uc.logger.Warn("CreateAppointment: doctor=%d is not working on %s",
					req.DoctorID, req.Date.Format(domain.DateFormat))
				return nil, ErrDoctorNotAvailable
			}
		}
	}

	var result *domain.Appointment

	// 5. Валидация и вставка в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Приёмы врача на эту дату с блокировкой (FOR UPDATE)
		// Неактивные статусы слот не блокируют, их не запрашиваем
		filter := domain.DoctorAppointmentsFilter{
			DoctorID:        req.DoctorID,
			StartDate:       ptr.Ptr(req.Date),
			EndDate:         ptr.Ptr(req.Date),
			IncludeInactive: false,
		}

		existing, err := uc.appointmentRepo.GetByDoctorWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get existing appointments: %v", err)
			return fmt.Errorf("%w: failed to get existing appointments: %v", ErrInternal, err)
		}

		// 5.2. Проверяем черновик по всем правилам разом
		if fieldErrs := validateDraft(req, existing, now); fieldErrs.HasErrors() {
			uc.logger.Warn("CreateAppointment: validation failed: %v", fieldErrs)
			return &ValidationError{Fields: fieldErrs}
		}

		// 5.3. Создаем приём
		status := domain.StatusScheduled
		if req.PreConfirmed {
			status = domain.StatusConfirmed
		}

		appt := &domain.Appointment{
			PatientID:       req.PatientID,
			DoctorID:        req.DoctorID,
			Date:            req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: req.DurationMinutes,
			Kind:            req.Kind,
			Status:          status,
			PatientName:     req.PatientName,
			PatientPhone:    req.PatientPhone,
			PatientAge:      req.PatientAge,
			Notes:           req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			if errors.Is(err, apptRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateAppointment: slot taken concurrently, doctor=%d, date=%s, time=%s",
					req.DoctorID, req.Date.Format(domain.DateFormat), req.StartTime)
				return ErrSlotTaken
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d, status=%s", result.ID, result.Status)

	return toResponse(result), nil
}

// getWorkingHoursForDay возвращает рабочие часы врача на указанный день недели
func getWorkingHoursForDay(doctor *staffClient.Doctor, date time.Time) staffClient.DaySchedule {
	switch date.Weekday() {
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
		return staffClient.DaySchedule{Working: false}
	}
}
