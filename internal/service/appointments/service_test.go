package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CMS-SchedulingService/internal/domain"
	apptRepo "github.com/m04kA/CMS-SchedulingService/internal/infra/storage/appointment"
	"github.com/m04kA/CMS-SchedulingService/internal/service/appointments/models"
)

type fakeRepo struct {
	appointments map[int64]*domain.Appointment

	updatedStatus *domain.AppointmentStatus
	cancelReason  *string
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := f.appointments[id]
	if !ok {
		return nil, apptRepo.ErrAppointmentNotFound
	}
	copied := *appt
	return &copied, nil
}

func (f *fakeRepo) GetByPatientID(_ context.Context, patientID int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	var result []*domain.Appointment
	for _, appt := range f.appointments {
		if appt.PatientID == nil || *appt.PatientID != patientID {
			continue
		}
		if status != nil && appt.Status != *status {
			continue
		}
		result = append(result, appt)
	}
	return result, nil
}

func (f *fakeRepo) GetByDoctorWithFilter(_ context.Context, filter domain.DoctorAppointmentsFilter) ([]*domain.Appointment, error) {
	var result []*domain.Appointment
	for _, appt := range f.appointments {
		if appt.DoctorID == filter.DoctorID {
			result = append(result, appt)
		}
	}
	return result, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	appt, ok := f.appointments[id]
	if !ok {
		return apptRepo.ErrAppointmentNotFound
	}
	appt.Status = status
	f.updatedStatus = &status
	return nil
}

func (f *fakeRepo) Cancel(_ context.Context, id int64, reason string) error {
	appt, ok := f.appointments[id]
	if !ok {
		return apptRepo.ErrAppointmentNotFound
	}
	appt.Status = domain.StatusCancelled
	f.cancelReason = &reason
	return nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(repo *fakeRepo, now time.Time) *Service {
	svc := NewService(repo, nopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: now}
	return svc
}

func TestGetByIDProjectsMissed(t *testing.T) {
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)
	repo := &fakeRepo{appointments: map[int64]*domain.Appointment{
		1: {
			ID:              1,
			DoctorID:        7,
			Date:            time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
			StartTime:       "09:00",
			DurationMinutes: 30,
			Status:          domain.StatusScheduled,
		},
	}}
	svc := newTestService(repo, now)

	resp, err := svc.GetByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "missed", resp.Status)
	assert.Equal(t, "scheduled", resp.StoredStatus)
}

func TestGetByIDNotFound(t *testing.T) {
	svc := newTestService(&fakeRepo{appointments: map[int64]*domain.Appointment{}}, time.Now())

	_, err := svc.GetByID(context.Background(), 404)

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestUpdateStatus(t *testing.T) {
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)
	future := time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)

	newRepo := func(status domain.AppointmentStatus) *fakeRepo {
		return &fakeRepo{appointments: map[int64]*domain.Appointment{
			1: {
				ID: 1, DoctorID: 7, Date: future, StartTime: "10:00",
				DurationMinutes: 30, Status: status,
			},
		}}
	}

	t.Run("allowed transition is persisted", func(t *testing.T) {
		repo := newRepo(domain.StatusScheduled)
		svc := newTestService(repo, now)

		err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{UserID: 5, Status: "confirmed"})

		require.NoError(t, err)
		require.NotNil(t, repo.updatedStatus)
		assert.Equal(t, domain.StatusConfirmed, *repo.updatedStatus)
	})

	t.Run("forbidden transition is rejected before persisting", func(t *testing.T) {
		repo := newRepo(domain.StatusScheduled)
		svc := newTestService(repo, now)

		err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{UserID: 5, Status: "completed"})

		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Nil(t, repo.updatedStatus)
	})

	t.Run("unknown status", func(t *testing.T) {
		repo := newRepo(domain.StatusScheduled)
		svc := newTestService(repo, now)

		err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{UserID: 5, Status: "postponed"})

		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("missing appointment", func(t *testing.T) {
		svc := newTestService(&fakeRepo{appointments: map[int64]*domain.Appointment{}}, now)

		err := svc.UpdateStatus(context.Background(), 404, &models.UpdateStatusRequest{UserID: 5, Status: "confirmed"})

		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestCancel(t *testing.T) {
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)
	future := time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)

	newRepo := func(status domain.AppointmentStatus) *fakeRepo {
		return &fakeRepo{appointments: map[int64]*domain.Appointment{
			1: {
				ID: 1, DoctorID: 7, Date: future, StartTime: "10:00",
				DurationMinutes: 30, Status: status,
			},
		}}
	}

	t.Run("scheduled appointment is cancelled with reason", func(t *testing.T) {
		repo := newRepo(domain.StatusScheduled)
		svc := newTestService(repo, now)

		err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{UserID: 5, Reason: "пациент попросил"})

		require.NoError(t, err)
		require.NotNil(t, repo.cancelReason)
		assert.Equal(t, "пациент попросил", *repo.cancelReason)
	})

	t.Run("confirmed appointment can be cancelled", func(t *testing.T) {
		repo := newRepo(domain.StatusConfirmed)
		svc := newTestService(repo, now)

		err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{UserID: 5, Reason: "перенос клиники"})

		assert.NoError(t, err)
	})

	t.Run("completed appointment cannot be cancelled", func(t *testing.T) {
		repo := newRepo(domain.StatusCompleted)
		svc := newTestService(repo, now)

		err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{UserID: 5, Reason: "поздно"})

		assert.ErrorIs(t, err, ErrCannotCancel)
		assert.Nil(t, repo.cancelReason)
	})

	t.Run("in progress appointment cannot be cancelled", func(t *testing.T) {
		repo := newRepo(domain.StatusInProgress)
		svc := newTestService(repo, now)

		err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{UserID: 5, Reason: "поздно"})

		assert.ErrorIs(t, err, ErrCannotCancel)
	})
}
