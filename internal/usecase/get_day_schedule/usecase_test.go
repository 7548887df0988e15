package get_day_schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CMS-SchedulingService/internal/domain"
	"github.com/m04kA/CMS-SchedulingService/internal/integrations/staffservice"
	"github.com/m04kA/CMS-SchedulingService/pkg/types"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
}

func (f *fakeAppointmentRepo) GetByDoctorWithFilter(_ context.Context, _ domain.DoctorAppointmentsFilter) ([]*domain.Appointment, error) {
	return f.appointments, nil
}

type fakeConfigRepo struct {
	config *domain.DoctorScheduleConfig
	err    error
}

func (f *fakeConfigRepo) GetForDoctor(_ context.Context, _ int64) (*domain.DoctorScheduleConfig, error) {
	return f.config, f.err
}

type fakeStaffClient struct {
	doctor *staffservice.Doctor
	err    error
}

func (f *fakeStaffClient) GetDoctor(_ context.Context, _ int64) (*staffservice.Doctor, error) {
	return f.doctor, f.err
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

func weekdayDoctor(startHour, endHour int) *staffservice.Doctor {
	day := staffservice.DaySchedule{Working: true, StartHour: startHour, EndHour: endHour}
	return &staffservice.Doctor{
		ID:       7,
		FullName: "Смирнова А.В.",
		WorkingHours: staffservice.WeekSchedule{
			Monday:    day,
			Tuesday:   day,
			Wednesday: day,
			Thursday:  day,
			Friday:    day,
		},
	}
}

func TestExecuteBuildsAnnotatedGrid(t *testing.T) {
	// 2026-09-16 is a Wednesday
	date := time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)

	appointments := []*domain.Appointment{
		{ID: 1, Date: date, StartTime: "09:00", DurationMinutes: 30, Status: domain.StatusConfirmed, PatientName: "Иванов И.И.", Kind: domain.KindConsultation},
		{ID: 2, Date: date, StartTime: "10:00", DurationMinutes: 30, Status: domain.StatusCancelled, PatientName: "Петров П.П.", Kind: domain.KindFollowUp},
	}

	uc := NewUseCase(
		&fakeAppointmentRepo{appointments: appointments},
		&fakeConfigRepo{config: &domain.DoctorScheduleConfig{DayStartHour: 8, DayEndHour: 20, SlotStepMinutes: 15}},
		&fakeStaffClient{doctor: weekdayDoctor(9, 12)},
		nopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: now}

	resp, err := uc.Execute(context.Background(), &Request{DoctorID: 7, Date: date})

	require.NoError(t, err)
	// Doctor hours 9-12 override the 8-20 grid config
	require.Len(t, resp.Slots, 12)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("11:45"), resp.Slots[11].StartTime)

	// 09:00 and 09:15 are covered by the confirmed appointment
	assert.True(t, resp.Slots[0].Occupied)
	assert.False(t, resp.Slots[0].Bookable)
	require.NotNil(t, resp.Slots[0].Appointment)
	assert.Equal(t, int64(1), resp.Slots[0].Appointment.ID)
	assert.Equal(t, "confirmed", resp.Slots[0].Appointment.Status)

	assert.True(t, resp.Slots[1].Occupied)
	assert.Nil(t, resp.Slots[1].Appointment)

	// 09:30 is free again
	assert.False(t, resp.Slots[2].Occupied)
	assert.True(t, resp.Slots[2].Bookable)

	// The cancelled appointment at 10:00 neither occupies nor shows a card
	assert.False(t, resp.Slots[4].Occupied)
	assert.True(t, resp.Slots[4].Bookable)
	assert.Nil(t, resp.Slots[4].Appointment)
}

func TestExecuteProjectsMissedStatus(t *testing.T) {
	// 2026-09-14 is a Monday that has already passed by now
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)

	appointments := []*domain.Appointment{
		{ID: 1, Date: date, StartTime: "09:00", DurationMinutes: 30, Status: domain.StatusScheduled, PatientName: "Иванов И.И.", Kind: domain.KindConsultation},
	}

	uc := NewUseCase(
		&fakeAppointmentRepo{appointments: appointments},
		&fakeConfigRepo{config: &domain.DoctorScheduleConfig{DayStartHour: 8, DayEndHour: 20, SlotStepMinutes: 15}},
		&fakeStaffClient{doctor: weekdayDoctor(9, 12)},
		nopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: now}

	resp, err := uc.Execute(context.Background(), &Request{DoctorID: 7, Date: date})

	require.NoError(t, err)
	require.NotNil(t, resp.Slots[0].Appointment)
	assert.Equal(t, "missed", resp.Slots[0].Appointment.Status)
}

func TestExecuteNonWorkingDay(t *testing.T) {
	// 2026-09-20 is a Sunday
	date := time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)

	uc := NewUseCase(
		&fakeAppointmentRepo{},
		&fakeConfigRepo{config: &domain.DoctorScheduleConfig{DayStartHour: 8, DayEndHour: 20, SlotStepMinutes: 15}},
		&fakeStaffClient{doctor: weekdayDoctor(9, 18)},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{DoctorID: 7, Date: date})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecuteDoctorNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeAppointmentRepo{},
		&fakeConfigRepo{},
		&fakeStaffClient{err: staffservice.ErrDoctorNotFound},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		DoctorID: 7,
		Date:     time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestExecuteInvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeAppointmentRepo{}, &fakeConfigRepo{}, &fakeStaffClient{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{DoctorID: 0})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
