package get_day_schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CMS-SchedulingService/internal/domain"
	"github.com/m04kA/CMS-SchedulingService/pkg/types"
)

func TestGenerateSlots(t *testing.T) {
	t.Run("standard 15 minute grid", func(t *testing.T) {
		slots := generateSlots(8, 12, 15)

		require.Len(t, slots, 16)
		assert.Equal(t, types.TimeString("08:00"), slots[0])
		assert.Equal(t, types.TimeString("08:15"), slots[1])
		assert.Equal(t, types.TimeString("11:45"), slots[15])
	})

	t.Run("30 minute grid", func(t *testing.T) {
		slots := generateSlots(9, 11, 30)

		assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00", "10:30"}, slots)
	})

	t.Run("step that does not divide the hour resets at the hour boundary", func(t *testing.T) {
		slots := generateSlots(9, 11, 25)

		assert.Equal(t, []types.TimeString{"09:00", "09:25", "09:50", "10:00", "10:25", "10:50"}, slots)
	})

	t.Run("empty range yields empty grid", func(t *testing.T) {
		assert.Empty(t, generateSlots(9, 9, 15))
	})

	t.Run("inverted range yields empty grid", func(t *testing.T) {
		assert.Empty(t, generateSlots(10, 8, 15))
	})

	t.Run("non-positive step yields empty grid", func(t *testing.T) {
		assert.Empty(t, generateSlots(8, 12, 0))
	})
}

func TestOccupancyIndex(t *testing.T) {
	appointments := []*domain.Appointment{
		{ID: 1, StartTime: "09:00", DurationMinutes: 30, Status: domain.StatusScheduled, PatientName: "Иванов И.И."},
		{ID: 2, StartTime: "10:10", DurationMinutes: 30, Status: domain.StatusConfirmed, PatientName: "Петров П.П."},
		{ID: 3, StartTime: "11:00", DurationMinutes: 30, Status: domain.StatusCancelled, PatientName: "Сидоров С.С."},
	}

	idx := newOccupancyIndex(appointments)

	t.Run("point inside an interval is occupied", func(t *testing.T) {
		assert.True(t, idx.isOccupied("09:00"))
		assert.True(t, idx.isOccupied("09:15"))
	})

	t.Run("interval end is exclusive", func(t *testing.T) {
		assert.False(t, idx.isOccupied("09:30"))
	})

	t.Run("off-grid appointment occupies covered grid points", func(t *testing.T) {
		// Appointment [10:10, 10:40) covers the 10:15 and 10:30 grid points
		assert.False(t, idx.isOccupied("10:00"))
		assert.True(t, idx.isOccupied("10:15"))
		assert.True(t, idx.isOccupied("10:30"))
		assert.False(t, idx.isOccupied("10:45"))
	})

	t.Run("cancelled appointment frees its slot", func(t *testing.T) {
		assert.False(t, idx.isOccupied("11:00"))
		assert.False(t, idx.isOccupied("11:15"))
		assert.Nil(t, idx.appointmentStartingAt("11:00"))
	})

	t.Run("appointment starting exactly at a grid point", func(t *testing.T) {
		appt := idx.appointmentStartingAt("09:00")
		require.NotNil(t, appt)
		assert.Equal(t, int64(1), appt.ID)

		assert.Nil(t, idx.appointmentStartingAt("09:15"))
	})
}
