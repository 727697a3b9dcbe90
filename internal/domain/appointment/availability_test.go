package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-queue/internal/models"
)

func TestComputeOpenSlotsFullDay(t *testing.T) {
	q := SlotQuery{
		Schedule:        weekdays("09:00 AM", "10:00 AM"),
		Date:            testDate,
		DurationMinutes: 30,
		Now:             at("2026-10-01", "08:00"),
	}

	slots, err := ComputeOpenSlots(q, DefaultPolicy())
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00 AM", "09:15 AM", "09:30 AM"}, slots)
}

func TestComputeOpenSlotsSkipsOverlaps(t *testing.T) {
	q := SlotQuery{
		Schedule:        weekdays("09:00 AM", "11:00 AM"),
		Date:            testDate,
		DurationMinutes: 30,
		Existing: []models.Appointment{
			appt("a", testDate, "09:30 AM", "10:00 AM", StatusUpcoming),
			appt("b", testDate, "10:00 AM", "10:30 AM", StatusCancelled),
		},
		Now: at("2026-10-01", "08:00"),
	}

	slots, err := ComputeOpenSlots(q, DefaultPolicy())
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00 AM", "10:00 AM", "10:15 AM", "10:30 AM"}, slots)

	busy, err := busyIntervals(q.Existing, Status.BlocksSlot)
	require.NoError(t, err)
	for _, s := range slots {
		m, _ := TimeToMinutes(s)
		assert.False(t, conflicts(interval{m, m + 30}, busy), s)
	}
}

func TestComputeOpenSlotsTodayBuffer(t *testing.T) {
	q := SlotQuery{
		Schedule:        weekdays("09:00 AM", "11:00 AM"),
		Date:            testDate,
		DurationMinutes: 30,
		Now:             at(testDate, "09:20"),
	}

	slots, err := ComputeOpenSlots(q, DefaultPolicy())
	require.NoError(t, err)
	require.NotEmpty(t, slots)
	assert.Equal(t, "09:45 AM", slots[0])

	for _, s := range slots {
		m, _ := TimeToMinutes(s)
		assert.GreaterOrEqual(t, m, 9*60+20+15)
	}
}

func TestComputeOpenSlotsPreconditions(t *testing.T) {
	schedule := weekdays("09:00 AM", "05:00 PM")

	_, err := ComputeOpenSlots(SlotQuery{
		Schedule:        schedule,
		Date:            "2026-10-11", // Sunday
		DurationMinutes: 30,
		Now:             at("2026-10-01", "08:00"),
	}, DefaultPolicy())
	assert.ErrorIs(t, err, ErrBarberClosed)

	_, err = ComputeOpenSlots(SlotQuery{
		Schedule:         schedule,
		UnavailableDates: []models.UnavailableDate{{BarberID: "barber-1", Date: testDate}},
		Date:             testDate,
		DurationMinutes:  30,
		Now:              at("2026-10-01", "08:00"),
	}, DefaultPolicy())
	assert.ErrorIs(t, err, ErrDateUnavailable)

	_, err = ComputeOpenSlots(SlotQuery{
		Schedule:        []models.DayAvailability{{Weekday: 1, IsOpen: true, StartTime: "9am", EndTime: "05:00 PM"}},
		Date:            testDate,
		DurationMinutes: 30,
		Now:             at("2026-10-01", "08:00"),
	}, DefaultPolicy())
	assert.ErrorIs(t, err, ErrMalformedTimeLabel)
}

func TestComputeOpenSlotsNoAvailabilityIsEmptyNotError(t *testing.T) {
	q := SlotQuery{
		Schedule:        weekdays("09:00 AM", "09:30 AM"),
		Date:            testDate,
		DurationMinutes: 30,
		Existing:        []models.Appointment{appt("a", testDate, "09:00 AM", "09:30 AM", StatusCompleted)},
		Now:             at("2026-10-01", "08:00"),
	}

	slots, err := ComputeOpenSlots(q, DefaultPolicy())
	require.NoError(t, err)
	assert.Empty(t, slots)
	assert.NotNil(t, slots)
}

func TestIsSlotOffered(t *testing.T) {
	q := SlotQuery{
		Schedule:        weekdays("09:00 AM", "10:00 AM"),
		Date:            testDate,
		DurationMinutes: 30,
		Now:             at("2026-10-01", "08:00"),
	}

	ok, err := IsSlotOffered(q, DefaultPolicy(), "09:15 AM")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = IsSlotOffered(q, DefaultPolicy(), "09:45 AM")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = IsSlotOffered(q, DefaultPolicy(), "09:10 AM")
	require.NoError(t, err)
	assert.False(t, ok)
}
