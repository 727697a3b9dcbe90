package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/barber-queue/internal/models"
)

func TestCanBook(t *testing.T) {
	p := DefaultPolicy()

	other := func(a models.Appointment) models.Appointment {
		a.BarberID = "barber-2"
		return a
	}

	tests := []struct {
		name     string
		existing []models.Appointment
		target   string
		want     error
	}{
		{name: "first booking", target: testDate, want: nil},
		{
			name:     "second in week",
			existing: []models.Appointment{appt("a", "2026-10-13", "09:00 AM", "09:30 AM", StatusUpcoming)},
			target:   testDate,
			want:     nil,
		},
		{
			name:     "second same day other barber",
			existing: []models.Appointment{other(appt("a", testDate, "04:00 PM", "04:30 PM", StatusUpcoming))},
			target:   testDate,
			want:     ErrDailyLimitExceeded,
		},
		{
			name: "third in week",
			existing: []models.Appointment{
				appt("a", "2026-10-13", "09:00 AM", "09:30 AM", StatusCompleted),
				other(appt("b", "2026-10-18", "09:00 AM", "09:30 AM", StatusUpcoming)),
			},
			target: testDate,
			want:   ErrWeeklyLimitExceeded,
		},
		{
			name: "cancelled ones do not count",
			existing: []models.Appointment{
				appt("a", testDate, "09:00 AM", "09:30 AM", StatusCancelled),
				appt("b", "2026-10-13", "09:00 AM", "09:30 AM", StatusCancelled),
				appt("c", "2026-10-14", "09:00 AM", "09:30 AM", StatusNoShow),
			},
			target: testDate,
			want:   nil,
		},
		{
			name: "previous week is ignored",
			existing: []models.Appointment{
				appt("a", "2026-10-11", "09:00 AM", "09:30 AM", StatusUpcoming),
				appt("b", "2026-10-10", "09:00 AM", "09:30 AM", StatusUpcoming),
			},
			target: testDate,
			want:   nil,
		},
		{name: "bad date", target: "12/10/2026", want: ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanBook(tt.existing, tt.target, p)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestWeekBounds(t *testing.T) {
	for _, d := range []string{"2026-10-12", "2026-10-14", "2026-10-18"} {
		day, _ := time.Parse("2006-01-02", d)
		mon, sun := WeekBounds(day)
		assert.Equal(t, "2026-10-12", mon, d)
		assert.Equal(t, "2026-10-18", sun, d)
	}
}
