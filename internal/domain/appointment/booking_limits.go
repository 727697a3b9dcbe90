package appointment

import (
	"time"

	"github.com/BruksfildServices01/barber-queue/internal/models"
	"github.com/BruksfildServices01/barber-queue/internal/timezone"
)

// CanBook applies the per-customer limits across every barber. It returns
// nil when the booking is allowed.
func CanBook(customerAppointments []models.Appointment, targetDate string, p Policy) error {
	target, err := time.Parse(timezone.DateLayout, targetDate)
	if err != nil {
		return ErrInvalidDate
	}

	weekStart, weekEnd := WeekBounds(target)

	daily, weekly := 0, 0
	for _, ap := range customerAppointments {
		if Status(ap.Status) == StatusCancelled {
			continue
		}
		if ap.Date == targetDate {
			daily++
		}
		if ap.Date >= weekStart && ap.Date <= weekEnd {
			weekly++
		}
	}

	if daily >= p.MaxBookingsPerDay {
		return ErrDailyLimitExceeded
	}
	if weekly >= p.MaxBookingsPerWeek {
		return ErrWeeklyLimitExceeded
	}
	return nil
}

// WeekBounds returns the Monday and Sunday, as ISO dates, of the week
// containing d.
func WeekBounds(d time.Time) (string, string) {
	offset := (int(d.Weekday()) + 6) % 7
	monday := d.AddDate(0, 0, -offset)
	sunday := monday.AddDate(0, 0, 6)
	return monday.Format(timezone.DateLayout), sunday.Format(timezone.DateLayout)
}
