package appointment

import (
	"fmt"

	"github.com/BruksfildServices01/barber-queue/internal/models"
)

// ValidateSchedule checks a weekly schedule before it replaces the stored
// one: weekdays 0..6 at most once each, and open days with open < close.
func ValidateSchedule(days []models.DayAvailability) error {
	if len(days) > 7 {
		return fmt.Errorf("%w: more than seven days", ErrInvalidSchedule)
	}

	seen := map[int]bool{}
	for _, d := range days {
		if d.Weekday < 0 || d.Weekday > 6 {
			return fmt.Errorf("%w: weekday %d", ErrInvalidSchedule, d.Weekday)
		}
		if seen[d.Weekday] {
			return fmt.Errorf("%w: weekday %d repeated", ErrInvalidSchedule, d.Weekday)
		}
		seen[d.Weekday] = true

		if !d.IsOpen {
			continue
		}
		iv, err := labelInterval(d.StartTime, d.EndTime)
		if err != nil {
			return err
		}
		if iv.start >= iv.end {
			return fmt.Errorf("%w: weekday %d opens after it closes", ErrInvalidSchedule, d.Weekday)
		}
	}

	return nil
}

// NormalizeSchedule returns all seven weekdays in order, filling the ones
// missing from days as closed.
func NormalizeSchedule(days []models.DayAvailability) []models.DayAvailability {
	out := make([]models.DayAvailability, 7)
	for i := range out {
		out[i] = models.DayAvailability{Weekday: i}
	}
	for _, d := range days {
		if d.Weekday >= 0 && d.Weekday <= 6 {
			out[d.Weekday] = d
		}
	}
	return out
}
