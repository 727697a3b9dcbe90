package appointment

import (
	"time"

	"github.com/BruksfildServices01/barber-queue/internal/models"
	"github.com/BruksfildServices01/barber-queue/internal/timezone"
)

// WalkInQuery describes a walk-in request for the calendar day of Now.
type WalkInQuery struct {
	Schedule         []models.DayAvailability
	UnavailableDates []models.UnavailableDate
	Today            []models.Appointment
	DurationMinutes  int
	Now              time.Time
}

// walkInBlocks is the conflict set for walk-ins: anything not finished.
func walkInBlocks(s Status) bool {
	return !s.IsTerminal()
}

// FindWalkInSlot returns the first free start label today at or after
// now plus the walk-in buffer, aligned to the slot grid of the day. When
// the grid has no room it tries once directly after the latest booking.
func FindWalkInSlot(q WalkInQuery, p Policy) (string, error) {
	date := q.Now.Format(timezone.DateLayout)

	day, err := resolveDay(q.Schedule, q.UnavailableDates, date, false)
	if err != nil {
		return "", err
	}
	if q.DurationMinutes <= 0 {
		return "", ErrInvalidDuration
	}

	busy, err := busyIntervals(q.Today, walkInBlocks)
	if err != nil {
		return "", err
	}

	earliest := minuteOfDay(q.Now) + int(p.WalkInBuffer/time.Minute)
	step := p.stepMinutes()

	start := day.open
	if earliest > start {
		start = day.open + ceilDiv(earliest-day.open, step)*step
	}

	for ; start+q.DurationMinutes <= day.close; start += step {
		candidate := interval{start: start, end: start + q.DurationMinutes}
		if !conflicts(candidate, busy) {
			return mustLabel(start), nil
		}
	}

	if len(busy) == 0 {
		return "", ErrNoSlotAvailable
	}

	latest := busy[0].end
	for _, b := range busy[1:] {
		if b.end > latest {
			latest = b.end
		}
	}

	fallback := interval{start: latest, end: latest + q.DurationMinutes}
	if fallback.start >= earliest && fallback.end <= day.close && !conflicts(fallback, busy) {
		return mustLabel(fallback.start), nil
	}

	return "", ErrNoSlotAvailable
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
