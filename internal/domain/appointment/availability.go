package appointment

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/barber-queue/internal/models"
	"github.com/BruksfildServices01/barber-queue/internal/timezone"
)

// SlotQuery is everything the availability engine reads. Now is expected
// in the barber's location so that its calendar date can be compared with
// Date.
type SlotQuery struct {
	Schedule         []models.DayAvailability
	UnavailableDates []models.UnavailableDate
	Date             string
	DurationMinutes  int
	Existing         []models.Appointment
	Now              time.Time
}

// ===============================
// Open slots
// ===============================

// ComputeOpenSlots returns the bookable start labels for q.Date in ascending
// order. A blocked date yields ErrDateUnavailable and a closed weekday
// ErrBarberClosed; an empty slice with a nil error means the day is open
// but full.
func ComputeOpenSlots(q SlotQuery, p Policy) ([]string, error) {
	day, err := resolveDay(q.Schedule, q.UnavailableDates, q.Date, true)
	if err != nil {
		return nil, err
	}
	if q.DurationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}

	busy, err := busyIntervals(q.Existing, Status.BlocksSlot)
	if err != nil {
		return nil, err
	}

	earliest := day.open
	if q.Date == q.Now.Format(timezone.DateLayout) {
		minStart := minuteOfDay(q.Now) + int(p.BookingBuffer/time.Minute)
		if minStart > earliest {
			earliest = minStart
		}
	}

	slots := []string{}
	step := p.stepMinutes()
	for start := day.open; start+q.DurationMinutes <= day.close; start += step {
		if start < earliest {
			continue
		}
		candidate := interval{start: start, end: start + q.DurationMinutes}
		if conflicts(candidate, busy) {
			continue
		}
		slots = append(slots, mustLabel(start))
	}

	return slots, nil
}

// IsSlotOffered reports whether start is one of the labels the engine
// would offer for q.
func IsSlotOffered(q SlotQuery, p Policy, start string) (bool, error) {
	want, err := TimeToMinutes(start)
	if err != nil {
		return false, err
	}
	slots, err := ComputeOpenSlots(q, p)
	if err != nil {
		return false, err
	}
	for _, s := range slots {
		m, _ := TimeToMinutes(s)
		if m == want {
			return true, nil
		}
	}
	return false, nil
}

// ===============================
// Helpers
// ===============================

type openDay struct {
	open  int
	close int
}

// resolveDay applies the two availability preconditions. unavailableFirst
// selects which precondition is reported when both hold.
func resolveDay(
	schedule []models.DayAvailability,
	unavailable []models.UnavailableDate,
	date string,
	unavailableFirst bool,
) (openDay, error) {
	d, err := time.Parse(timezone.DateLayout, date)
	if err != nil {
		return openDay{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	blocked := false
	for _, u := range unavailable {
		if u.Date == date {
			blocked = true
			break
		}
	}

	var entry *models.DayAvailability
	for i := range schedule {
		if schedule[i].Weekday == int(d.Weekday()) {
			entry = &schedule[i]
			break
		}
	}
	closed := entry == nil || !entry.IsOpen

	switch {
	case blocked && (unavailableFirst || !closed):
		return openDay{}, ErrDateUnavailable
	case closed:
		return openDay{}, ErrBarberClosed
	}

	iv, err := labelInterval(entry.StartTime, entry.EndTime)
	if err != nil {
		return openDay{}, err
	}
	return openDay{open: iv.start, close: iv.end}, nil
}

func busyIntervals(existing []models.Appointment, keep func(Status) bool) ([]interval, error) {
	out := make([]interval, 0, len(existing))
	for i := range existing {
		if !keep(Status(existing[i].Status)) {
			continue
		}
		iv, err := labelInterval(existing[i].StartTime, existing[i].EndTime)
		if err != nil {
			return nil, err
		}
		out = append(out, iv)
	}
	return out, nil
}

func conflicts(candidate interval, busy []interval) bool {
	for _, b := range busy {
		if candidate.overlaps(b) {
			return true
		}
	}
	return false
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
