package appointment

import (
	"cmp"
	"slices"
	"time"

	"github.com/BruksfildServices01/barber-queue/internal/models"
	"github.com/BruksfildServices01/barber-queue/internal/timezone"
)

// ShiftQuery is the input of the resume hook: the barber was away from
// UnavailableSince until Now.
type ShiftQuery struct {
	Schedule         []models.DayAvailability
	UnavailableDates []models.UnavailableDate
	Today            []models.Appointment
	UnavailableSince time.Time
	Now              time.Time
}

type ShiftPlan struct {
	AppointmentID string `json:"appointment_id"`
	FromStart     string `json:"from_start"`
	ToStart       string `json:"to_start"`
	ToEnd         string `json:"to_end"`
}

// ShiftResult lists the moves to persist and the appointments for which
// no free slot remains today.
type ShiftResult struct {
	Moves       []ShiftPlan `json:"moves"`
	Unshiftable []string    `json:"unshiftable"`
}

// PlanShift re-slots today's upcoming appointments that start after the
// barber stepped away. They are handled in ascending original start; each
// keeps its slot when it is still in the future and free, and otherwise
// takes the first slot the availability engine offers at or after its
// original start, given everything already placed.
func PlanShift(q ShiftQuery, p Policy) (ShiftResult, error) {
	res := ShiftResult{Moves: []ShiftPlan{}, Unshiftable: []string{}}
	date := q.Now.Format(timezone.DateLayout)

	since := 0
	if q.UnavailableSince.In(q.Now.Location()).Format(timezone.DateLayout) == date {
		since = minuteOfDay(q.UnavailableSince.In(q.Now.Location()))
	}

	var affected []queued
	var placed []models.Appointment
	for i := range q.Today {
		ap := q.Today[i]
		if ap.Date != date || !Status(ap.Status).BlocksSlot() {
			continue
		}
		start, err := TimeToMinutes(ap.StartTime)
		if err != nil {
			return res, err
		}
		if Status(ap.Status) == StatusUpcoming && start >= since {
			affected = append(affected, queued{ap: &q.Today[i], start: start})
			continue
		}
		placed = append(placed, ap)
	}

	if len(affected) == 0 {
		return res, nil
	}

	slices.SortStableFunc(affected, func(a, b queued) int {
		return cmp.Compare(a.start, b.start)
	})

	nowMin := minuteOfDay(q.Now)
	for _, a := range affected {
		ap := *a.ap

		if a.start >= nowMin {
			overlap, err := OverlapsAny(&ap, placed)
			if err != nil {
				return res, err
			}
			if !overlap {
				placed = append(placed, ap)
				continue
			}
		}

		slots, err := ComputeOpenSlots(SlotQuery{
			Schedule:         q.Schedule,
			UnavailableDates: q.UnavailableDates,
			Date:             date,
			DurationMinutes:  ap.DurationMinutes,
			Existing:         placed,
			Now:              q.Now,
		}, p)
		if err != nil {
			return res, err
		}

		floor := max(a.start, nowMin)
		moved := false
		for _, s := range slots {
			m, _ := TimeToMinutes(s)
			if m < floor {
				continue
			}
			end := m + ap.DurationMinutes
			res.Moves = append(res.Moves, ShiftPlan{
				AppointmentID: ap.ID,
				FromStart:     ap.StartTime,
				ToStart:       s,
				ToEnd:         mustLabel(end),
			})
			ap.StartTime = s
			ap.EndTime = mustLabel(end)
			moved = true
			break
		}

		if !moved {
			res.Unshiftable = append(res.Unshiftable, ap.ID)
		}
		placed = append(placed, ap)
	}

	return res, nil
}

// ApplyShift moves ap to plan's slot and recomputes its timestamp.
func ApplyShift(ap *models.Appointment, plan ShiftPlan, loc *time.Location, now time.Time) error {
	ts, err := Instant(ap.Date, plan.ToStart, loc)
	if err != nil {
		return err
	}
	ap.StartTime = plan.ToStart
	ap.EndTime = plan.ToEnd
	ap.AppointmentTimestamp = ts
	ap.UpdatedAt = now
	return nil
}
