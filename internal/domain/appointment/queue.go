package appointment

import (
	"cmp"
	"slices"
	"time"

	"github.com/BruksfildServices01/barber-queue/internal/models"
)

// QueueEstimate is the one-time snapshot shown after a same-day booking.
type QueueEstimate struct {
	Position             int     `json:"position"`
	EstimatedWaitMinutes int     `json:"estimated_wait_minutes"`
	CurrentlyServing     *string `json:"currently_serving"`
	IsNext               bool    `json:"is_next"`
}

// DurationLookup resolves the service length of an appointment in minutes.
type DurationLookup func(ap *models.Appointment) int

// SnapshotDuration reads the duration frozen at booking time.
func SnapshotDuration(ap *models.Appointment) int {
	return ap.DurationMinutes
}

type queued struct {
	ap    *models.Appointment
	start int
}

// EstimateQueue places booked among today's open appointments. Entries in
// today outside QueueStatuses are ignored.
func EstimateQueue(
	today []models.Appointment,
	booked *models.Appointment,
	duration DurationLookup,
	now time.Time,
) (QueueEstimate, error) {
	if duration == nil {
		duration = SnapshotDuration
	}

	if Status(booked.Status) == StatusInProgress {
		return QueueEstimate{Position: 1}, nil
	}

	line := make([]queued, 0, len(today)+1)
	present := false
	for i := range today {
		ap := &today[i]
		if !Status(ap.Status).InQueue() {
			continue
		}
		if ap.ID == booked.ID {
			present = true
			ap = booked
		}
		m, err := TimeToMinutes(ap.StartTime)
		if err != nil {
			return QueueEstimate{}, err
		}
		line = append(line, queued{ap: ap, start: m})
	}
	if !present {
		m, err := TimeToMinutes(booked.StartTime)
		if err != nil {
			return QueueEstimate{}, err
		}
		line = append(line, queued{ap: booked, start: m})
	}

	slices.SortStableFunc(line, func(a, b queued) int {
		return cmp.Compare(a.start, b.start)
	})

	var est QueueEstimate
	serving := -1
	for i, q := range line {
		if q.ap.ID == booked.ID {
			est.Position = i + 1
			break
		}

		d := duration(q.ap)
		if Status(q.ap.Status) == StatusInProgress {
			serving = i
			name := q.ap.CustomerName
			est.CurrentlyServing = &name
			d -= elapsedMinutes(q.ap, now)
			if d < 0 {
				d = 0
			}
		}
		est.EstimatedWaitMinutes += d
	}

	// An in-progress appointment queued after the booked one still counts
	// as the chair being busy.
	if est.CurrentlyServing == nil {
		for _, q := range line[est.Position:] {
			if Status(q.ap.Status) == StatusInProgress {
				name := q.ap.CustomerName
				est.CurrentlyServing = &name
				serving = len(line)
				break
			}
		}
	}

	switch {
	case serving < 0:
		est.IsNext = est.Position == 1
	default:
		est.IsNext = serving == est.Position-2
	}

	return est, nil
}

func elapsedMinutes(ap *models.Appointment, now time.Time) int {
	started, ok := ap.ServiceActuallyStartedAt.Time()
	if !ok || now.Before(started) {
		return 0
	}
	return int(now.Sub(started) / time.Minute)
}
