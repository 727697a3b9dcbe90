package appointment

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/barber-queue/internal/models"
	"github.com/BruksfildServices01/barber-queue/internal/timezone"
)

// ===============================
// Construction
// ===============================

// Draft carries the snapshot copied into a new appointment. Service price
// and duration are frozen here so later catalogue edits leave history alone.
type Draft struct {
	ID           string
	Barber       *models.User
	Service      *models.BarberService
	CustomerID   *string
	CustomerName string
	Date         string
	StartTime    string
	Location     *time.Location
}

func (d Draft) build(status Status, now time.Time) (*models.Appointment, error) {
	if d.Service.DurationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}

	start, err := TimeToMinutes(d.StartTime)
	if err != nil {
		return nil, err
	}
	end := start + d.Service.DurationMinutes
	if end >= minutesPerDay {
		return nil, fmt.Errorf("%w: service ends after midnight", ErrInvalidDuration)
	}
	endLabel, err := MinutesToTime(end)
	if err != nil {
		return nil, err
	}

	ts, err := Instant(d.Date, d.StartTime, d.Location)
	if err != nil {
		return nil, err
	}

	startLabel := mustLabel(start)
	return &models.Appointment{
		ID:                   d.ID,
		BarberID:             d.Barber.ID,
		BarberName:           d.Barber.Name,
		CustomerID:           d.CustomerID,
		CustomerName:         d.CustomerName,
		ServiceID:            d.Service.ID,
		ServiceName:          d.Service.Name,
		Price:                d.Service.Price,
		DurationMinutes:      d.Service.DurationMinutes,
		Date:                 d.Date,
		StartTime:            startLabel,
		EndTime:              endLabel,
		AppointmentTimestamp: ts,
		Status:               string(status),
		CreatedAt:            now,
		UpdatedAt:            now,
	}, nil
}

// NewBooking builds an online booking in the upcoming status.
func NewBooking(d Draft, now time.Time) (*models.Appointment, error) {
	return d.build(InitialStatus(), now)
}

// NewWalkIn builds a walk-in already in progress, arrival acknowledged by
// both sides at now.
func NewWalkIn(d Draft, now time.Time) (*models.Appointment, error) {
	d.CustomerID = nil
	ap, err := d.build(WalkInStatus(), now)
	if err != nil {
		return nil, err
	}
	ap.CustomerCheckedInAt.Fill(now)
	ap.BarberCheckedInAt.Fill(now)
	ap.ServiceActuallyStartedAt.Fill(now)
	return ap, nil
}

// Instant resolves date and a 12-hour label to an absolute time in loc.
func Instant(date, label string, loc *time.Location) (time.Time, error) {
	m, err := TimeToMinutes(label)
	if err != nil {
		return time.Time{}, err
	}
	if loc == nil {
		loc = time.UTC
	}
	day, err := time.ParseInLocation(timezone.DateLayout, date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), m/60, m%60, 0, 0, loc), nil
}

// ===============================
// Derived flags
// ===============================

// IsStale reports an appointment still waiting on arrival past its start
// plus threshold. It is never persisted.
func IsStale(ap *models.Appointment, now time.Time, threshold time.Duration) bool {
	switch Status(ap.Status) {
	case StatusUpcoming, StatusCustomerInitiatedCheckIn:
		return now.After(ap.AppointmentTimestamp.Add(threshold))
	}
	return false
}

// OverlapsAny reports whether ap's interval intersects another appointment
// of the same date that blocks it. Walk-ins only yield to unfinished
// appointments; bookings yield to everything not cancelled.
func OverlapsAny(ap *models.Appointment, others []models.Appointment) (bool, error) {
	iv, err := labelInterval(ap.StartTime, ap.EndTime)
	if err != nil {
		return false, err
	}

	blocks := Status.BlocksSlot
	if ap.IsWalkIn() {
		blocks = walkInBlocks
	}

	for i := range others {
		o := &others[i]
		if o.ID == ap.ID || o.Date != ap.Date || !blocks(Status(o.Status)) {
			continue
		}
		oiv, err := labelInterval(o.StartTime, o.EndTime)
		if err != nil {
			return false, err
		}
		if iv.overlaps(oiv) {
			return true, nil
		}
	}
	return false, nil
}
