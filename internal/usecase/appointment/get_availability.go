package appointment

import (
	"context"
	"errors"

	domain "github.com/BruksfildServices01/barber-queue/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-queue/internal/timezone"
)

type GetAvailabilityInput struct {
	BarberID  string
	ServiceID string
	Date      string
}

// AvailabilityResult carries the open slots. Reason is set when Slots is
// empty so callers can tell a closed or blocked day from a full one.
type AvailabilityResult struct {
	Date            string   `json:"date"`
	ServiceID       string   `json:"service_id"`
	DurationMinutes int      `json:"duration_minutes"`
	Slots           []string `json:"slots"`
	Reason          string   `json:"reason,omitempty"`
}

const (
	ReasonBarberClosed    = "barber_closed"
	ReasonDateUnavailable = "date_unavailable"
	ReasonNoAvailability  = "no_slot_available"
)

type GetAvailability struct {
	deps Deps
}

func NewGetAvailability(deps Deps) *GetAvailability {
	return &GetAvailability{deps: deps.withDefaults()}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in GetAvailabilityInput,
) (*AvailabilityResult, error) {

	barber, err := loadBarber(ctx, uc.deps.Repo, in.BarberID)
	if err != nil {
		return nil, err
	}

	service, err := loadService(ctx, uc.deps.Repo, in.BarberID, in.ServiceID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(barber.Timezone)
	now := timezone.NowIn(uc.deps.Clock, barber.Timezone)
	if err := checkDate(in.Date, loc, now); err != nil {
		return nil, err
	}

	res := &AvailabilityResult{
		Date:            in.Date,
		ServiceID:       service.ID,
		DurationMinutes: service.DurationMinutes,
		Slots:           []string{},
	}

	days, unavailable, err := loadCalendar(ctx, uc.deps.Repo, in.BarberID)
	if err != nil {
		return nil, err
	}

	existing, err := uc.deps.Repo.ListAppointmentsForDay(ctx, in.BarberID, in.Date)
	if err != nil {
		return nil, err
	}

	slots, err := domain.ComputeOpenSlots(domain.SlotQuery{
		Schedule:         days,
		UnavailableDates: unavailable,
		Date:             in.Date,
		DurationMinutes:  service.DurationMinutes,
		Existing:         existing,
		Now:              now,
	}, uc.deps.Policy)

	switch {
	case errors.Is(err, domain.ErrBarberClosed):
		res.Reason = ReasonBarberClosed
		return res, nil
	case errors.Is(err, domain.ErrDateUnavailable):
		res.Reason = ReasonDateUnavailable
		return res, nil
	case err != nil:
		return nil, err
	}

	res.Slots = slots
	if len(slots) == 0 {
		res.Reason = ReasonNoAvailability
	}
	return res, nil
}
