package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-queue/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-queue/internal/events"
	"github.com/BruksfildServices01/barber-queue/internal/models"
	"github.com/BruksfildServices01/barber-queue/internal/timezone"
)

// BarberAvailability toggles the barber flags. Returning from a temporary
// absence runs the shift planner over today's remaining appointments.
type BarberAvailability struct {
	deps Deps
}

func NewBarberAvailability(deps Deps) *BarberAvailability {
	return &BarberAvailability{deps: deps.withDefaults()}
}

// SetAcceptingBookings gates new online bookings only.
func (uc *BarberAvailability) SetAcceptingBookings(ctx context.Context, barberID string, accepting bool) (*models.User, error) {
	barber, err := loadBarber(ctx, uc.deps.Repo, barberID)
	if err != nil {
		return nil, err
	}

	barber.IsAcceptingBookings = accepting
	barber.UpdatedAt = uc.deps.Clock.Now()
	if err := uc.deps.Repo.SaveUser(ctx, barber); err != nil {
		return nil, err
	}
	return barber, nil
}

// SetTemporarilyUnavailable records or clears a short absence. The shift
// result is nil unless the call ended an absence.
func (uc *BarberAvailability) SetTemporarilyUnavailable(
	ctx context.Context,
	barberID string,
	unavailable bool,
) (*models.User, *domain.ShiftResult, error) {

	barber, err := loadBarber(ctx, uc.deps.Repo, barberID)
	if err != nil {
		return nil, nil, err
	}

	now := timezone.NowIn(uc.deps.Clock, barber.Timezone)
	wasAway := barber.IsTemporarilyUnavailable
	since := barber.UnavailableSince

	barber.IsTemporarilyUnavailable = unavailable
	barber.UpdatedAt = now
	if unavailable {
		if !wasAway {
			barber.UnavailableSince = &now
		}
	} else {
		barber.UnavailableSince = nil
	}

	if err := uc.deps.Repo.SaveUser(ctx, barber); err != nil {
		return nil, nil, err
	}

	if unavailable || !wasAway || since == nil {
		return barber, nil, nil
	}

	res, err := uc.resume(ctx, barber, *since, now)
	if err != nil {
		return barber, nil, err
	}
	return barber, res, nil
}

func (uc *BarberAvailability) resume(ctx context.Context, barber *models.User, since, now time.Time) (*domain.ShiftResult, error) {
	repo := uc.deps.Repo
	today := timezone.FormatDate(now)

	days, unavailable, err := loadCalendar(ctx, repo, barber.ID)
	if err != nil {
		return nil, err
	}

	appointments, err := repo.ListAppointmentsForDay(ctx, barber.ID, today)
	if err != nil {
		return nil, err
	}

	res, err := domain.PlanShift(domain.ShiftQuery{
		Schedule:         days,
		UnavailableDates: unavailable,
		Today:            appointments,
		UnavailableSince: since,
		Now:              now,
	}, uc.deps.Policy)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*models.Appointment, len(appointments))
	for i := range appointments {
		byID[appointments[i].ID] = &appointments[i]
	}

	loc := timezone.Location(barber.Timezone)
	for _, move := range res.Moves {
		ap := byID[move.AppointmentID]
		if err := domain.ApplyShift(ap, move, loc, now); err != nil {
			return nil, err
		}
		if err := repo.UpdateAppointment(ctx, ap); err != nil {
			uc.deps.Logger.Error().Err(err).Str("appointment_id", ap.ID).Msg("failed to persist shifted appointment")
			return nil, err
		}

		p := payloadOf(ap, now)
		p.PreviousStart = move.FromStart
		actor := barber.ID
		p.ActorID = &actor
		p.ActorRole = string(domain.RoleBarber)
		uc.deps.publish(events.TopicAppointmentRescheduled, p)
	}

	if len(res.Unshiftable) > 0 {
		uc.deps.Logger.Warn().
			Str("barber_id", barber.ID).
			Strs("appointment_ids", res.Unshiftable).
			Msg("appointments could not be shifted after barber returned")
	}

	return &res, nil
}
