package appointment

import (
	"context"
	"errors"

	domain "github.com/BruksfildServices01/barber-queue/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-queue/internal/events"
	"github.com/BruksfildServices01/barber-queue/internal/metrics"
	"github.com/BruksfildServices01/barber-queue/internal/models"
	"github.com/BruksfildServices01/barber-queue/internal/timezone"
)

type TransitionInput struct {
	AppointmentID string
	Actor         domain.Actor
	Action        domain.Action
}

// TransitionAppointment reads the appointment, asks the state machine for
// the next state and writes it back. Concurrent writers are last-write-wins.
type TransitionAppointment struct {
	deps Deps
}

func NewTransitionAppointment(deps Deps) *TransitionAppointment {
	return &TransitionAppointment{deps: deps.withDefaults()}
}

func (uc *TransitionAppointment) Execute(
	ctx context.Context,
	in TransitionInput,
) (*models.Appointment, error) {

	ap, err := loadAppointment(ctx, uc.deps.Repo, in.AppointmentID)
	if err != nil {
		return nil, err
	}

	if err := domain.Authorize(ap, in.Actor); err != nil {
		return nil, rejected("transition", err)
	}

	tz := ""
	if barber, err := uc.deps.Repo.GetUser(ctx, ap.BarberID); err == nil {
		tz = barber.Timezone
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	now := timezone.NowIn(uc.deps.Clock, tz)

	decision, err := domain.Decide(ap, in.Actor.Role, in.Action, now, uc.deps.Policy)
	if err != nil {
		uc.deps.Logger.Debug().
			Err(err).
			Str("appointment_id", ap.ID).
			Str("status", ap.Status).
			Str("action", string(in.Action)).
			Str("role", string(in.Actor.Role)).
			Msg("transition rejected")
		return nil, rejected("transition", err)
	}

	domain.Apply(ap, decision)

	if err := uc.deps.Repo.UpdateAppointment(ctx, ap); err != nil {
		uc.deps.Logger.Error().Err(err).Str("appointment_id", ap.ID).Msg("failed to persist transition")
		return nil, err
	}

	metrics.IncTransition(string(decision.From), string(decision.To))

	p := payloadOf(ap, now)
	actorID := in.Actor.ID
	p.ActorID = &actorID
	p.ActorRole = string(in.Actor.Role)
	p.Action = string(in.Action)
	p.From = string(decision.From)
	uc.deps.publish(events.TopicAppointmentTransitioned, p)

	return ap, nil
}
