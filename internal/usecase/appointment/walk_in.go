package appointment

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/barber-queue/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-queue/internal/events"
	"github.com/BruksfildServices01/barber-queue/internal/metrics"
	"github.com/BruksfildServices01/barber-queue/internal/models"
	"github.com/BruksfildServices01/barber-queue/internal/timezone"
)

type CreateWalkInInput struct {
	BarberID     string
	ServiceID    string
	CustomerName string
}

type CreateWalkIn struct {
	deps Deps
}

func NewCreateWalkIn(deps Deps) *CreateWalkIn {
	return &CreateWalkIn{deps: deps.withDefaults()}
}

// Execute places a walk-in at the first free slot today. The accepting
// bookings flag and the customer limits do not apply.
func (uc *CreateWalkIn) Execute(
	ctx context.Context,
	in CreateWalkInInput,
) (*models.Appointment, error) {

	repo := uc.deps.Repo

	barber, err := loadBarber(ctx, repo, in.BarberID)
	if err != nil {
		return nil, err
	}

	service, err := loadService(ctx, repo, in.BarberID, in.ServiceID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(uc.deps.Clock, barber.Timezone)
	today := timezone.FormatDate(now)

	days, unavailable, err := loadCalendar(ctx, repo, in.BarberID)
	if err != nil {
		return nil, err
	}

	existing, err := repo.ListAppointmentsForDay(ctx, in.BarberID, today)
	if err != nil {
		return nil, err
	}

	start, err := domain.FindWalkInSlot(domain.WalkInQuery{
		Schedule:         days,
		UnavailableDates: unavailable,
		Today:            existing,
		DurationMinutes:  service.DurationMinutes,
		Now:              now,
	}, uc.deps.Policy)
	if err != nil {
		return nil, rejected("walk_in", err)
	}

	ap, err := domain.NewWalkIn(domain.Draft{
		ID:           uuid.NewString(),
		Barber:       barber,
		Service:      service,
		CustomerName: in.CustomerName,
		Date:         today,
		StartTime:    start,
		Location:     timezone.Location(barber.Timezone),
	}, now)
	if err != nil {
		return nil, rejected("walk_in", err)
	}

	if err := repo.CreateAppointment(ctx, ap); err != nil {
		return nil, rejected("walk_in", err)
	}

	metrics.IncBooking("walk_in")

	p := payloadOf(ap, now)
	actor := in.BarberID
	p.ActorID = &actor
	p.ActorRole = string(domain.RoleBarber)
	uc.deps.publish(events.TopicAppointmentCreated, p)

	return ap, nil
}
