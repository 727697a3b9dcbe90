package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-queue/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-queue/internal/dto"
	"github.com/BruksfildServices01/barber-queue/internal/models"
	"github.com/BruksfildServices01/barber-queue/internal/timezone"
)

func toDTOs(apps []models.Appointment, now time.Time, p domain.Policy) []dto.AppointmentDTO {
	out := make([]dto.AppointmentDTO, 0, len(apps))
	for i := range apps {
		ap := &apps[i]
		out = append(out, dto.NewAppointmentDTO(ap, domain.IsStale(ap, now, p.StaleThreshold)))
	}
	return out
}

// --------------------------------------------------
// Barber: one day
// --------------------------------------------------

type ListAppointmentsByDate struct {
	deps Deps
}

func NewListAppointmentsByDate(deps Deps) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{deps: deps.withDefaults()}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	barberID string,
	date string,
) ([]dto.AppointmentDTO, error) {

	barber, err := loadBarber(ctx, uc.deps.Repo, barberID)
	if err != nil {
		return nil, err
	}

	if _, err := timezone.ParseDate(date, barber.Timezone); err != nil {
		return nil, domain.ErrInvalidDate
	}

	apps, err := uc.deps.Repo.ListAppointmentsForDay(ctx, barberID, date)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(uc.deps.Clock, barber.Timezone)
	return toDTOs(apps, now, uc.deps.Policy), nil
}

// --------------------------------------------------
// Barber: one month
// --------------------------------------------------

type ListAppointmentsByMonth struct {
	deps Deps
}

func NewListAppointmentsByMonth(deps Deps) *ListAppointmentsByMonth {
	return &ListAppointmentsByMonth{deps: deps.withDefaults()}
}

// Execute lists the month; statuses narrows the result when non-empty.
func (uc *ListAppointmentsByMonth) Execute(
	ctx context.Context,
	barberID string,
	year int,
	month int,
	statuses []string,
) ([]dto.AppointmentDTO, error) {

	if month < 1 || month > 12 || year < 1 {
		return nil, domain.ErrInvalidDate
	}

	barber, err := loadBarber(ctx, uc.deps.Repo, barberID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(barber.Timezone)
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, -1)

	apps, err := uc.deps.Repo.ListAppointmentsByStatus(
		ctx,
		barberID,
		statuses,
		timezone.FormatDate(start),
		timezone.FormatDate(end),
	)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(uc.deps.Clock, barber.Timezone)
	return toDTOs(apps, now, uc.deps.Policy), nil
}

// --------------------------------------------------
// Customer: date range
// --------------------------------------------------

type ListCustomerAppointments struct {
	deps Deps
}

func NewListCustomerAppointments(deps Deps) *ListCustomerAppointments {
	return &ListCustomerAppointments{deps: deps.withDefaults()}
}

func (uc *ListCustomerAppointments) Execute(
	ctx context.Context,
	customerID string,
	from string,
	to string,
) ([]dto.AppointmentDTO, error) {

	f, err := time.Parse(timezone.DateLayout, from)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}
	t, err := time.Parse(timezone.DateLayout, to)
	if err != nil || t.Before(f) {
		return nil, domain.ErrInvalidDate
	}

	apps, err := uc.deps.Repo.ListCustomerAppointments(ctx, customerID, from, to)
	if err != nil {
		return nil, err
	}

	return toDTOs(apps, uc.deps.Clock.Now(), uc.deps.Policy), nil
}
