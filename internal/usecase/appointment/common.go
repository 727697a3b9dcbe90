package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	domain "github.com/BruksfildServices01/barber-queue/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-queue/internal/events"
	"github.com/BruksfildServices01/barber-queue/internal/httperr"
	"github.com/BruksfildServices01/barber-queue/internal/metrics"
	"github.com/BruksfildServices01/barber-queue/internal/models"
	"github.com/BruksfildServices01/barber-queue/internal/timezone"
)

// Deps bundles the collaborators shared by the appointment use cases.
type Deps struct {
	Repo   domain.Repository
	Events events.Publisher
	Clock  timezone.Clock
	Policy domain.Policy
	Logger *zerolog.Logger

	// DefaultTimezone is stored on profiles saved without a valid zone.
	DefaultTimezone string
}

func (d Deps) withDefaults() Deps {
	if d.Clock == nil {
		d.Clock = timezone.SystemClock{}
	}
	if d.Policy == (domain.Policy{}) {
		d.Policy = domain.DefaultPolicy()
	}
	if !timezone.IsValid(d.DefaultTimezone) {
		d.DefaultTimezone = timezone.DefaultTimezone
	}
	if d.Logger == nil {
		nop := zerolog.Nop()
		d.Logger = &nop
	}
	return d
}

// --------------------------------------------------
// Loading helpers
// --------------------------------------------------

func loadBarber(ctx context.Context, repo domain.Repository, barberID string) (*models.User, error) {
	u, err := repo.GetUser(ctx, barberID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrBarberNotFound
	}
	if err != nil {
		return nil, err
	}
	if u.Role != models.RoleBarber {
		return nil, domain.ErrBarberNotFound
	}
	return u, nil
}

func loadService(ctx context.Context, repo domain.Repository, barberID, serviceID string) (*models.BarberService, error) {
	s, err := repo.GetService(ctx, barberID, serviceID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrServiceNotFound
	}
	if err != nil {
		return nil, err
	}
	if !s.Active {
		return nil, domain.ErrServiceNotFound
	}
	return s, nil
}

func loadAppointment(ctx context.Context, repo domain.Repository, id string) (*models.Appointment, error) {
	ap, err := repo.GetAppointment(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrAppointmentNotFound
	}
	return ap, err
}

// loadCalendar reads the weekly schedule and exception dates. A barber
// without a stored schedule is closed every day.
func loadCalendar(ctx context.Context, repo domain.Repository, barberID string) ([]models.DayAvailability, []models.UnavailableDate, error) {
	var days []models.DayAvailability

	s, err := repo.GetSchedule(ctx, barberID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
	case err != nil:
		return nil, nil, err
	default:
		if days, err = s.Days(); err != nil {
			return nil, nil, domain.Storage("decode schedule", err)
		}
	}

	unavailable, err := repo.ListUnavailableDates(ctx, barberID)
	if err != nil {
		return nil, nil, err
	}

	return days, unavailable, nil
}

// checkDate parses date in loc and rejects days already over.
func checkDate(date string, loc *time.Location, now time.Time) error {
	d, err := time.ParseInLocation(timezone.DateLayout, date, loc)
	if err != nil {
		return domain.ErrInvalidDate
	}
	if d.Before(time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)) {
		return domain.ErrInvalidDate
	}
	return nil
}

// --------------------------------------------------
// Reporting helpers
// --------------------------------------------------

func rejected(op string, err error) error {
	var be httperr.BusinessError
	if errors.As(err, &be) {
		metrics.IncRejection(op, be.Code)
	}
	return err
}

func payloadOf(ap *models.Appointment, now time.Time) events.AppointmentPayload {
	return events.AppointmentPayload{
		AppointmentID: ap.ID,
		BarberID:      ap.BarberID,
		CustomerID:    ap.CustomerID,
		Status:        ap.Status,
		Date:          ap.Date,
		StartTime:     ap.StartTime,
		WalkIn:        ap.IsWalkIn(),
		OccurredAt:    now,
	}
}

func (d Deps) publish(topic string, p events.AppointmentPayload) {
	if d.Events == nil {
		return
	}
	if err := d.Events.PublishJSON(topic, p); err != nil {
		d.Logger.Warn().Err(err).Str("topic", topic).Msg("failed to publish event")
	}
}
