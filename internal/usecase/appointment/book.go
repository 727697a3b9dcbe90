package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/barber-queue/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-queue/internal/events"
	"github.com/BruksfildServices01/barber-queue/internal/metrics"
	"github.com/BruksfildServices01/barber-queue/internal/models"
	"github.com/BruksfildServices01/barber-queue/internal/timezone"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type BookAppointmentInput struct {
	CustomerID   string
	CustomerName string

	BarberID  string
	ServiceID string

	Date      string
	StartTime string
}

// BookAppointmentResult carries the queue snapshot for same-day bookings.
// Queue is nil for other days and when the snapshot could not be built.
type BookAppointmentResult struct {
	Appointment *models.Appointment   `json:"appointment"`
	Queue       *domain.QueueEstimate `json:"queue,omitempty"`
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	deps Deps
}

func NewBookAppointment(deps Deps) *BookAppointment {
	return &BookAppointment{deps: deps.withDefaults()}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*BookAppointmentResult, error) {

	repo := uc.deps.Repo

	// --------------------------------------------------
	// 1. Barber accepting online bookings
	// --------------------------------------------------
	barber, err := loadBarber(ctx, repo, in.BarberID)
	if err != nil {
		return nil, err
	}
	if !barber.IsAcceptingBookings {
		return nil, rejected("book", domain.ErrNotAcceptingBookings)
	}

	// --------------------------------------------------
	// 2. Service snapshot
	// --------------------------------------------------
	service, err := loadService(ctx, repo, in.BarberID, in.ServiceID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(barber.Timezone)
	now := timezone.NowIn(uc.deps.Clock, barber.Timezone)
	if err := checkDate(in.Date, loc, now); err != nil {
		return nil, rejected("book", err)
	}

	// --------------------------------------------------
	// 3. Slot must be one the engine offers
	// --------------------------------------------------
	days, unavailable, err := loadCalendar(ctx, repo, in.BarberID)
	if err != nil {
		return nil, err
	}

	existing, err := repo.ListAppointmentsForDay(ctx, in.BarberID, in.Date)
	if err != nil {
		return nil, err
	}

	offered, err := domain.IsSlotOffered(domain.SlotQuery{
		Schedule:         days,
		UnavailableDates: unavailable,
		Date:             in.Date,
		DurationMinutes:  service.DurationMinutes,
		Existing:         existing,
		Now:              now,
	}, uc.deps.Policy, in.StartTime)
	if err != nil {
		return nil, rejected("book", err)
	}
	if !offered {
		return nil, rejected("book", domain.ErrSlotNotOffered)
	}

	// --------------------------------------------------
	// 4. Customer limits across all barbers
	// --------------------------------------------------
	target, _ := timezone.ParseDate(in.Date, barber.Timezone)
	weekStart, weekEnd := domain.WeekBounds(target)

	mine, err := repo.ListCustomerAppointments(ctx, in.CustomerID, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}
	if err := domain.CanBook(mine, in.Date, uc.deps.Policy); err != nil {
		return nil, rejected("book", err)
	}

	// --------------------------------------------------
	// 5. Insert
	// --------------------------------------------------
	customerID := in.CustomerID
	ap, err := domain.NewBooking(domain.Draft{
		ID:           uuid.NewString(),
		Barber:       barber,
		Service:      service,
		CustomerID:   &customerID,
		CustomerName: uc.customerName(ctx, in),
		Date:         in.Date,
		StartTime:    in.StartTime,
		Location:     loc,
	}, now)
	if err != nil {
		return nil, rejected("book", err)
	}

	if err := repo.CreateAppointment(ctx, ap); err != nil {
		if errors.Is(err, domain.ErrStorageFailure) {
			uc.deps.Logger.Error().Err(err).Str("barber_id", in.BarberID).Msg("failed to create appointment")
		}
		return nil, rejected("book", err)
	}

	metrics.IncBooking("booking")

	p := payloadOf(ap, now)
	p.ActorID = &customerID
	p.ActorRole = string(domain.RoleCustomer)
	uc.deps.publish(events.TopicAppointmentCreated, p)

	// --------------------------------------------------
	// 6. Same-day queue snapshot (best effort)
	// --------------------------------------------------
	res := &BookAppointmentResult{Appointment: ap}
	if in.Date == timezone.FormatDate(now) {
		res.Queue = uc.estimate(ctx, ap, now)
	}

	return res, nil
}

func (uc *BookAppointment) customerName(ctx context.Context, in BookAppointmentInput) string {
	if u, err := uc.deps.Repo.GetUser(ctx, in.CustomerID); err == nil && u.Name != "" {
		return u.Name
	}
	return in.CustomerName
}

// estimate never fails the booking: the appointment is already stored.
func (uc *BookAppointment) estimate(ctx context.Context, ap *models.Appointment, now time.Time) *domain.QueueEstimate {
	today, err := uc.deps.Repo.ListAppointmentsByStatus(ctx, ap.BarberID, domain.QueueStatusStrings(), ap.Date, ap.Date)
	if err != nil {
		uc.deps.Logger.Warn().Err(err).Str("appointment_id", ap.ID).Msg("queue estimate unavailable, returning plain confirmation")
		return nil
	}

	est, err := domain.EstimateQueue(today, ap, domain.SnapshotDuration, now)
	if err != nil {
		uc.deps.Logger.Warn().Err(err).Str("appointment_id", ap.ID).Msg("queue estimate failed, returning plain confirmation")
		return nil
	}
	return &est
}
