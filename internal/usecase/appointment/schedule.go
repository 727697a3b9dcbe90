package appointment

import (
	"context"
	"errors"
	"time"

	domain "github.com/BruksfildServices01/barber-queue/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-queue/internal/models"
	"github.com/BruksfildServices01/barber-queue/internal/timezone"
)

// ManageSchedule owns a barber's weekly schedule and exception dates.
type ManageSchedule struct {
	deps Deps
}

func NewManageSchedule(deps Deps) *ManageSchedule {
	return &ManageSchedule{deps: deps.withDefaults()}
}

// Get returns all seven weekdays; missing ones come back closed.
func (uc *ManageSchedule) Get(ctx context.Context, barberID string) ([]models.DayAvailability, error) {
	if _, err := loadBarber(ctx, uc.deps.Repo, barberID); err != nil {
		return nil, err
	}

	days, _, err := loadCalendar(ctx, uc.deps.Repo, barberID)
	if err != nil {
		return nil, err
	}
	return domain.NormalizeSchedule(days), nil
}

// Replace swaps the whole weekly schedule. Existing appointments are not
// touched.
func (uc *ManageSchedule) Replace(ctx context.Context, barberID string, days []models.DayAvailability) ([]models.DayAvailability, error) {
	if _, err := loadBarber(ctx, uc.deps.Repo, barberID); err != nil {
		return nil, err
	}
	if err := domain.ValidateSchedule(days); err != nil {
		return nil, err
	}

	normalized := domain.NormalizeSchedule(days)
	s := &models.BarberSchedule{BarberID: barberID, UpdatedAt: uc.deps.Clock.Now()}
	if err := s.SetDays(normalized); err != nil {
		return nil, domain.Storage("encode schedule", err)
	}

	if err := uc.deps.Repo.SaveSchedule(ctx, s); err != nil {
		return nil, err
	}
	return normalized, nil
}

func (uc *ManageSchedule) ListUnavailable(ctx context.Context, barberID string) ([]models.UnavailableDate, error) {
	if _, err := loadBarber(ctx, uc.deps.Repo, barberID); err != nil {
		return nil, err
	}
	return uc.deps.Repo.ListUnavailableDates(ctx, barberID)
}

// AddUnavailable blocks date. Adding a date twice only updates the reason.
func (uc *ManageSchedule) AddUnavailable(ctx context.Context, barberID, date string, reason *string) (*models.UnavailableDate, error) {
	if _, err := loadBarber(ctx, uc.deps.Repo, barberID); err != nil {
		return nil, err
	}
	if _, err := time.Parse(timezone.DateLayout, date); err != nil {
		return nil, domain.ErrInvalidDate
	}

	d := &models.UnavailableDate{
		BarberID:  barberID,
		Date:      date,
		Reason:    reason,
		CreatedAt: uc.deps.Clock.Now(),
	}
	if err := uc.deps.Repo.AddUnavailableDate(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (uc *ManageSchedule) RemoveUnavailable(ctx context.Context, barberID, date string) error {
	err := uc.deps.Repo.RemoveUnavailableDate(ctx, barberID, date)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrUnavailableDateNotFound
	}
	return err
}
