package appointment

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/barber-queue/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-queue/internal/models"
)

type CreateServiceInput struct {
	Name            string
	Description     string
	DurationMinutes int
	Price           float64
}

// UpdateServiceInput is a partial patch; nil fields keep their value.
type UpdateServiceInput struct {
	Name            *string
	Description     *string
	DurationMinutes *int
	Price           *float64
	Active          *bool
}

// ManageServices owns the barber's service catalogue. Appointments keep
// the price and duration copied at booking time, so edits here never
// reach them.
type ManageServices struct {
	deps Deps
}

func NewManageServices(deps Deps) *ManageServices {
	return &ManageServices{deps: deps.withDefaults()}
}

func (uc *ManageServices) Create(ctx context.Context, barberID string, in CreateServiceInput) (*models.BarberService, error) {
	if _, err := loadBarber(ctx, uc.deps.Repo, barberID); err != nil {
		return nil, err
	}
	if in.DurationMinutes <= 0 {
		return nil, domain.ErrInvalidDuration
	}

	now := uc.deps.Clock.Now()
	s := &models.BarberService{
		ID:              uuid.NewString(),
		BarberID:        barberID,
		Name:            strings.TrimSpace(in.Name),
		Description:     in.Description,
		DurationMinutes: in.DurationMinutes,
		Price:           in.Price,
		Active:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.deps.Repo.SaveService(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *ManageServices) List(ctx context.Context, barberID string) ([]models.BarberService, error) {
	if _, err := loadBarber(ctx, uc.deps.Repo, barberID); err != nil {
		return nil, err
	}
	return uc.deps.Repo.ListServices(ctx, barberID)
}

func (uc *ManageServices) Update(ctx context.Context, barberID, serviceID string, in UpdateServiceInput) (*models.BarberService, error) {
	s, err := uc.deps.Repo.GetService(ctx, barberID, serviceID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrServiceNotFound
	}
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		s.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		s.Description = *in.Description
	}
	if in.DurationMinutes != nil {
		if *in.DurationMinutes <= 0 {
			return nil, domain.ErrInvalidDuration
		}
		s.DurationMinutes = *in.DurationMinutes
	}
	if in.Price != nil {
		s.Price = *in.Price
	}
	if in.Active != nil {
		s.Active = *in.Active
	}
	s.UpdatedAt = uc.deps.Clock.Now()

	if err := uc.deps.Repo.SaveService(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}
