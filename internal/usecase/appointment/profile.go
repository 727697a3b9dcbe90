package appointment

import (
	"context"
	"errors"
	"strings"

	domain "github.com/BruksfildServices01/barber-queue/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-queue/internal/models"
	"github.com/BruksfildServices01/barber-queue/internal/timezone"
)

type SaveProfileInput struct {
	ID       string
	Role     domain.Role
	Name     string
	Email    string
	Phone    string
	Timezone string
}

// Profile reads and upserts the caller's user record. Identity and role
// come from the verified token; tokens are issued elsewhere.
type Profile struct {
	deps Deps
}

func NewProfile(deps Deps) *Profile {
	return &Profile{deps: deps.withDefaults()}
}

func (uc *Profile) Get(ctx context.Context, id string) (*models.User, error) {
	u, err := uc.deps.Repo.GetUser(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrUserNotFound
	}
	return u, err
}

func (uc *Profile) Save(ctx context.Context, in SaveProfileInput) (*models.User, error) {
	now := uc.deps.Clock.Now()

	u, err := uc.deps.Repo.GetUser(ctx, in.ID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		u = &models.User{
			ID:        in.ID,
			Role:      string(in.Role),
			CreatedAt: now,
			// new barbers take online bookings until they opt out
			IsAcceptingBookings: in.Role == domain.RoleBarber,
		}
	case err != nil:
		return nil, err
	}

	u.Name = strings.TrimSpace(in.Name)
	u.Email = strings.ToLower(strings.TrimSpace(in.Email))
	u.Phone = in.Phone
	u.Timezone = uc.deps.DefaultTimezone
	if timezone.IsValid(in.Timezone) {
		u.Timezone = in.Timezone
	}
	u.UpdatedAt = now

	if err := uc.deps.Repo.SaveUser(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
