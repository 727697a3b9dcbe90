package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-queue/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-queue/internal/timezone"
)

func TestProfileSaveCreatesAndUpdates(t *testing.T) {
	f := newFixture(t, utc(monday, "08:00"))
	ctx := context.Background()
	uc := NewProfile(f.deps)

	u, err := uc.Save(ctx, SaveProfileInput{
		ID:       "barber-9",
		Role:     domain.RoleBarber,
		Name:     " Fabio ",
		Email:    "Fabio@Example.com",
		Timezone: "Mars/Olympus",
	})
	require.NoError(t, err)
	assert.Equal(t, "Fabio", u.Name)
	assert.Equal(t, "fabio@example.com", u.Email)
	assert.Equal(t, timezone.DefaultTimezone, u.Timezone)
	assert.True(t, u.IsAcceptingBookings)

	_, err = NewBarberAvailability(f.deps).SetAcceptingBookings(ctx, "barber-9", false)
	require.NoError(t, err)

	u, err = uc.Save(ctx, SaveProfileInput{ID: "barber-9", Role: domain.RoleBarber, Name: "Fabio", Timezone: "UTC"})
	require.NoError(t, err)
	assert.Equal(t, "UTC", u.Timezone)
	assert.False(t, u.IsAcceptingBookings)

	got, err := uc.Get(ctx, "barber-9")
	require.NoError(t, err)
	assert.Equal(t, u.Timezone, got.Timezone)
}

func TestProfileGetMissing(t *testing.T) {
	f := newFixture(t, utc(monday, "08:00"))
	_, err := NewProfile(f.deps).Get(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestCustomerProfileIsNotABarber(t *testing.T) {
	f := newFixture(t, utc(monday, "08:00"))
	ctx := context.Background()

	u, err := NewProfile(f.deps).Save(ctx, SaveProfileInput{ID: "cust-7", Role: domain.RoleCustomer, Name: "Gil"})
	require.NoError(t, err)
	assert.False(t, u.IsAcceptingBookings)

	_, err = NewManageServices(f.deps).List(ctx, "cust-7")
	assert.ErrorIs(t, err, domain.ErrBarberNotFound)
}
