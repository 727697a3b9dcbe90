package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-queue/internal/domain/appointment"
)

func TestListAppointmentsByDateFlagsStale(t *testing.T) {
	f := newFixture(t, utc(monday, "08:00"))
	late := f.book(t, customerID, monday, "09:00 AM")
	f.book(t, "cust-2", monday, "11:00 AM")

	f.clock.at = utc(monday, "09:10")
	got, err := NewListAppointmentsByDate(f.deps).Execute(context.Background(), barberID, monday)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, late.ID, got[0].ID)
	assert.True(t, got[0].NeedsAttention)
	assert.False(t, got[1].NeedsAttention)
}

func TestListAppointmentsByDateInvalid(t *testing.T) {
	f := newFixture(t, utc(monday, "08:00"))
	_, err := NewListAppointmentsByDate(f.deps).Execute(context.Background(), barberID, "12/10/2026")
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestListAppointmentsByMonthFiltersStatus(t *testing.T) {
	f := newFixture(t, utc(monday, "08:00"))
	ctx := context.Background()

	kept := f.book(t, customerID, tuesday, "09:00 AM")
	dropped := f.book(t, "cust-2", tuesday, "10:00 AM")
	_, err := transition(t, f, dropped.ID, asBarber, domain.ActionCancel)
	require.NoError(t, err)

	all, err := NewListAppointmentsByMonth(f.deps).Execute(ctx, barberID, 2026, 10, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	upcoming, err := NewListAppointmentsByMonth(f.deps).Execute(ctx, barberID, 2026, 10, []string{string(domain.StatusUpcoming)})
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, kept.ID, upcoming[0].ID)

	november, err := NewListAppointmentsByMonth(f.deps).Execute(ctx, barberID, 2026, 11, nil)
	require.NoError(t, err)
	assert.Empty(t, november)

	_, err = NewListAppointmentsByMonth(f.deps).Execute(ctx, barberID, 2026, 13, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestListCustomerAppointments(t *testing.T) {
	f := newFixture(t, utc(monday, "08:00"))
	ctx := context.Background()

	f.book(t, customerID, tuesday, "09:00 AM")
	f.book(t, customerID, wednesday, "09:00 AM")
	f.book(t, "cust-2", wednesday, "10:00 AM")

	got, err := NewListCustomerAppointments(f.deps).Execute(ctx, customerID, monday, sunday)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, tuesday, got[0].Date)
	assert.Equal(t, wednesday, got[1].Date)

	_, err = NewListCustomerAppointments(f.deps).Execute(ctx, customerID, sunday, monday)
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}
