package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-queue/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-queue/internal/infra/repository"
	"github.com/BruksfildServices01/barber-queue/internal/models"
)

// 2026-10-12 is a Monday.
const (
	monday    = "2026-10-12"
	tuesday   = "2026-10-13"
	wednesday = "2026-10-14"
	thursday  = "2026-10-15"
	sunday    = "2026-10-18"

	barberID   = "barber-1"
	customerID = "cust-1"
	serviceID  = "svc-cut"
)

type mutableClock struct {
	at time.Time
}

func (c *mutableClock) Now() time.Time { return c.at }

func utc(date, clock string) time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

type publisherMock struct {
	mock.Mock
}

func (m *publisherMock) PublishJSON(topic string, payload any) error {
	args := m.Called(topic, payload)
	return args.Error(0)
}

func newPublisher() *publisherMock {
	p := &publisherMock{}
	p.On("PublishJSON", mock.Anything, mock.Anything).Return(nil)
	return p
}

// failingQueueRepo breaks only the listing the queue snapshot uses.
type failingQueueRepo struct {
	domain.Repository
}

func (failingQueueRepo) ListAppointmentsByStatus(context.Context, string, []string, string, string) ([]models.Appointment, error) {
	return nil, domain.Storage("list by status", errors.New("connection reset"))
}

type fixture struct {
	repo  *repository.MemoryRepository
	clock *mutableClock
	pub   *publisherMock
	deps  Deps
}

// newFixture seeds one barber open Mon-Sat 09:00 AM to 05:00 PM with a
// 30 minute service, plus one customer.
func newFixture(t *testing.T, now time.Time) *fixture {
	t.Helper()
	ctx := context.Background()

	repo := repository.NewMemoryRepository()
	require.NoError(t, repo.SaveUser(ctx, &models.User{
		ID:                  barberID,
		Name:                "Bruno",
		Role:                models.RoleBarber,
		Timezone:            "UTC",
		IsAcceptingBookings: true,
	}))
	require.NoError(t, repo.SaveUser(ctx, &models.User{
		ID:       customerID,
		Name:     "Carla",
		Role:     models.RoleCustomer,
		Timezone: "UTC",
	}))
	require.NoError(t, repo.SaveService(ctx, &models.BarberService{
		ID:              serviceID,
		BarberID:        barberID,
		Name:            "Haircut",
		DurationMinutes: 30,
		Price:           40,
		Active:          true,
	}))

	days := make([]models.DayAvailability, 7)
	for i := range days {
		days[i] = models.DayAvailability{Weekday: i, IsOpen: i >= 1 && i <= 6, StartTime: "09:00 AM", EndTime: "05:00 PM"}
	}
	s := &models.BarberSchedule{BarberID: barberID}
	require.NoError(t, s.SetDays(days))
	require.NoError(t, repo.SaveSchedule(ctx, s))

	clock := &mutableClock{at: now}
	pub := newPublisher()

	return &fixture{
		repo:  repo,
		clock: clock,
		pub:   pub,
		deps:  Deps{Repo: repo, Events: pub, Clock: clock},
	}
}

func (f *fixture) book(t *testing.T, customer, date, start string) *models.Appointment {
	t.Helper()
	res, err := NewBookAppointment(f.deps).Execute(context.Background(), BookAppointmentInput{
		CustomerID: customer,
		BarberID:   barberID,
		ServiceID:  serviceID,
		Date:       date,
		StartTime:  start,
	})
	require.NoError(t, err)
	return res.Appointment
}
