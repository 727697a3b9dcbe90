package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-queue/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-queue/internal/models"
)

func newAppointment(id, barberID string, customerID *string, date, start, end string, status domain.Status) *models.Appointment {
	ts, err := domain.Instant(date, start, time.UTC)
	if err != nil {
		panic(err)
	}
	now := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
	return &models.Appointment{
		ID:                   id,
		BarberID:             barberID,
		BarberName:           "Bruno",
		CustomerID:           customerID,
		CustomerName:         "Carla",
		ServiceID:            "svc-1",
		ServiceName:          "Cut",
		Price:                30,
		DurationMinutes:      30,
		Date:                 date,
		StartTime:            start,
		EndTime:              end,
		AppointmentTimestamp: ts,
		Status:               string(status),
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

// runContract exercises the behaviour every domain.Repository must share.
func runContract(t *testing.T, repo domain.Repository) {
	ctx := context.Background()
	customer := "cust-1"

	require.NoError(t, repo.SaveUser(ctx, &models.User{ID: "barber-1", Name: "Bruno", Role: models.RoleBarber}))

	t.Run("MissingDocuments", func(t *testing.T) {
		_, err := repo.GetUser(ctx, "nobody")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		_, err = repo.GetAppointment(ctx, "nothing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		_, err = repo.GetSchedule(ctx, "barber-1")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.ErrorIs(t, repo.RemoveUnavailableDate(ctx, "barber-1", "2026-10-12"), domain.ErrNotFound)
	})

	t.Run("CreateRejectsOverlap", func(t *testing.T) {
		first := newAppointment("ap-1", "barber-1", &customer, "2026-10-12", "10:00 AM", "10:30 AM", domain.StatusUpcoming)
		require.NoError(t, repo.CreateAppointment(ctx, first))

		clash := newAppointment("ap-2", "barber-1", &customer, "2026-10-12", "10:15 AM", "10:45 AM", domain.StatusUpcoming)
		assert.ErrorIs(t, repo.CreateAppointment(ctx, clash), domain.ErrSlotTaken)

		adjacent := newAppointment("ap-3", "barber-1", &customer, "2026-10-12", "10:30 AM", "11:00 AM", domain.StatusUpcoming)
		assert.NoError(t, repo.CreateAppointment(ctx, adjacent))

		otherBarber := newAppointment("ap-4", "barber-2", nil, "2026-10-12", "10:00 AM", "10:30 AM", domain.StatusInProgress)
		assert.NoError(t, repo.CreateAppointment(ctx, otherBarber))
	})

	t.Run("CancelledFreesSlot", func(t *testing.T) {
		ap, err := repo.GetAppointment(ctx, "ap-1")
		require.NoError(t, err)
		ap.Status = string(domain.StatusCancelled)
		require.NoError(t, repo.UpdateAppointment(ctx, ap))

		again := newAppointment("ap-5", "barber-1", &customer, "2026-10-12", "09:45 AM", "10:15 AM", domain.StatusUpcoming)
		assert.NoError(t, repo.CreateAppointment(ctx, again))
	})

	t.Run("ListingsOrderedByClock", func(t *testing.T) {
		pm := newAppointment("ap-6", "barber-1", &customer, "2026-10-12", "01:00 PM", "01:30 PM", domain.StatusUpcoming)
		require.NoError(t, repo.CreateAppointment(ctx, pm))

		day, err := repo.ListAppointmentsForDay(ctx, "barber-1", "2026-10-12")
		require.NoError(t, err)
		var ids []string
		for _, ap := range day {
			ids = append(ids, ap.ID)
		}
		assert.Equal(t, []string{"ap-5", "ap-1", "ap-3", "ap-6"}, ids)

		open, err := repo.ListAppointmentsByStatus(ctx, "barber-1", domain.QueueStatusStrings(), "2026-10-01", "2026-10-31")
		require.NoError(t, err)
		assert.Len(t, open, 3)

		all, err := repo.ListAppointmentsByStatus(ctx, "barber-1", nil, "2026-10-01", "2026-10-31")
		require.NoError(t, err)
		assert.Len(t, all, 4)

		mine, err := repo.ListCustomerAppointments(ctx, customer, "2026-10-12", "2026-10-18")
		require.NoError(t, err)
		assert.Len(t, mine, 4)
	})

	t.Run("StampsRoundTrip", func(t *testing.T) {
		ap, err := repo.GetAppointment(ctx, "ap-3")
		require.NoError(t, err)

		stamp := time.Date(2026, 10, 12, 10, 31, 0, 0, time.UTC)
		ap.CustomerCheckedInAt.Fill(stamp)
		ap.Status = string(domain.StatusCustomerInitiatedCheckIn)
		require.NoError(t, repo.UpdateAppointment(ctx, ap))

		got, err := repo.GetAppointment(ctx, "ap-3")
		require.NoError(t, err)
		at, ok := got.CustomerCheckedInAt.Time()
		require.True(t, ok)
		assert.True(t, stamp.Equal(at))
		assert.False(t, got.BarberCheckedInAt.IsSet())
		assert.Equal(t, string(domain.StatusCustomerInitiatedCheckIn), got.Status)
	})

	t.Run("ScheduleAndUnavailableDates", func(t *testing.T) {
		s := &models.BarberSchedule{BarberID: "barber-1"}
		require.NoError(t, s.SetDays([]models.DayAvailability{{Weekday: 1, IsOpen: true, StartTime: "09:00 AM", EndTime: "05:00 PM"}}))
		require.NoError(t, repo.SaveSchedule(ctx, s))

		got, err := repo.GetSchedule(ctx, "barber-1")
		require.NoError(t, err)
		days, err := got.Days()
		require.NoError(t, err)
		require.Len(t, days, 1)
		assert.Equal(t, "05:00 PM", days[0].EndTime)

		reason := "holiday"
		require.NoError(t, repo.AddUnavailableDate(ctx, &models.UnavailableDate{BarberID: "barber-1", Date: "2026-10-20", Reason: &reason}))
		require.NoError(t, repo.AddUnavailableDate(ctx, &models.UnavailableDate{BarberID: "barber-1", Date: "2026-10-13"}))
		require.NoError(t, repo.AddUnavailableDate(ctx, &models.UnavailableDate{BarberID: "barber-1", Date: "2026-10-20", Reason: &reason}))

		list, err := repo.ListUnavailableDates(ctx, "barber-1")
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "2026-10-13", list[0].Date)

		require.NoError(t, repo.RemoveUnavailableDate(ctx, "barber-1", "2026-10-13"))
		list, err = repo.ListUnavailableDates(ctx, "barber-1")
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("Services", func(t *testing.T) {
		require.NoError(t, repo.SaveService(ctx, &models.BarberService{ID: "svc-b", BarberID: "barber-1", Name: "Beard", DurationMinutes: 15, Active: true}))
		require.NoError(t, repo.SaveService(ctx, &models.BarberService{ID: "svc-a", BarberID: "barber-1", Name: "Cut", DurationMinutes: 30, Active: true}))

		list, err := repo.ListServices(ctx, "barber-1")
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Beard", list[0].Name)

		_, err = repo.GetService(ctx, "barber-2", "svc-a")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestMemoryRepository(t *testing.T) {
	runContract(t, NewMemoryRepository())
}

func TestMemoryRepositoryCopiesOnRead(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	ap := newAppointment("ap-1", "barber-1", nil, "2026-10-12", "10:00 AM", "10:30 AM", domain.StatusInProgress)
	require.NoError(t, repo.CreateAppointment(ctx, ap))

	got, err := repo.GetAppointment(ctx, "ap-1")
	require.NoError(t, err)
	got.Status = string(domain.StatusCompleted)

	again, err := repo.GetAppointment(ctx, "ap-1")
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusInProgress), again.Status)
}

func TestWalkInMayOverlapFinishedAppointment(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	customer := "cust-1"

	done := newAppointment("ap-1", "barber-1", &customer, "2026-10-12", "10:00 AM", "10:30 AM", domain.StatusCompleted)
	require.NoError(t, repo.CreateAppointment(ctx, done))

	walkIn := newAppointment("ap-2", "barber-1", nil, "2026-10-12", "10:15 AM", "10:45 AM", domain.StatusInProgress)
	assert.NoError(t, repo.CreateAppointment(ctx, walkIn))

	booking := newAppointment("ap-3", "barber-1", &customer, "2026-10-12", "10:00 AM", "10:15 AM", domain.StatusUpcoming)
	assert.ErrorIs(t, repo.CreateAppointment(ctx, booking), domain.ErrSlotTaken)
}
