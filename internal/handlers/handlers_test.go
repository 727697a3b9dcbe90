package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-queue/internal/infra/repository"
	"github.com/BruksfildServices01/barber-queue/internal/middleware"
	"github.com/BruksfildServices01/barber-queue/internal/models"
	"github.com/BruksfildServices01/barber-queue/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/barber-queue/internal/usecase/appointment"
	"github.com/BruksfildServices01/barber-queue/internal/validators"
)

// 2026-10-12 is a Monday; the clock sits at 08:00 UTC.
const (
	monday  = "2026-10-12"
	tuesday = "2026-10-13"
)

type testServer struct {
	repo   *repository.MemoryRepository
	router *gin.Engine
}

// as stands in for the JWT middleware.
func as(id, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, id)
		c.Set(middleware.ContextUserRole, role)
		c.Next()
	}
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validators.Register()
	ctx := context.Background()

	repo := repository.NewMemoryRepository()
	require.NoError(t, repo.SaveUser(ctx, &models.User{ID: "barber-1", Name: "Bruno", Role: models.RoleBarber, Timezone: "UTC", IsAcceptingBookings: true}))
	require.NoError(t, repo.SaveUser(ctx, &models.User{ID: "cust-1", Name: "Carla", Role: models.RoleCustomer, Timezone: "UTC"}))
	require.NoError(t, repo.SaveService(ctx, &models.BarberService{ID: "svc-cut", BarberID: "barber-1", Name: "Haircut", DurationMinutes: 30, Price: 40, Active: true}))
	require.NoError(t, repo.SaveService(ctx, &models.BarberService{ID: "svc-old", BarberID: "barber-1", Name: "Perm", DurationMinutes: 60, Active: false}))

	days := make([]models.DayAvailability, 7)
	for i := range days {
		days[i] = models.DayAvailability{Weekday: i, IsOpen: i >= 1 && i <= 6, StartTime: "09:00 AM", EndTime: "05:00 PM"}
	}
	s := &models.BarberSchedule{BarberID: "barber-1"}
	require.NoError(t, s.SetDays(days))
	require.NoError(t, repo.SaveSchedule(ctx, s))

	at, _ := time.Parse(time.RFC3339, monday+"T08:00:00Z")
	deps := ucAppointment.Deps{Repo: repo, Clock: timezone.FixedClock{At: at}}

	appointments := NewAppointmentHandler(
		ucAppointment.NewBookAppointment(deps),
		ucAppointment.NewCreateWalkIn(deps),
		ucAppointment.NewTransitionAppointment(deps),
		ucAppointment.NewListAppointmentsByDate(deps),
		ucAppointment.NewListAppointmentsByMonth(deps),
		ucAppointment.NewListCustomerAppointments(deps),
	)
	services := ucAppointment.NewManageServices(deps)
	public := NewPublicHandler(ucAppointment.NewGetAvailability(deps), services)
	schedule := NewScheduleHandler(ucAppointment.NewManageSchedule(deps))
	barber := NewBarberHandler(ucAppointment.NewBarberAvailability(deps))
	me := NewMeHandler(ucAppointment.NewProfile(deps))

	r := gin.New()
	r.GET("/barbers/:barberId/services", public.ListServices)
	r.GET("/barbers/:barberId/availability", public.Availability)

	customer := r.Group("/c", as("cust-1", models.RoleCustomer))
	customer.POST("/appointments", appointments.Book)
	customer.GET("/appointments", appointments.ListMine)
	customer.POST("/appointments/:id/actions", appointments.Act)
	customer.GET("/me", me.GetMe)

	stranger := r.Group("/x", as("cust-2", models.RoleCustomer))
	stranger.POST("/appointments/:id/actions", appointments.Act)
	stranger.GET("/me", me.GetMe)
	stranger.PUT("/me", me.UpdateMe)

	b := r.Group("/b", as("barber-1", models.RoleBarber))
	b.POST("/walk-ins", appointments.WalkIn)
	b.GET("/appointments", appointments.ListByDate)
	b.GET("/appointments/month", appointments.ListByMonth)
	b.POST("/appointments/:id/actions", appointments.Act)
	b.GET("/schedule", schedule.Get)
	b.PUT("/schedule", schedule.Replace)
	b.POST("/unavailable-dates", schedule.AddUnavailable)
	b.DELETE("/unavailable-dates/:date", schedule.RemoveUnavailable)
	b.GET("/services", NewServiceHandler(services).List)
	b.POST("/services", NewServiceHandler(services).Create)
	b.PATCH("/services/:id", NewServiceHandler(services).Update)
	b.PATCH("/availability", barber.UpdateAvailability)

	return &testServer{repo: repo, router: r}
}

func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

type errorBody struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

type bookingBody struct {
	Appointment struct {
		ID     string `json:"id"`
		Status string `json:"status"`
		End    string `json:"end_time"`
	} `json:"appointment"`
	Queue *struct {
		Position int `json:"position"`
	} `json:"queue"`
}

func (s *testServer) book(t *testing.T, date, start string) bookingBody {
	t.Helper()
	w := s.do(t, http.MethodPost, "/c/appointments", gin.H{
		"barber_id": "barber-1", "service_id": "svc-cut", "date": date, "start_time": start,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[bookingBody](t, w)
}
