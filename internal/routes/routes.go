package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-queue/internal/audit"
	"github.com/BruksfildServices01/barber-queue/internal/config"
	"github.com/BruksfildServices01/barber-queue/internal/handlers"
	"github.com/BruksfildServices01/barber-queue/internal/metrics"
	"github.com/BruksfildServices01/barber-queue/internal/middleware"
	"github.com/BruksfildServices01/barber-queue/internal/models"
	ucAppointment "github.com/BruksfildServices01/barber-queue/internal/usecase/appointment"
	"github.com/BruksfildServices01/barber-queue/internal/validators"
)

func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	deps ucAppointment.Deps,
	auditLogger *audit.Logger,
	logger *zerolog.Logger,
) {

	validators.Register()

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.RequestMetrics())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	// ======================================================
	// USE CASES
	// ======================================================
	services := ucAppointment.NewManageServices(deps)

	appointmentHandler := handlers.NewAppointmentHandler(
		ucAppointment.NewBookAppointment(deps),
		ucAppointment.NewCreateWalkIn(deps),
		ucAppointment.NewTransitionAppointment(deps),
		ucAppointment.NewListAppointmentsByDate(deps),
		ucAppointment.NewListAppointmentsByMonth(deps),
		ucAppointment.NewListCustomerAppointments(deps),
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(ucAppointment.NewGetAvailability(deps), services)
	meHandler := handlers.NewMeHandler(ucAppointment.NewProfile(deps))
	scheduleHandler := handlers.NewScheduleHandler(ucAppointment.NewManageSchedule(deps))
	serviceHandler := handlers.NewServiceHandler(services)
	barberHandler := handlers.NewBarberHandler(ucAppointment.NewBarberAvailability(deps))
	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger)

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		public := api.Group("/barbers/:barberId")
		public.Use(limiter.Handler())
		{
			public.GET("/services", publicHandler.ListServices)
			public.GET("/availability", publicHandler.Availability)
		}

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg), limiter.Handler())
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PUT("/me", meHandler.UpdateMe)

			secured.POST("/appointments/:id/actions", appointmentHandler.Act)

			customer := secured.Group("/")
			customer.Use(middleware.RequireRole(models.RoleCustomer))
			{
				customer.POST("/appointments", appointmentHandler.Book)
				customer.GET("/me/appointments", appointmentHandler.ListMine)
			}

			barber := secured.Group("/barber")
			barber.Use(middleware.RequireRole(models.RoleBarber))
			{
				barber.POST("/walk-ins", appointmentHandler.WalkIn)
				barber.GET("/appointments", appointmentHandler.ListByDate)
				barber.GET("/appointments/month", appointmentHandler.ListByMonth)

				barber.GET("/schedule", scheduleHandler.Get)
				barber.PUT("/schedule", scheduleHandler.Replace)
				barber.GET("/unavailable-dates", scheduleHandler.ListUnavailable)
				barber.POST("/unavailable-dates", scheduleHandler.AddUnavailable)
				barber.DELETE("/unavailable-dates/:date", scheduleHandler.RemoveUnavailable)

				barber.GET("/services", serviceHandler.List)
				barber.POST("/services", serviceHandler.Create)
				barber.PATCH("/services/:id", serviceHandler.Update)

				barber.PATCH("/availability", barberHandler.UpdateAvailability)

				barber.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
