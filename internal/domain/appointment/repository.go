package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-queue/internal/models"
)

// Repository is the storage collaborator of the core. Implementations
// return ErrNotFound for missing documents and wrap driver failures with
// Storage.
type Repository interface {
	// -------- Users / barber flags --------
	GetUser(
		ctx context.Context,
		id string,
	) (*models.User, error)

	SaveUser(
		ctx context.Context,
		u *models.User,
	) error

	// -------- Services --------
	GetService(
		ctx context.Context,
		barberID string,
		serviceID string,
	) (*models.BarberService, error)

	ListServices(
		ctx context.Context,
		barberID string,
	) ([]models.BarberService, error)

	SaveService(
		ctx context.Context,
		s *models.BarberService,
	) error

	// -------- Schedule --------
	GetSchedule(
		ctx context.Context,
		barberID string,
	) (*models.BarberSchedule, error)

	SaveSchedule(
		ctx context.Context,
		s *models.BarberSchedule,
	) error

	ListUnavailableDates(
		ctx context.Context,
		barberID string,
	) ([]models.UnavailableDate, error)

	AddUnavailableDate(
		ctx context.Context,
		d *models.UnavailableDate,
	) error

	RemoveUnavailableDate(
		ctx context.Context,
		barberID string,
		date string,
	) error

	// -------- Appointments --------

	// CreateAppointment inserts ap unless a slot-blocking appointment of
	// the same barber and date overlaps it, in which case it returns
	// ErrSlotTaken.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointmentsForDay(
		ctx context.Context,
		barberID string,
		date string,
	) ([]models.Appointment, error)

	// ListAppointmentsByStatus covers dates from..to inclusive. An empty
	// statuses slice matches every status.
	ListAppointmentsByStatus(
		ctx context.Context,
		barberID string,
		statuses []string,
		from string,
		to string,
	) ([]models.Appointment, error)

	ListCustomerAppointments(
		ctx context.Context,
		customerID string,
		from string,
		to string,
	) ([]models.Appointment, error)
}
