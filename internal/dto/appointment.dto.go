package dto

import (
	"time"

	domain "github.com/BruksfildServices01/barber-queue/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-queue/internal/models"
)

// AppointmentDTO is the list and detail view of an appointment.
// NeedsAttention is derived at read time and never stored.
type AppointmentDTO struct {
	ID                   string    `json:"id"`
	BarberID             string    `json:"barber_id"`
	BarberName           string    `json:"barber_name"`
	CustomerID           *string   `json:"customer_id"`
	CustomerName         string    `json:"customer_name"`
	WalkIn               bool      `json:"walk_in"`
	ServiceID            string    `json:"service_id"`
	ServiceName          string    `json:"service_name"`
	Price                float64   `json:"price"`
	DurationMinutes      int       `json:"duration_minutes"`
	Date                 string    `json:"date"`
	StartTime            string    `json:"start_time"`
	EndTime              string    `json:"end_time"`
	AppointmentTimestamp time.Time `json:"appointment_timestamp"`
	Status               string    `json:"status"`
	NeedsAttention       bool      `json:"needs_attention"`

	CustomerCheckedInAt        models.OnceTime `json:"customer_checked_in_at"`
	BarberCheckedInAt          models.OnceTime `json:"barber_checked_in_at"`
	ServiceActuallyStartedAt   models.OnceTime `json:"service_actually_started_at"`
	CustomerMarkedDoneAt       models.OnceTime `json:"customer_marked_done_at"`
	BarberMarkedDoneAt         models.OnceTime `json:"barber_marked_done_at"`
	ServiceActuallyCompletedAt models.OnceTime `json:"service_actually_completed_at"`
	NoShowMarkedAt             models.OnceTime `json:"no_show_marked_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewAppointmentDTO(ap *models.Appointment, needsAttention bool) AppointmentDTO {
	return AppointmentDTO{
		ID:                         ap.ID,
		BarberID:                   ap.BarberID,
		BarberName:                 ap.BarberName,
		CustomerID:                 ap.CustomerID,
		CustomerName:               ap.CustomerName,
		WalkIn:                     ap.IsWalkIn(),
		ServiceID:                  ap.ServiceID,
		ServiceName:                ap.ServiceName,
		Price:                      ap.Price,
		DurationMinutes:            ap.DurationMinutes,
		Date:                       ap.Date,
		StartTime:                  ap.StartTime,
		EndTime:                    ap.EndTime,
		AppointmentTimestamp:       ap.AppointmentTimestamp,
		Status:                     ap.Status,
		NeedsAttention:             needsAttention,
		CustomerCheckedInAt:        ap.CustomerCheckedInAt,
		BarberCheckedInAt:          ap.BarberCheckedInAt,
		ServiceActuallyStartedAt:   ap.ServiceActuallyStartedAt,
		CustomerMarkedDoneAt:       ap.CustomerMarkedDoneAt,
		BarberMarkedDoneAt:         ap.BarberMarkedDoneAt,
		ServiceActuallyCompletedAt: ap.ServiceActuallyCompletedAt,
		NoShowMarkedAt:             ap.NoShowMarkedAt,
		CreatedAt:                  ap.CreatedAt,
		UpdatedAt:                  ap.UpdatedAt,
	}
}

// BookingDTO is the booking confirmation. Queue is only present for
// same-day bookings.
type BookingDTO struct {
	Appointment AppointmentDTO        `json:"appointment"`
	Queue       *domain.QueueEstimate `json:"queue,omitempty"`
}
