package models

import "time"

type Appointment struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	BarberID   string `gorm:"size:36;not null;index:idx_appointments_barber_date,priority:1" json:"barber_id"`
	BarberName string `gorm:"size:100" json:"barber_name"`

	// nil marks a walk-in
	CustomerID   *string `gorm:"size:36;index:idx_appointments_customer_date,priority:1" json:"customer_id"`
	CustomerName string  `gorm:"size:100" json:"customer_name"`

	ServiceID       string  `gorm:"size:36" json:"service_id"`
	ServiceName     string  `gorm:"size:100" json:"service_name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`

	Date                 string    `gorm:"size:10;not null;index:idx_appointments_barber_date,priority:2;index:idx_appointments_customer_date,priority:2" json:"date"`
	StartTime            string    `gorm:"size:8;not null" json:"start_time"`
	EndTime              string    `gorm:"size:8;not null" json:"end_time"`
	AppointmentTimestamp time.Time `json:"appointment_timestamp"`

	Status string `gorm:"size:40;not null;index" json:"status"`

	CustomerCheckedInAt        OnceTime `json:"customer_checked_in_at"`
	BarberCheckedInAt          OnceTime `json:"barber_checked_in_at"`
	ServiceActuallyStartedAt   OnceTime `json:"service_actually_started_at"`
	CustomerMarkedDoneAt       OnceTime `json:"customer_marked_done_at"`
	BarberMarkedDoneAt         OnceTime `json:"barber_marked_done_at"`
	ServiceActuallyCompletedAt OnceTime `json:"service_actually_completed_at"`
	NoShowMarkedAt             OnceTime `json:"no_show_marked_at"`

	CreatedAt time.Time `gorm:"autoCreateTime:false" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`
}

func (a *Appointment) IsWalkIn() bool {
	return a.CustomerID == nil
}
