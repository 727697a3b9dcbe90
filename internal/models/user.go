package models

import "time"

const (
	RoleBarber   = "barber"
	RoleCustomer = "customer"
)

type User struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Email    string `gorm:"size:100;index" json:"email"`
	Phone    string `gorm:"size:20" json:"phone"`
	Role     string `gorm:"size:20;not null" json:"role"`
	Timezone string `gorm:"size:64" json:"timezone"`

	// barber-only flags
	IsAcceptingBookings      bool       `json:"is_accepting_bookings"`
	IsTemporarilyUnavailable bool       `json:"is_temporarily_unavailable"`
	UnavailableSince         *time.Time `json:"unavailable_since"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
