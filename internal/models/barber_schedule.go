package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// DayAvailability is one weekday of a barber's recurring schedule.
// Weekday follows time.Weekday numbering (0 = Sunday).
type DayAvailability struct {
	Weekday   int    `json:"weekday"`
	IsOpen    bool   `json:"is_open"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type BarberSchedule struct {
	BarberID  string         `gorm:"primaryKey;size:36" json:"barber_id"`
	Schedule  datatypes.JSON `gorm:"not null" json:"schedule"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (s *BarberSchedule) Days() ([]DayAvailability, error) {
	if len(s.Schedule) == 0 {
		return nil, nil
	}
	var days []DayAvailability
	if err := json.Unmarshal(s.Schedule, &days); err != nil {
		return nil, err
	}
	return days, nil
}

func (s *BarberSchedule) SetDays(days []DayAvailability) error {
	raw, err := json.Marshal(days)
	if err != nil {
		return err
	}
	s.Schedule = datatypes.JSON(raw)
	return nil
}

// UnavailableDate fully closes one calendar date for a barber.
type UnavailableDate struct {
	BarberID  string    `gorm:"primaryKey;size:36" json:"barber_id"`
	Date      string    `gorm:"primaryKey;size:10" json:"date"`
	Reason    *string   `gorm:"size:255" json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
