package appointment

import (
	"time"

	"github.com/BruksfildServices01/barber-queue/internal/models"
)

// 2026-10-12 is a Monday.
const testDate = "2026-10-12"

func weekdays(open, close string) []models.DayAvailability {
	days := make([]models.DayAvailability, 7)
	for i := range days {
		days[i] = models.DayAvailability{Weekday: i, IsOpen: i >= 1 && i <= 6, StartTime: open, EndTime: close}
	}
	return days
}

func at(date, clock string) time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func appt(id, date, start, end string, status Status) models.Appointment {
	customer := "cust-" + id
	ts, err := Instant(date, start, time.UTC)
	if err != nil {
		panic(err)
	}
	s, _ := TimeToMinutes(start)
	e, _ := TimeToMinutes(end)
	return models.Appointment{
		ID:                   id,
		BarberID:             "barber-1",
		BarberName:           "Bruno",
		CustomerID:           &customer,
		CustomerName:         "Customer " + id,
		DurationMinutes:      e - s,
		Date:                 date,
		StartTime:            start,
		EndTime:              end,
		AppointmentTimestamp: ts,
		Status:               string(status),
	}
}
