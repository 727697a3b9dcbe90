package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

const DateLayout = "2006-01-02"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Clock is the single source of "now" for use cases.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same instant.
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time { return c.At }

// NowIn reads the clock in the barber's timezone.
func NowIn(clock Clock, tz string) time.Time {
	return clock.Now().In(Location(tz))
}

// ParseDate parses a YYYY-MM-DD calendar date at midnight in tz.
func ParseDate(date string, tz string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, date, Location(tz))
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
