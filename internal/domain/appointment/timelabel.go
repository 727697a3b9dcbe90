package appointment

import (
	"fmt"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// TimeToMinutes parses a 12-hour label such as "09:30 AM" into minutes
// since midnight. "12:xx AM" is 0:xx and "12:xx PM" stays 12:xx.
func TimeToMinutes(label string) (int, error) {
	clock, meridiem, ok := strings.Cut(strings.TrimSpace(label), " ")
	if !ok {
		return 0, malformed(label)
	}

	hh, mm, ok := strings.Cut(clock, ":")
	if !ok || len(mm) != 2 || hh == "" || len(hh) > 2 {
		return 0, malformed(label)
	}

	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 1 || hour > 12 {
		return 0, malformed(label)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return 0, malformed(label)
	}

	switch strings.ToUpper(meridiem) {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	default:
		return 0, malformed(label)
	}

	return hour*60 + minute, nil
}

// MinutesToTime renders minutes since midnight as a zero-padded 12-hour label.
func MinutesToTime(minutes int) (string, error) {
	if minutes < 0 || minutes >= minutesPerDay {
		return "", fmt.Errorf("%w: minute of day %d out of range", ErrMalformedTimeLabel, minutes)
	}

	hour := minutes / 60
	minute := minutes % 60

	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}

	display := hour % 12
	if display == 0 {
		display = 12
	}

	return fmt.Sprintf("%02d:%02d %s", display, minute, meridiem), nil
}

// mustLabel is for minute values the caller has already bounded.
func mustLabel(minutes int) string {
	label, err := MinutesToTime(minutes)
	if err != nil {
		panic(err)
	}
	return label
}

func malformed(label string) error {
	return fmt.Errorf("%w: %q", ErrMalformedTimeLabel, label)
}

// interval is a half-open [start, end) range in minutes of day.
type interval struct {
	start int
	end   int
}

func (i interval) overlaps(o interval) bool {
	return i.start < o.end && i.end > o.start
}

func labelInterval(start, end string) (interval, error) {
	s, err := TimeToMinutes(start)
	if err != nil {
		return interval{}, err
	}
	e, err := TimeToMinutes(end)
	if err != nil {
		return interval{}, err
	}
	return interval{start: s, end: e}, nil
}
