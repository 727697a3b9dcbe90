package appointment

import "time"

// Policy carries the tunable constants of the scheduling core. Its field
// set mirrors config.PolicyConfig so the two convert directly.
type Policy struct {
	SlotStep             time.Duration
	BookingBuffer        time.Duration
	WalkInBuffer         time.Duration
	NoShowGrace          time.Duration
	StaleThreshold       time.Duration
	CancellationLeadTime time.Duration
	MaxBookingsPerDay    int
	MaxBookingsPerWeek   int
}

func DefaultPolicy() Policy {
	return Policy{
		SlotStep:             15 * time.Minute,
		BookingBuffer:        15 * time.Minute,
		WalkInBuffer:         5 * time.Minute,
		NoShowGrace:          5 * time.Minute,
		StaleThreshold:       5 * time.Minute,
		CancellationLeadTime: 2 * time.Hour,
		MaxBookingsPerDay:    1,
		MaxBookingsPerWeek:   2,
	}
}

func (p Policy) stepMinutes() int {
	m := int(p.SlotStep / time.Minute)
	if m <= 0 {
		return 15
	}
	return m
}
