package clock

import (
	"time"

	"hotel-board/internal/pkg/dates"
)

type Clock interface {
	Now() time.Time
}

// Today is the hotel calendar day for c in loc.
func Today(c Clock, loc *time.Location) time.Time {
	return dates.Today(c.Now(), loc)
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock stays at a set instant until moved.
type FixedClock struct {
	currentTime time.Time
}

func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{currentTime: t}
}

func (c *FixedClock) Now() time.Time {
	return c.currentTime
}

func (c *FixedClock) Set(t time.Time) {
	c.currentTime = t
}

func (c *FixedClock) AddDays(n int) {
	c.currentTime = c.currentTime.AddDate(0, 0, n)
}
