package request

import (
	"errors"
	"time"

	"hotel-board/internal/pkg/dates"
)

var (
	ErrInvalidPeriod = errors.New("end must be after start")
	ErrNegativePrice = errors.New("price must not be negative")
)

func parsePeriod(startRaw, endRaw string) (time.Time, time.Time, error) {
	start, err := dates.Parse(startRaw)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := dates.Parse(endRaw)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, ErrInvalidPeriod
	}
	return start, end, nil
}

// PeriodQuery is the closed date window of board reads.
type PeriodQuery struct {
	Start      string `form:"start" binding:"required,datetime=2006-01-02"`
	End        string `form:"end" binding:"required,datetime=2006-01-02"`
	RoomTypeID *int64 `form:"room_type_id" binding:"omitempty,gt=0"`
}

// Period allows a single day window.
func (q PeriodQuery) Period() (time.Time, time.Time, error) {
	start, err := dates.Parse(q.Start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := dates.Parse(q.End)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, ErrInvalidPeriod
	}
	return start, end, nil
}
