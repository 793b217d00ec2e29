package readmodel

import (
	"time"

	"github.com/shopspring/decimal"
)

type CalendarGrid string

const (
	GridRoom     CalendarGrid = "room"
	GridRoomType CalendarGrid = "roomtype"
)

// CalendarEntry is one bar of the booking calendar: a run of consecutive nights
// of one reservation room placed on the same room or room type row.
type CalendarEntry struct {
	PK            string          `json:"pk"`
	ReservationID int64           `json:"reservation_id"`
	RoomID        int64           `json:"room_id"`
	Grid          CalendarGrid    `json:"grid"`
	GridID        int64           `json:"grid_id"`
	CheckIn       time.Time       `json:"checkin"`
	CheckOut      time.Time       `json:"checkout"`
	ChannelID     string          `json:"channel_id"`
	Source        string          `json:"source"`
	Status        string          `json:"status,omitempty"`
	Adults        int             `json:"adults"`
	Children      int             `json:"children"`
	Name          string          `json:"name"`
	Phone         string          `json:"phone,omitempty"`
	CloseReason   string          `json:"close_reason,omitempty"`
	Comments      string          `json:"comments,omitempty"`
	Currency      string          `json:"currency"`
	Total         decimal.Decimal `json:"total"`
	IsVerified    bool            `json:"is_verified"`
	SplitLeft     bool            `json:"split_left,omitempty"`
	SplitRight    bool            `json:"split_right,omitempty"`
}
