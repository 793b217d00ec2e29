package house

import (
	"time"

	"github.com/shopspring/decimal"
)

type House struct {
	ID         int64
	Name       string
	TaxPercent decimal.Decimal
	Currency   string
	TimeZone   string
}

// Location falls back to UTC for an empty or unknown zone.
func (h House) Location() *time.Location {
	if h.TimeZone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(h.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

type RoomType struct {
	ID      int64
	HouseID int64
	Name    string
}

type Room struct {
	ID         int64
	HouseID    int64
	RoomTypeID int64
	Name       string
}
