package pricing

import (
	"sort"
	"time"

	"hotel-board/internal/pkg/dates"
	"hotel-board/internal/pkg/opt"

	"github.com/shopspring/decimal"
)

type RatePlan struct {
	ID      int64
	HouseID int64
	Name    string
	// Policy is copied onto reservation rooms priced under this plan.
	Policy map[string]string
}

// Rate is an occupancy-specific price tier of a rate plan.
type Rate struct {
	ID         int64
	RatePlanID int64
	RoomTypeID int64
	Occupancy  int
}

// DayPrice is one night of a price series. An absent price is not the same as
// a free night and is never discounted.
type DayPrice struct {
	Day   time.Time
	Price opt.Option[decimal.Decimal]
}

// Prices is an ordered night series.
type Prices []DayPrice

func (p Prices) Total() decimal.Decimal {
	total := decimal.Zero
	for _, d := range p {
		total = total.Add(d.Price.OrElse(decimal.Zero))
	}
	return total
}

// Map returns the priced nights keyed by day.
func (p Prices) Map() map[time.Time]decimal.Decimal {
	out := make(map[time.Time]decimal.Decimal, len(p))
	for _, d := range p {
		if v, ok := d.Price.Get(); ok {
			out[d.Day] = v
		}
	}
	return out
}

func (p Prices) clone() Prices {
	out := make(Prices, len(p))
	copy(out, p)
	return out
}

// SelectRate picks the rate for a booking. An explicit rate id wins when it is
// one of the candidates; otherwise the exact occupancy, then the closest larger
// one, then the closest smaller one.
func SelectRate(rates []Rate, rateID opt.Option[int64], guestCount int) (Rate, bool) {
	if len(rates) == 0 {
		return Rate{}, false
	}
	if id, ok := rateID.Get(); ok && id > 0 {
		for _, r := range rates {
			if r.ID == id {
				return r, true
			}
		}
	}

	// later rates override earlier ones with the same occupancy
	byOccupancy := make(map[int]Rate, len(rates))
	occupancies := make([]int, 0, len(rates))
	for _, r := range rates {
		if _, seen := byOccupancy[r.Occupancy]; !seen {
			occupancies = append(occupancies, r.Occupancy)
		}
		byOccupancy[r.Occupancy] = r
	}
	sort.Ints(occupancies)

	if r, ok := byOccupancy[guestCount]; ok {
		return r, true
	}
	for _, o := range occupancies {
		if o > guestCount {
			return byOccupancy[o], true
		}
	}
	for i := len(occupancies) - 1; i >= 0; i-- {
		if occupancies[i] < guestCount {
			return byOccupancy[occupancies[i]], true
		}
	}
	return Rate{}, false
}

// BaseSeries lays source prices over every night of [start, end). Nights the
// source does not price stay absent.
func BaseSeries(start, end time.Time, source map[time.Time]decimal.Decimal) Prices {
	nights := dates.Nights(start, end)
	out := make(Prices, 0, len(nights))
	for _, day := range nights {
		dp := DayPrice{Day: day}
		if v, ok := source[day]; ok {
			dp.Price = opt.Some(v)
		}
		out = append(out, dp)
	}
	return out
}

// ApplyMinPrice raises each priced night to its restriction, if any.
func ApplyMinPrice(prices Prices, restrictions map[time.Time]decimal.Decimal) Prices {
	if len(restrictions) == 0 {
		return prices
	}
	out := prices.clone()
	for i, d := range out {
		floor, ok := restrictions[dates.Date(d.Day)]
		if !ok {
			continue
		}
		if v, priced := d.Price.Get(); priced {
			out[i].Price = opt.Some(decimal.Max(v, floor))
		}
	}
	return out
}
