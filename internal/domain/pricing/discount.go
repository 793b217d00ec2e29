package pricing

import (
	"errors"
	"slices"
	"time"

	"hotel-board/internal/pkg/dates"
	"hotel-board/internal/pkg/opt"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDiscountType    = errors.New("invalid discount type")
	ErrInvalidDiscountPercent = errors.New("discount percent must be between 0 and 100")
	ErrInvalidDiscountWindow  = errors.New("discount window end must not be before start")
)

var hundred = decimal.NewFromInt(100)

type DiscountType string

const (
	DiscountLastMinute   DiscountType = "last_minute"
	DiscountAvailability DiscountType = "availability"
	DiscountLOS          DiscountType = "los"
)

func (t DiscountType) String() string {
	return string(t)
}

func (t DiscountType) IsValid() bool {
	switch t {
	case DiscountLastMinute, DiscountAvailability, DiscountLOS:
		return true
	default:
		return false
	}
}

// Discount is a percentage rule active on the closed window [Start, End].
// Only the threshold matching Type is meaningful.
type Discount struct {
	ID         int64
	HouseID    int64
	RoomTypeID int64
	Type       DiscountType
	Percent    decimal.Decimal
	Start      time.Time
	End        time.Time
	IsActive   bool

	DaysBefore int
	FreeRooms  int
	Nights     int

	// RatePlans restricts the rule to these plans; empty means every plan.
	RatePlans []int64
}

func (d Discount) Validate() error {
	if !d.Type.IsValid() {
		return ErrInvalidDiscountType
	}
	if d.Percent.IsNegative() || d.Percent.GreaterThan(hundred) {
		return ErrInvalidDiscountPercent
	}
	if d.End.Before(d.Start) {
		return ErrInvalidDiscountWindow
	}
	return nil
}

func (d Discount) Covers(day time.Time) bool {
	return dates.Within(day, d.Start, d.End)
}

func (d Discount) AppliesToPlan(planID int64) bool {
	return len(d.RatePlans) == 0 || slices.Contains(d.RatePlans, planID)
}

// Apply takes Percent off value.
func (d Discount) Apply(value decimal.Decimal) decimal.Decimal {
	return value.Mul(decimal.NewFromInt(1).Sub(d.Percent.Div(hundred)))
}

// Rules groups discounts by type.
type Rules map[DiscountType][]Discount

func GroupRules(discounts []Discount) Rules {
	out := make(Rules)
	for _, d := range discounts {
		out[d.Type] = append(out[d.Type], d)
	}
	return out
}

// ForPlan keeps the rules that apply to planID.
func (r Rules) ForPlan(planID int64) Rules {
	out := make(Rules, len(r))
	for t, list := range r {
		for _, d := range list {
			if d.AppliesToPlan(planID) {
				out[t] = append(out[t], d)
			}
		}
	}
	return out
}

func (r Rules) Has(t DiscountType) bool {
	return len(r[t]) > 0
}

// Occupancy is the free room count per night; a missing or absent entry means
// the inventory is unknown.
type Occupancy map[time.Time]opt.Option[int]

// ApplyLastMinute discounts nights close enough to today.
func ApplyLastMinute(prices Prices, rules []Discount, today time.Time) Prices {
	return applyEach(prices, rules, func(d Discount, day time.Time) bool {
		return d.DaysBefore >= dates.Between(today, day)
	})
}

// ApplyAvailability discounts nights whose free inventory is at or below the
// rule threshold. Nights with unknown inventory are left alone.
func ApplyAvailability(prices Prices, rules []Discount, occupancy Occupancy) Prices {
	return applyEach(prices, rules, func(d Discount, day time.Time) bool {
		free, ok := occupancy[dates.Date(day)].Get()
		return ok && free <= d.FreeRooms
	})
}

// ApplyLOS discounts every night of a stay at least as long as the rule requires.
func ApplyLOS(prices Prices, rules []Discount, nights int) Prices {
	return applyEach(prices, rules, func(d Discount, _ time.Time) bool {
		return nights >= d.Nights
	})
}

// applyEach applies, per priced night, the highest eligible discount.
func applyEach(prices Prices, rules []Discount, eligible func(Discount, time.Time) bool) Prices {
	if len(rules) == 0 {
		return prices
	}
	out := prices.clone()
	for i, dp := range out {
		value, ok := dp.Price.Get()
		if !ok {
			continue
		}
		best, found := bestDiscount(rules, dp.Day, eligible)
		if !found {
			continue
		}
		out[i].Price = opt.Some(best.Apply(value))
	}
	return out
}

func bestDiscount(rules []Discount, day time.Time, eligible func(Discount, time.Time) bool) (Discount, bool) {
	var best Discount
	found := false
	for _, d := range rules {
		if !d.Covers(day) || !eligible(d, day) {
			continue
		}
		if !found || d.Percent.GreaterThan(best.Percent) {
			best, found = d, true
		}
	}
	return best, found
}
