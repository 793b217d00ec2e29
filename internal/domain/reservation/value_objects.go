package reservation

import (
	"maps"
	"strings"
	"time"

	"hotel-board/internal/pkg/dates"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Period is a stay [CheckIn, CheckOut) in whole days.
type Period struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewPeriod(checkIn, checkOut time.Time) (Period, error) {
	checkIn, checkOut = dates.Date(checkIn), dates.Date(checkOut)
	if !checkOut.After(checkIn) {
		return Period{}, ErrInvalidPeriod
	}
	return Period{checkIn: checkIn, checkOut: checkOut}, nil
}

func (p Period) CheckIn() time.Time {
	return p.checkIn
}

func (p Period) CheckOut() time.Time {
	return p.checkOut
}

func (p Period) Nights() int {
	return dates.Between(p.checkIn, p.checkOut)
}

func (p Period) Days() []time.Time {
	return dates.Nights(p.checkIn, p.checkOut)
}

func (p Period) Equal(other Period) bool {
	return p.checkIn.Equal(other.checkIn) && p.checkOut.Equal(other.checkOut)
}

type Guest struct {
	Name        string
	Surname     string
	Email       string
	Phone       string
	Country     string
	Nationality string
	City        string
	Address     string
	PostCode    string
	Comments    string
}

func (g Guest) FullName() string {
	return strings.TrimSpace(g.Name + " " + g.Surname)
}

type Notes struct {
	Extra      string
	Facilities string
	Info       string
	Meal       string
}

// Policy is the cancellation policy snapshot taken from a rate plan.
type Policy map[string]string

func (p Policy) Clone() Policy {
	if p == nil {
		return nil
	}
	return maps.Clone(p)
}

func (p Policy) Equal(other Policy) bool {
	return maps.Equal(p, other)
}

// TaxFor applies a flat percentage, rounded to cents.
func TaxFor(amount, percent decimal.Decimal) decimal.Decimal {
	if !percent.IsPositive() {
		return decimal.Zero
	}
	return amount.Mul(percent).Div(hundred).Round(2)
}
