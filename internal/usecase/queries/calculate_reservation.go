package queries

import (
	"context"
	"fmt"
	"time"

	"hotel-board/internal/domain/house"
	"hotel-board/internal/domain/pricing"
	"hotel-board/internal/pkg/clock"
	"hotel-board/internal/pkg/dates"
	"hotel-board/internal/pkg/opt"
	"hotel-board/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=calculate_reservation.go -destination=../../../tests/mock/queries/calculate_reservation_mock.go -package=queriesmock

type CalculateReservationRequest struct {
	HouseID    int64
	RoomTypeID int64
	RatePlanID int64
	Start      time.Time
	End        time.Time
	GuestCount int
	RateID     opt.Option[int64]
}

// ReservationQuote holds the resolved prices of a prospective stay. Rate is
// absent when the room type has no rate under the plan.
type ReservationQuote struct {
	House    *house.House
	RoomType *house.RoomType
	RatePlan *pricing.RatePlan
	Rates    []pricing.Rate
	Rate     opt.Option[pricing.Rate]
	Prices   pricing.Prices
}

type PriceQueries interface {
	CalculateReservation(ctx context.Context, req CalculateReservationRequest) (*ReservationQuote, error)
}

type priceQueriesImpl struct {
	houses    shared.HouseRepository
	prices    shared.PriceRepository
	discounts shared.DiscountRepository
	occupancy shared.OccupancyRepository
	clock     clock.Clock
}

func NewPriceQueries(
	houses shared.HouseRepository,
	prices shared.PriceRepository,
	discounts shared.DiscountRepository,
	occupancy shared.OccupancyRepository,
	clk clock.Clock,
) PriceQueries {
	return &priceQueriesImpl{
		houses:    houses,
		prices:    prices,
		discounts: discounts,
		occupancy: occupancy,
		clock:     clk,
	}
}

type calcContext struct {
	req          CalculateReservationRequest
	house        *house.House
	roomType     *house.RoomType
	ratePlan     *pricing.RatePlan
	rates        []pricing.Rate
	rate         opt.Option[pricing.Rate]
	restrictions map[time.Time]decimal.Decimal
	prices       pricing.Prices
	rules        pricing.Rules
	occupancy    pricing.Occupancy
}

func (q *priceQueriesImpl) CalculateReservation(ctx context.Context, req CalculateReservationRequest) (*ReservationQuote, error) {
	c := &calcContext{req: req}
	err := shared.Flow(ctx, c,
		q.selectHouse,
		q.checkPeriod,
		q.selectRoomType,
		q.selectRatePlan,
		q.selectRates,
		selectRateByID,
		selectRateByGuestCount,
		q.selectRestrictions,
		q.selectDailyPrices,
		q.selectDiscounts,
		q.selectOccupancy,
		q.applyLastMinute,
		applyAvailability,
		applyLOS,
		applyMinPrices,
	)
	if err != nil {
		return nil, err
	}
	return &ReservationQuote{
		House:    c.house,
		RoomType: c.roomType,
		RatePlan: c.ratePlan,
		Rates:    c.rates,
		Rate:     c.rate,
		Prices:   c.prices,
	}, nil
}

func (q *priceQueriesImpl) selectHouse(ctx context.Context, c *calcContext) error {
	h, err := shared.SelectHouse(ctx, q.houses, c.req.HouseID)
	if err != nil {
		return err
	}
	c.house = h
	return nil
}

func (q *priceQueriesImpl) checkPeriod(_ context.Context, c *calcContext) error {
	if !dates.Date(c.req.End).After(dates.Date(c.req.Start)) {
		return shared.NewCaseError(shared.KindWrongPeriod, c.house.ID, c.req.RoomTypeID,
			fmt.Sprintf("wrong period %s - %s", dates.Format(c.req.Start), dates.Format(c.req.End)), nil)
	}
	return nil
}

func (q *priceQueriesImpl) selectRoomType(ctx context.Context, c *calcContext) error {
	rt, err := shared.SelectRoomType(ctx, q.houses, c.house.ID, c.req.RoomTypeID)
	if err != nil {
		return err
	}
	c.roomType = rt
	return nil
}

func (q *priceQueriesImpl) selectRatePlan(ctx context.Context, c *calcContext) error {
	plan, err := shared.SelectRatePlan(ctx, q.prices, c.house.ID, c.req.RatePlanID)
	if err != nil {
		return err
	}
	c.ratePlan = plan
	return nil
}

func (q *priceQueriesImpl) selectRates(ctx context.Context, c *calcContext) error {
	rates, err := q.prices.SelectRates(ctx, c.house.ID, c.roomType.ID, c.ratePlan.ID)
	if err != nil {
		return shared.NewCaseError(shared.KindError, c.house.ID, c.roomType.ID,
			fmt.Sprintf("select rates for room type %d", c.roomType.ID), err)
	}
	c.rates = rates
	return nil
}

func selectRateByID(_ context.Context, c *calcContext) error {
	id, ok := c.req.RateID.Get()
	if !ok || id <= 0 {
		return nil
	}
	for _, r := range c.rates {
		if r.ID == id {
			c.rate = opt.Some(r)
			return nil
		}
	}
	return nil
}

func selectRateByGuestCount(_ context.Context, c *calcContext) error {
	if c.rate.IsSome() {
		return nil
	}
	if r, ok := pricing.SelectRate(c.rates, opt.None[int64](), c.req.GuestCount); ok {
		c.rate = opt.Some(r)
	}
	return nil
}

func (q *priceQueriesImpl) selectRestrictions(ctx context.Context, c *calcContext) error {
	if c.rate.IsNone() {
		return nil
	}
	data, err := q.prices.SelectRestrictions(ctx, c.house.ID, c.roomType.ID, c.ratePlan.ID, c.req.Start, c.req.End)
	if err != nil {
		return shared.NewCaseError(shared.KindError, c.house.ID, c.roomType.ID,
			fmt.Sprintf("select price restrictions for room type %d", c.roomType.ID), err)
	}
	c.restrictions = data
	return nil
}

func (q *priceQueriesImpl) selectDailyPrices(ctx context.Context, c *calcContext) error {
	rate, ok := c.rate.Get()
	if !ok {
		c.prices = pricing.BaseSeries(c.req.Start, c.req.End, nil)
		return nil
	}
	data, err := q.prices.SelectPrices(ctx, rate.ID, c.req.Start, c.req.End)
	if err != nil {
		return shared.NewCaseError(shared.KindError, c.house.ID, rate.ID,
			fmt.Sprintf("select prices for rate %d", rate.ID), err)
	}
	c.prices = pricing.BaseSeries(c.req.Start, c.req.End, data)
	return nil
}

func (q *priceQueriesImpl) selectDiscounts(ctx context.Context, c *calcContext) error {
	if c.rate.IsNone() {
		return nil
	}
	rules, err := q.discounts.Select(ctx, c.house.ID, c.roomType.ID, true)
	if err != nil {
		return shared.NewCaseError(shared.KindError, c.house.ID, c.roomType.ID,
			fmt.Sprintf("select discounts for room type %d", c.roomType.ID), err)
	}
	c.rules = rules.ForPlan(c.ratePlan.ID)
	return nil
}

// selectOccupancy reads inventory only when an availability rule can use it.
func (q *priceQueriesImpl) selectOccupancy(ctx context.Context, c *calcContext) error {
	if c.rate.IsNone() || !c.rules.Has(pricing.DiscountAvailability) {
		return nil
	}
	data, err := q.occupancy.Get(ctx, c.house.ID, c.roomType.ID, dates.Nights(c.req.Start, c.req.End))
	if err != nil {
		return shared.NewCaseError(shared.KindError, c.house.ID, c.roomType.ID,
			fmt.Sprintf("select occupancy for room type %d", c.roomType.ID), err)
	}
	c.occupancy = data
	return nil
}

func (q *priceQueriesImpl) applyLastMinute(_ context.Context, c *calcContext) error {
	if c.rate.IsNone() {
		return nil
	}
	today := clock.Today(q.clock, c.house.Location())
	c.prices = pricing.ApplyLastMinute(c.prices, c.rules[pricing.DiscountLastMinute], today)
	return nil
}

func applyAvailability(_ context.Context, c *calcContext) error {
	if c.rate.IsNone() {
		return nil
	}
	c.prices = pricing.ApplyAvailability(c.prices, c.rules[pricing.DiscountAvailability], c.occupancy)
	return nil
}

func applyLOS(_ context.Context, c *calcContext) error {
	if c.rate.IsNone() {
		return nil
	}
	c.prices = pricing.ApplyLOS(c.prices, c.rules[pricing.DiscountLOS], dates.Between(c.req.Start, c.req.End))
	return nil
}

func applyMinPrices(_ context.Context, c *calcContext) error {
	if c.rate.IsNone() {
		return nil
	}
	c.prices = pricing.ApplyMinPrice(c.prices, c.restrictions)
	return nil
}
