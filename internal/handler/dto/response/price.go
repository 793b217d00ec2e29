package response

import (
	"sort"

	"hotel-board/internal/domain/pricing"
	"hotel-board/internal/pkg/dates"
	"hotel-board/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type NightPriceResponse struct {
	Day Date `json:"day"`
	// Price is null for a night without a price.
	Price *decimal.Decimal `json:"price"`
}

type RateResponse struct {
	ID        int64 `json:"id"`
	Occupancy int   `json:"occupancy"`
}

type QuoteResponse struct {
	HouseID    int64                `json:"house_id"`
	RoomTypeID int64                `json:"room_type_id"`
	RatePlanID int64                `json:"rate_plan_id"`
	RateID     *int64               `json:"rate_id"`
	Currency   string               `json:"currency"`
	Rates      []RateResponse       `json:"rates"`
	Nights     []NightPriceResponse `json:"nights"`
	Total      decimal.Decimal      `json:"total"`
}

func FromQuote(q *queries.ReservationQuote) *QuoteResponse {
	out := &QuoteResponse{
		HouseID:    q.House.ID,
		RoomTypeID: q.RoomType.ID,
		RatePlanID: q.RatePlan.ID,
		Currency:   q.House.Currency,
		Rates:      make([]RateResponse, 0, len(q.Rates)),
		Nights:     make([]NightPriceResponse, 0, len(q.Prices)),
		Total:      q.Prices.Total(),
	}
	if rate, ok := q.Rate.Get(); ok {
		out.RateID = &rate.ID
	}
	for _, r := range q.Rates {
		out.Rates = append(out.Rates, RateResponse{ID: r.ID, Occupancy: r.Occupancy})
	}
	for _, p := range q.Prices {
		out.Nights = append(out.Nights, NightPriceResponse{
			Day:   Date(dates.Format(p.Day)),
			Price: p.Price.Ptr(),
		})
	}
	return out
}

type DayOccupancyResponse struct {
	Day Date `json:"day"`
	// Free is null when the night was never calculated.
	Free *int `json:"free"`
}

type RoomTypeOccupancyResponse struct {
	RoomTypeID int64                  `json:"room_type_id"`
	Days       []DayOccupancyResponse `json:"days"`
}

// FromOccupancy orders room types by id and days ascending.
func FromOccupancy(occupancy map[int64]pricing.Occupancy) []RoomTypeOccupancyResponse {
	out := make([]RoomTypeOccupancyResponse, 0, len(occupancy))
	for roomTypeID, days := range occupancy {
		row := RoomTypeOccupancyResponse{
			RoomTypeID: roomTypeID,
			Days:       make([]DayOccupancyResponse, 0, len(days)),
		}
		for day, free := range days {
			row.Days = append(row.Days, DayOccupancyResponse{Day: Date(dates.Format(day)), Free: free.Ptr()})
		}
		sort.Slice(row.Days, func(i, j int) bool { return row.Days[i].Day < row.Days[j].Day })
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RoomTypeID < out[j].RoomTypeID })
	return out
}
