package shared

import (
	"context"
	"time"

	"hotel-board/internal/domain/house"
	"hotel-board/internal/domain/pricing"
	"hotel-board/internal/domain/reservation"
	"hotel-board/internal/pkg/opt"
	"hotel-board/internal/usecase/readmodel"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/shared/ports_mock.go -package=sharedmock

// Missing entities are reported as infra.RepositoryError with KindNotFound.

type HouseRepository interface {
	Get(ctx context.Context, houseID int64) (*house.House, error)
	SelectIDs(ctx context.Context) ([]int64, error)
	GetRoomType(ctx context.Context, houseID, roomTypeID int64) (*house.RoomType, error)
	SelectRoomTypes(ctx context.Context, houseID int64) ([]house.RoomType, error)
	GetRoom(ctx context.Context, houseID, roomID int64) (*house.Room, error)
	// CountRooms returns the number of rooms per room type.
	CountRooms(ctx context.Context, houseID int64) (map[int64]int, error)
}

type SaveOptions struct {
	// WithAcceptedPrices writes accepted amounts of existing rows too. New rows
	// always get them.
	WithAcceptedPrices bool
	Deletions          reservation.Deletions
}

// BusyDays counts occupied rooms per room type and day.
type BusyDays map[int64]map[time.Time]int

type ReservationRepository interface {
	Get(ctx context.Context, houseID, reservationID int64) (*reservation.Reservation, error)
	FindByChannel(ctx context.Context, houseID int64, source reservation.Source, channelID string) (*reservation.Reservation, error)
	// Save inserts or updates the aggregate. Updates require res.Version to match
	// the stored row, otherwise an infra KindConflict error is returned.
	Save(ctx context.Context, res *reservation.Reservation, opts SaveOptions) (*reservation.Reservation, error)
	IsRoomBusy(ctx context.Context, houseID, roomID int64, start, end time.Time, exclude opt.Option[int64]) (bool, error)
	SelectBusyDays(ctx context.Context, houseID int64, start, end time.Time) (BusyDays, error)
	// SelectForPeriod returns reservations with at least one night in [start, end].
	SelectForPeriod(ctx context.Context, houseID int64, start, end time.Time) ([]*reservation.Reservation, error)
}

type PriceRepository interface {
	GetPlan(ctx context.Context, houseID, ratePlanID int64) (*pricing.RatePlan, error)
	SelectRates(ctx context.Context, houseID, roomTypeID, ratePlanID int64) ([]pricing.Rate, error)
	// SelectPrices returns the nightly prices of a rate in [start, end).
	SelectPrices(ctx context.Context, rateID int64, start, end time.Time) (map[time.Time]decimal.Decimal, error)
	SelectRestrictions(ctx context.Context, houseID, roomTypeID, ratePlanID int64, start, end time.Time) (map[time.Time]decimal.Decimal, error)
}

type DiscountRepository interface {
	Select(ctx context.Context, houseID, roomTypeID int64, onlyActive bool) (pricing.Rules, error)
}

type OccupancyRepository interface {
	Get(ctx context.Context, houseID, roomTypeID int64, days []time.Time) (pricing.Occupancy, error)
	Set(ctx context.Context, houseID, roomTypeID int64, occupancy map[time.Time]int) error
}

type ReservationCache interface {
	Search(ctx context.Context, houseID int64) ([]readmodel.CalendarEntry, error)
	Save(ctx context.Context, houseID int64, entries []readmodel.CalendarEntry) error
	Delete(ctx context.Context, houseID, reservationID int64) error
}

type ChangelogRepository interface {
	Record(ctx context.Context, entry readmodel.ChangelogEntry) error
}
