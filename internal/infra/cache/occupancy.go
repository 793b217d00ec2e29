package cache

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"hotel-board/internal/domain/pricing"
	"hotel-board/internal/infra"
	"hotel-board/internal/pkg/dates"
	"hotel-board/internal/pkg/opt"

	"github.com/go-redis/redis/v8"
)

// OccupancyRepository keeps free room counts in one hash per room type with a
// field per day.
type OccupancyRepository struct {
	client redis.Cmdable
	logger *slog.Logger
}

func NewOccupancyRepository(client redis.Cmdable, logger *slog.Logger) *OccupancyRepository {
	return &OccupancyRepository{
		client: client,
		logger: logger,
	}
}

func OccupancyKey(houseID, roomTypeID int64) string {
	return fmt.Sprintf("OCP:%d:%d", houseID, roomTypeID)
}

// Get reports unknown days as absent.
func (r *OccupancyRepository) Get(ctx context.Context, houseID, roomTypeID int64, days []time.Time) (pricing.Occupancy, error) {
	out := make(pricing.Occupancy, len(days))
	if len(days) == 0 {
		return out, nil
	}

	fields := make([]string, len(days))
	for i, day := range days {
		fields[i] = dates.Format(day)
	}
	values, err := r.client.HMGet(ctx, OccupancyKey(houseID, roomTypeID), fields...).Result()
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to read occupancy", err)
	}

	for i, day := range days {
		out[dates.Date(day)] = opt.None[int]()
		raw, ok := values[i].(string)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			r.logger.WarnContext(ctx, "ignoring malformed occupancy value",
				slog.String("key", OccupancyKey(houseID, roomTypeID)),
				slog.String("day", fields[i]),
				slog.String("value", raw))
			continue
		}
		out[dates.Date(day)] = opt.Some(n)
	}
	return out, nil
}

// Set overwrites the given days and leaves the others untouched.
func (r *OccupancyRepository) Set(ctx context.Context, houseID, roomTypeID int64, occupancy map[time.Time]int) error {
	if len(occupancy) == 0 {
		return nil
	}
	values := make(map[string]any, len(occupancy))
	for day, free := range occupancy {
		values[dates.Format(day)] = free
	}
	if err := r.client.HSet(ctx, OccupancyKey(houseID, roomTypeID), values).Err(); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to write occupancy", err)
	}
	return nil
}
