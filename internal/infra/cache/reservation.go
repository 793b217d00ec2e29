package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"hotel-board/internal/infra"
	"hotel-board/internal/usecase/readmodel"

	"github.com/go-redis/redis/v8"
	jsoniter "github.com/json-iterator/go"
)

const scanBatch = 500

// ReservationCache stores calendar entries as JSON strings under
// RES:{house}:{reservation}-{room}-{seq}.
type ReservationCache struct {
	client redis.Cmdable
	ttl    time.Duration
	logger *slog.Logger
}

// NewReservationCache keeps entries without expiry when ttl is zero.
func NewReservationCache(client redis.Cmdable, ttl time.Duration, logger *slog.Logger) *ReservationCache {
	return &ReservationCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func EntryKey(houseID int64, pk string) string {
	return fmt.Sprintf("RES:%d:%s", houseID, pk)
}

func (c *ReservationCache) Search(ctx context.Context, houseID int64) ([]readmodel.CalendarEntry, error) {
	keys, err := c.keys(ctx, fmt.Sprintf("RES:%d:*", houseID))
	if err != nil {
		return nil, infra.WrapRepoErr(c.logger, infra.KindDBFailure, "failed to scan calendar cache", err)
	}
	if len(keys) == 0 {
		return nil, nil
	}

	values, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, infra.WrapRepoErr(c.logger, infra.KindDBFailure, "failed to read calendar cache", err)
	}

	out := make([]readmodel.CalendarEntry, 0, len(values))
	for i, v := range values {
		// deleted between SCAN and MGET
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var entry readmodel.CalendarEntry
		if err := jsoniter.ConfigCompatibleWithStandardLibrary.UnmarshalFromString(raw, &entry); err != nil {
			c.logger.WarnContext(ctx, "skipping malformed calendar entry",
				slog.String("key", keys[i]),
				slog.String("error", err.Error()))
			continue
		}
		out = append(out, entry)
	}
	return out, nil
}

func (c *ReservationCache) Save(ctx context.Context, houseID int64, entries []readmodel.CalendarEntry) error {
	if len(entries) == 0 {
		return nil
	}
	_, err := c.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, entry := range entries {
			raw, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalToString(entry)
			if err != nil {
				return err
			}
			pipe.Set(ctx, EntryKey(houseID, entry.PK), raw, c.ttl)
		}
		return nil
	})
	if err != nil {
		return infra.WrapRepoErr(c.logger, infra.KindDBFailure, "failed to write calendar cache", err)
	}
	return nil
}

// Delete drops every entry of one reservation.
func (c *ReservationCache) Delete(ctx context.Context, houseID, reservationID int64) error {
	keys, err := c.keys(ctx, fmt.Sprintf("RES:%d:%d-*", houseID, reservationID))
	if err != nil {
		return infra.WrapRepoErr(c.logger, infra.KindDBFailure, "failed to scan calendar cache", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return infra.WrapRepoErr(c.logger, infra.KindDBFailure, "failed to delete calendar entries", err)
	}
	return nil
}

func (c *ReservationCache) keys(ctx context.Context, match string) ([]string, error) {
	var keys []string
	iter := c.client.Scan(ctx, 0, match, scanBatch).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	return keys, iter.Err()
}
