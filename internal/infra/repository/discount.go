package repository

import (
	"context"
	"log/slog"

	"hotel-board/internal/domain/pricing"
	"hotel-board/internal/infra"
	"hotel-board/internal/infra/db"
	"hotel-board/internal/pkg/pgconv"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5/pgtype"
	jsoniter "github.com/json-iterator/go"
)

type DiscountRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewDiscountRepository(dbtx db.DBTX, logger *slog.Logger) *DiscountRepository {
	return &DiscountRepository{
		db:     dbtx,
		logger: logger,
	}
}

// Select returns the discount rules of a room type grouped by type. Rows that
// fail validation are skipped and logged.
func (r *DiscountRepository) Select(ctx context.Context, houseID, roomTypeID int64, onlyActive bool) (pricing.Rules, error) {
	ds := from("discounts").
		Select("id", "house_id", "room_type_id", "type", "percent", "start_date", "end_date",
			"is_active", "days_before", "free_rooms", "nights", "rate_plans").
		Where(goqu.Ex{"house_id": houseID, "room_type_id": roomTypeID}).
		Order(goqu.C("id").Asc())
	if onlyActive {
		ds = ds.Where(goqu.C("is_active").IsTrue())
	}

	rows, err := query(ctx, r.db, ds)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to select discounts", err)
	}
	defer rows.Close()

	var discounts []pricing.Discount
	for rows.Next() {
		var (
			d          pricing.Discount
			kind       string
			percent    pgtype.Numeric
			start, end pgtype.Date
			ratePlans  []byte
		)
		err := rows.Scan(&d.ID, &d.HouseID, &d.RoomTypeID, &kind, &percent, &start, &end,
			&d.IsActive, &d.DaysBefore, &d.FreeRooms, &d.Nights, &ratePlans)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan discount", err)
		}
		d.Type = pricing.DiscountType(kind)
		d.Percent = pgconv.DecimalFromNumeric(percent)
		d.Start = pgconv.DateFromPgtype(start)
		d.End = pgconv.DateFromPgtype(end)
		if len(ratePlans) > 0 {
			if err := jsoniter.ConfigFastest.Unmarshal(ratePlans, &d.RatePlans); err != nil {
				return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to decode discount rate plans", err)
			}
		}

		if err := d.Validate(); err != nil {
			r.logger.WarnContext(ctx, "skipping invalid discount",
				slog.Int64("discount_id", d.ID),
				slog.String("error", err.Error()))
			continue
		}
		discounts = append(discounts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to read discounts", err)
	}
	return pricing.GroupRules(discounts), nil
}
