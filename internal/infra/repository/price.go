package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"hotel-board/internal/domain/pricing"
	"hotel-board/internal/infra"
	"hotel-board/internal/infra/db"
	"hotel-board/internal/pkg/pgconv"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
)

type PriceRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewPriceRepository(dbtx db.DBTX, logger *slog.Logger) *PriceRepository {
	return &PriceRepository{
		db:     dbtx,
		logger: logger,
	}
}

func scanRatePlan(row pgx.Row) (pricing.RatePlan, error) {
	var (
		plan   pricing.RatePlan
		policy []byte
	)
	if err := row.Scan(&plan.ID, &plan.HouseID, &plan.Name, &policy); err != nil {
		return pricing.RatePlan{}, err
	}
	if len(policy) > 0 {
		if err := jsoniter.ConfigFastest.Unmarshal(policy, &plan.Policy); err != nil {
			return pricing.RatePlan{}, err
		}
	}
	return plan, nil
}

func (r *PriceRepository) GetPlan(ctx context.Context, houseID, ratePlanID int64) (*pricing.RatePlan, error) {
	ds := from("rate_plans").
		Select("id", "house_id", "name", "policy").
		Where(goqu.Ex{"id": ratePlanID, "house_id": houseID})

	plan, err := scanRatePlan(queryRow(ctx, r.db, ds))
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.ClassifyErr(err), fmt.Sprintf("failed to get rate plan %d", ratePlanID), err)
	}
	return &plan, nil
}

func (r *PriceRepository) SelectRates(ctx context.Context, houseID, roomTypeID, ratePlanID int64) ([]pricing.Rate, error) {
	ds := from("rates").
		Select("id", "rate_plan_id", "room_type_id", "occupancy").
		Where(goqu.Ex{"house_id": houseID, "room_type_id": roomTypeID, "rate_plan_id": ratePlanID}).
		Order(goqu.C("id").Asc())

	rows, err := query(ctx, r.db, ds)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to select rates", err)
	}
	defer rows.Close()

	var out []pricing.Rate
	for rows.Next() {
		var rate pricing.Rate
		if err := rows.Scan(&rate.ID, &rate.RatePlanID, &rate.RoomTypeID, &rate.Occupancy); err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan rate", err)
		}
		out = append(out, rate)
	}
	return out, rows.Err()
}

func (r *PriceRepository) SelectPrices(ctx context.Context, rateID int64, start, end time.Time) (map[time.Time]decimal.Decimal, error) {
	ds := from("prices").
		Select("day", "price").
		Where(
			goqu.C("rate_id").Eq(rateID),
			goqu.C("day").Gte(start),
			goqu.C("day").Lt(end),
		)
	out, err := r.selectDayAmounts(ctx, ds)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, fmt.Sprintf("failed to select prices of rate %d", rateID), err)
	}
	return out, nil
}

// SelectRestrictions returns the minimum price per night of [start, end).
func (r *PriceRepository) SelectRestrictions(ctx context.Context, houseID, roomTypeID, ratePlanID int64, start, end time.Time) (map[time.Time]decimal.Decimal, error) {
	ds := from("price_restrictions").
		Select("day", "min_price").
		Where(
			goqu.Ex{"house_id": houseID, "room_type_id": roomTypeID, "rate_plan_id": ratePlanID},
			goqu.C("day").Gte(start),
			goqu.C("day").Lt(end),
		)
	out, err := r.selectDayAmounts(ctx, ds)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to select price restrictions", err)
	}
	return out, nil
}

func (r *PriceRepository) selectDayAmounts(ctx context.Context, ds *goqu.SelectDataset) (map[time.Time]decimal.Decimal, error) {
	rows, err := query(ctx, r.db, ds)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[time.Time]decimal.Decimal)
	for rows.Next() {
		var (
			day    pgtype.Date
			amount pgtype.Numeric
		)
		if err := rows.Scan(&day, &amount); err != nil {
			return nil, err
		}
		out[pgconv.DateFromPgtype(day)] = pgconv.DecimalFromNumeric(amount)
	}
	return out, rows.Err()
}
