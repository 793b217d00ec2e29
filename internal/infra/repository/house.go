package repository

import (
	"context"
	"fmt"
	"log/slog"

	"hotel-board/internal/domain/house"
	"hotel-board/internal/infra"
	"hotel-board/internal/infra/db"
	"hotel-board/internal/pkg/pgconv"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5/pgtype"
)

type HouseRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewHouseRepository(dbtx db.DBTX, logger *slog.Logger) *HouseRepository {
	return &HouseRepository{
		db:     dbtx,
		logger: logger,
	}
}

func (r *HouseRepository) Get(ctx context.Context, houseID int64) (*house.House, error) {
	ds := from("houses").
		Select("id", "name", "tax_percent", "currency", "timezone").
		Where(goqu.C("id").Eq(houseID))

	var (
		h   house.House
		tax pgtype.Numeric
	)
	if err := queryRow(ctx, r.db, ds).Scan(&h.ID, &h.Name, &tax, &h.Currency, &h.TimeZone); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.ClassifyErr(err), fmt.Sprintf("failed to get house %d", houseID), err)
	}
	h.TaxPercent = pgconv.DecimalFromNumeric(tax)
	return &h, nil
}

func (r *HouseRepository) SelectIDs(ctx context.Context) ([]int64, error) {
	rows, err := query(ctx, r.db, from("houses").Select("id").Order(goqu.C("id").Asc()))
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to select houses", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan house id", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *HouseRepository) GetRoomType(ctx context.Context, houseID, roomTypeID int64) (*house.RoomType, error) {
	ds := from("room_types").
		Select("id", "house_id", "name").
		Where(goqu.Ex{"id": roomTypeID, "house_id": houseID})

	var rt house.RoomType
	if err := queryRow(ctx, r.db, ds).Scan(&rt.ID, &rt.HouseID, &rt.Name); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.ClassifyErr(err), fmt.Sprintf("failed to get room type %d", roomTypeID), err)
	}
	return &rt, nil
}

func (r *HouseRepository) SelectRoomTypes(ctx context.Context, houseID int64) ([]house.RoomType, error) {
	ds := from("room_types").
		Select("id", "house_id", "name").
		Where(goqu.C("house_id").Eq(houseID)).
		Order(goqu.C("id").Asc())

	rows, err := query(ctx, r.db, ds)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to select room types", err)
	}
	defer rows.Close()

	var out []house.RoomType
	for rows.Next() {
		var rt house.RoomType
		if err := rows.Scan(&rt.ID, &rt.HouseID, &rt.Name); err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan room type", err)
		}
		out = append(out, rt)
	}
	return out, rows.Err()
}

func (r *HouseRepository) GetRoom(ctx context.Context, houseID, roomID int64) (*house.Room, error) {
	ds := from("rooms").
		Select("id", "house_id", "room_type_id", "name").
		Where(goqu.Ex{"id": roomID, "house_id": houseID})

	var room house.Room
	if err := queryRow(ctx, r.db, ds).Scan(&room.ID, &room.HouseID, &room.RoomTypeID, &room.Name); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.ClassifyErr(err), fmt.Sprintf("failed to get room %d", roomID), err)
	}
	return &room, nil
}

func (r *HouseRepository) CountRooms(ctx context.Context, houseID int64) (map[int64]int, error) {
	ds := from("rooms").
		Select("room_type_id", goqu.COUNT(goqu.Star())).
		Where(goqu.C("house_id").Eq(houseID)).
		GroupBy("room_type_id")

	rows, err := query(ctx, r.db, ds)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to count rooms", err)
	}
	defer rows.Close()

	out := make(map[int64]int)
	for rows.Next() {
		var (
			roomTypeID int64
			count      int
		)
		if err := rows.Scan(&roomTypeID, &count); err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan room count", err)
		}
		out[roomTypeID] = count
	}
	return out, rows.Err()
}
