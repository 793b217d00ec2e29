package repository

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"hotel-board/internal/domain/reservation"
	"hotel-board/internal/infra"
	"hotel-board/internal/infra/db"
	"hotel-board/internal/infra/repository/converter"
	"hotel-board/internal/pkg/opt"
	"hotel-board/internal/pkg/pgconv"
	"hotel-board/internal/usecase/shared"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	tableReservations = "reservations"
	tableRooms        = "reservation_rooms"
	tableDays         = "reservation_days"
)

type ReservationRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewReservationRepository(dbtx db.DBTX, logger *slog.Logger) *ReservationRepository {
	return &ReservationRepository{
		db:     dbtx,
		logger: logger,
	}
}

func (r *ReservationRepository) wrap(msg string, err error) error {
	return infra.WrapRepoErr(r.logger, infra.ClassifyErr(err), msg, err)
}

func (r *ReservationRepository) Get(ctx context.Context, houseID, reservationID int64) (*reservation.Reservation, error) {
	list, err := r.load(ctx, from(tableReservations).Where(goqu.Ex{"house_id": houseID, "id": reservationID}))
	if err != nil {
		return nil, r.wrap("failed to get reservation", err)
	}
	if len(list) == 0 {
		return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, fmt.Sprintf("reservation %d not found", reservationID), nil)
	}
	return list[0], nil
}

func (r *ReservationRepository) FindByChannel(ctx context.Context, houseID int64, source reservation.Source, channelID string) (*reservation.Reservation, error) {
	ds := from(tableReservations).
		Where(goqu.Ex{"house_id": houseID, "source": source.String(), "channel_id": channelID}).
		Order(goqu.C("id").Desc()).
		Limit(1)

	list, err := r.load(ctx, ds)
	if err != nil {
		return nil, r.wrap("failed to find reservation by channel", err)
	}
	if len(list) == 0 {
		return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, fmt.Sprintf("%s reservation %s not found", source, channelID), nil)
	}
	return list[0], nil
}

func (r *ReservationRepository) SelectForPeriod(ctx context.Context, houseID int64, start, end time.Time) ([]*reservation.Reservation, error) {
	withNights := from(tableDays).
		Select("reservation_id").
		Where(
			goqu.C("house_id").Eq(houseID),
			goqu.C("day").Between(goqu.Range(start, end)),
		)
	ds := from(tableReservations).
		Where(goqu.C("house_id").Eq(houseID), goqu.C("id").In(withNights)).
		Order(goqu.C("id").Asc())

	list, err := r.load(ctx, ds)
	if err != nil {
		return nil, r.wrap("failed to select reservations for period", err)
	}
	return list, nil
}

// occupying joins the nights that hold a room: live rooms of reservations that
// are not canceled.
func occupying(houseID int64) *goqu.SelectDataset {
	return from(goqu.T(tableDays).As("d")).
		Join(goqu.T(tableReservations).As("r"), goqu.On(goqu.I("r.id").Eq(goqu.I("d.reservation_id")))).
		Join(goqu.T(tableRooms).As("rr"), goqu.On(goqu.I("rr.id").Eq(goqu.I("d.reservation_room_id")))).
		Where(
			goqu.I("d.house_id").Eq(houseID),
			goqu.I("r.status").Neq(reservation.StatusCancel.String()),
			goqu.I("rr.is_deleted").IsFalse(),
		)
}

// IsRoomBusy checks the nights [start, end) of one room.
func (r *ReservationRepository) IsRoomBusy(ctx context.Context, houseID, roomID int64, start, end time.Time, exclude opt.Option[int64]) (bool, error) {
	ds := occupying(houseID).
		Select(goqu.COUNT(goqu.Star())).
		Where(
			goqu.I("d.room_id").Eq(roomID),
			goqu.I("d.day").Gte(start),
			goqu.I("d.day").Lt(end),
		)
	if id, ok := exclude.Get(); ok {
		ds = ds.Where(goqu.I("r.id").Neq(id))
	}

	var count int64
	if err := queryRow(ctx, r.db, ds).Scan(&count); err != nil {
		return false, r.wrap("failed to check room availability", err)
	}
	return count > 0, nil
}

// SelectBusyDays counts nights per room type in the closed window. An assigned
// room decides the room type over the booked one.
func (r *ReservationRepository) SelectBusyDays(ctx context.Context, houseID int64, start, end time.Time) (shared.BusyDays, error) {
	roomType := goqu.COALESCE(goqu.I("rm.room_type_id"), goqu.I("d.room_type_id"))
	ds := occupying(houseID).
		LeftJoin(goqu.T("rooms").As("rm"), goqu.On(goqu.I("rm.id").Eq(goqu.I("d.room_id")))).
		Select(roomType, goqu.I("d.day"), goqu.COUNT(goqu.Star())).
		Where(goqu.I("d.day").Between(goqu.Range(start, end))).
		GroupBy(roomType, goqu.I("d.day"))

	rows, err := query(ctx, r.db, ds)
	if err != nil {
		return nil, r.wrap("failed to select busy days", err)
	}
	defer rows.Close()

	out := make(shared.BusyDays)
	for rows.Next() {
		var (
			roomTypeID pgtype.Int8
			day        pgtype.Date
			count      int
		)
		if err := rows.Scan(&roomTypeID, &day, &count); err != nil {
			return nil, r.wrap("failed to scan busy day", err)
		}
		// nights without any room type can not be counted against inventory
		if !roomTypeID.Valid {
			continue
		}
		if out[roomTypeID.Int64] == nil {
			out[roomTypeID.Int64] = make(map[time.Time]int)
		}
		out[roomTypeID.Int64][pgconv.DateFromPgtype(day)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, r.wrap("failed to read busy days", err)
	}
	return out, nil
}

// Save writes the whole aggregate and returns it with fresh ids and version.
func (r *ReservationRepository) Save(ctx context.Context, res *reservation.Reservation, opts shared.SaveOptions) (*reservation.Reservation, error) {
	out := res.Clone()

	if out.IsNew() {
		rec := converter.ReservationRecord(out, true)
		rec["version"] = 1
		ds := insertInto(tableReservations).Rows(rec).Returning("id")
		if err := queryRow(ctx, r.db, ds).Scan(&out.ID); err != nil {
			return nil, r.wrap("failed to insert reservation", err)
		}
		out.Version = 1
	} else {
		if err := r.updateHeader(ctx, out, opts.WithAcceptedPrices); err != nil {
			return nil, err
		}
		if err := r.applyDeletions(ctx, out.ID, opts.Deletions); err != nil {
			return nil, err
		}
	}

	for i := range out.Rooms {
		room := &out.Rooms[i]
		if slices.Contains(opts.Deletions.RoomIDs, room.ID) {
			continue
		}
		if err := r.saveRoom(ctx, out, room, opts.WithAcceptedPrices); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *ReservationRepository) updateHeader(ctx context.Context, res *reservation.Reservation, withAccepted bool) error {
	rec := converter.ReservationRecord(res, withAccepted)
	rec["version"] = goqu.L("version + 1")
	rec["updated_at"] = goqu.L("now()")
	ds := update(tableReservations).
		Set(rec).
		Where(goqu.Ex{"id": res.ID, "house_id": res.HouseID, "version": res.Version})

	tag, err := exec(ctx, r.db, ds)
	if err != nil {
		return r.wrap("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindConflict,
			fmt.Sprintf("reservation %d changed since version %d", res.ID, res.Version), nil)
	}
	res.Version++
	return nil
}

// applyDeletions soft-deletes rooms and hard-deletes days.
func (r *ReservationRepository) applyDeletions(ctx context.Context, reservationID int64, deletions reservation.Deletions) error {
	if len(deletions.RoomIDs) > 0 {
		ds := update(tableRooms).
			Set(goqu.Record{"is_deleted": true, "deleted_at": goqu.L("COALESCE(deleted_at, now())")}).
			Where(goqu.Ex{"reservation_id": reservationID, "id": deletions.RoomIDs})
		if _, err := exec(ctx, r.db, ds); err != nil {
			return r.wrap("failed to delete reservation rooms", err)
		}
	}
	if len(deletions.DayIDs) > 0 {
		ds := deleteFrom(tableDays).
			Where(goqu.Ex{"reservation_id": reservationID, "id": deletions.DayIDs})
		if _, err := exec(ctx, r.db, ds); err != nil {
			return r.wrap("failed to delete reservation days", err)
		}
	}
	return nil
}

func (r *ReservationRepository) saveRoom(ctx context.Context, res *reservation.Reservation, room *reservation.Room, withAccepted bool) error {
	if room.ID == 0 {
		rec, err := converter.RoomRecord(res.ID, room, true)
		if err != nil {
			return r.wrap("failed to encode reservation room", err)
		}
		if err := queryRow(ctx, r.db, insertInto(tableRooms).Rows(rec).Returning("id")).Scan(&room.ID); err != nil {
			return r.wrap("failed to insert reservation room", err)
		}
	} else {
		rec, err := converter.RoomRecord(res.ID, room, withAccepted)
		if err != nil {
			return r.wrap("failed to encode reservation room", err)
		}
		ds := update(tableRooms).Set(rec).Where(goqu.Ex{"id": room.ID, "reservation_id": res.ID})
		if _, err := exec(ctx, r.db, ds); err != nil {
			return r.wrap("failed to update reservation room", err)
		}
	}

	for i := range room.Days {
		day := &room.Days[i]
		if day.ID == 0 {
			rec := converter.DayRecord(res.HouseID, res.ID, room.ID, day, true)
			if err := queryRow(ctx, r.db, insertInto(tableDays).Rows(rec).Returning("id")).Scan(&day.ID); err != nil {
				return r.wrap("failed to insert reservation day", err)
			}
			continue
		}
		rec := converter.DayRecord(res.HouseID, res.ID, room.ID, day, withAccepted)
		ds := update(tableDays).Set(rec).Where(goqu.Ex{"id": day.ID, "reservation_id": res.ID})
		if _, err := exec(ctx, r.db, ds); err != nil {
			return r.wrap("failed to update reservation day", err)
		}
	}
	return nil
}

// load reads the header rows selected by ds and attaches rooms and days.
func (r *ReservationRepository) load(ctx context.Context, ds *goqu.SelectDataset) ([]*reservation.Reservation, error) {
	rows, err := query(ctx, r.db, ds.Select(converter.ReservationColumns...))
	if err != nil {
		return nil, err
	}
	var list []*reservation.Reservation
	for rows.Next() {
		res, err := converter.ScanReservation(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		list = append(list, res)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}

	ids := make([]int64, len(list))
	byID := make(map[int64]*reservation.Reservation, len(list))
	for i, res := range list {
		ids[i] = res.ID
		byID[res.ID] = res
	}

	days, err := r.loadDays(ctx, ids)
	if err != nil {
		return nil, err
	}

	rows, err = query(ctx, r.db, from(tableRooms).
		Select(converter.RoomColumns...).
		Where(goqu.Ex{"reservation_id": ids}).
		Order(goqu.C("reservation_id").Asc(), goqu.C("id").Asc()))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		reservationID, room, err := converter.ScanRoom(rows)
		if err != nil {
			return nil, err
		}
		room.Days = days[room.ID]
		res := byID[reservationID]
		res.Rooms = append(res.Rooms, room)
	}
	return list, rows.Err()
}

func (r *ReservationRepository) loadDays(ctx context.Context, reservationIDs []int64) (map[int64][]reservation.Day, error) {
	rows, err := query(ctx, r.db, from(tableDays).
		Select(converter.DayColumns...).
		Where(goqu.Ex{"reservation_id": reservationIDs}).
		Order(goqu.C("reservation_room_id").Asc(), goqu.C("day").Asc()))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int64][]reservation.Day)
	for rows.Next() {
		roomID, day, err := converter.ScanDay(rows)
		if err != nil {
			return nil, err
		}
		out[roomID] = append(out[roomID], day)
	}
	return out, rows.Err()
}
