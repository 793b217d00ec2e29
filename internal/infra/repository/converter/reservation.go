package converter

import (
	"hotel-board/internal/domain/reservation"
	"hotel-board/internal/pkg/pgconv"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	jsoniter "github.com/json-iterator/go"
)

var ReservationColumns = []any{
	"id", "house_id", "source", "channel", "channel_id",
	"checkin", "checkout", "booked_at", "status", "close_reason", "room_count", "currency",
	"price", "price_accepted", "netto_price", "netto_price_accepted", "tax", "fees",
	"guest_name", "guest_surname", "guest_email", "guest_phone", "guest_country",
	"guest_nationality", "guest_city", "guest_address", "guest_post_code", "guest_comments",
	"guest_contact_id", "promo", "payment_info", "is_verified", "verified_at",
	"opportunity_id", "quotation_id", "version",
}

var RoomColumns = []any{
	"id", "reservation_id", "external_id", "external_name", "channel_id",
	"channel_rate_id", "channel_rate_id_changed", "rate_plan_id", "rate_plan_id_original", "rate_id",
	"policy", "policy_original", "checkin", "checkout", "checkin_original", "checkout_original",
	"guest_name", "guest_count", "adults", "children", "max_children", "extra_bed", "with_breakfast",
	"currency", "price", "price_accepted", "netto_price", "netto_price_accepted", "tax", "fees",
	"notes_extra", "notes_facilities", "notes_info", "notes_meal", "is_deleted", "deleted_at",
}

var DayColumns = []any{
	"id", "reservation_room_id", "day", "price_original", "price_changed", "price_accepted",
	"tax", "currency", "room_id", "room_type_id",
}

// ReservationRecord holds the columns written on insert and update. Accepted
// amounts are only included when withAccepted is set.
func ReservationRecord(res *reservation.Reservation, withAccepted bool) goqu.Record {
	rec := goqu.Record{
		"house_id":          res.HouseID,
		"source":            res.Source.String(),
		"channel":           res.Channel,
		"channel_id":        res.ChannelID,
		"checkin":           pgconv.DateToPgtype(res.CheckIn),
		"checkout":          pgconv.DateToPgtype(res.CheckOut),
		"booked_at":         pgconv.TimeToPgtype(res.BookedAt),
		"status":            res.Status.String(),
		"close_reason":      res.CloseReason.String(),
		"room_count":        res.RoomCount,
		"currency":          res.Currency,
		"price":             pgconv.NumericFromDecimal(res.Price),
		"netto_price":       pgconv.NumericFromDecimal(res.NettoPrice),
		"tax":               pgconv.NumericFromDecimal(res.Tax),
		"fees":              pgconv.NumericFromDecimal(res.Fees),
		"guest_name":        res.Guest.Name,
		"guest_surname":     res.Guest.Surname,
		"guest_email":       res.Guest.Email,
		"guest_phone":       res.Guest.Phone,
		"guest_country":     res.Guest.Country,
		"guest_nationality": res.Guest.Nationality,
		"guest_city":        res.Guest.City,
		"guest_address":     res.Guest.Address,
		"guest_post_code":   res.Guest.PostCode,
		"guest_comments":    res.Guest.Comments,
		"guest_contact_id":  pgconv.Int8FromOpt(res.GuestContactID),
		"promo":             res.Promo,
		"payment_info":      res.PaymentInfo,
		"is_verified":       res.IsVerified,
		"verified_at":       pgconv.TimePtrToPgtype(res.VerifiedAt),
		"opportunity_id":    pgconv.Int8FromOpt(res.OpportunityID),
		"quotation_id":      pgconv.Int8FromOpt(res.QuotationID),
	}
	if withAccepted {
		rec["price_accepted"] = pgconv.NumericFromDecimal(res.PriceAccepted)
		rec["netto_price_accepted"] = pgconv.NumericFromDecimal(res.NettoPriceAccepted)
	}
	return rec
}

// RoomRecord leaves out the baselines that only move on acceptance unless
// withAccepted is set.
func RoomRecord(reservationID int64, room *reservation.Room, withAccepted bool) (goqu.Record, error) {
	policy, err := encodePolicy(room.Policy)
	if err != nil {
		return nil, err
	}
	rec := goqu.Record{
		"reservation_id":          reservationID,
		"external_id":             room.ExternalID,
		"external_name":           room.ExternalName,
		"channel_id":              room.ChannelID,
		"channel_rate_id_changed": room.ChannelRateIDChanged,
		"rate_plan_id":            pgconv.Int8FromOpt(room.RatePlanID),
		"rate_id":                 pgconv.Int8FromOpt(room.RateID),
		"policy":                  policy,
		"checkin":                 pgconv.DateToPgtype(room.CheckIn),
		"checkout":                pgconv.DateToPgtype(room.CheckOut),
		"guest_name":              room.GuestName,
		"guest_count":             room.GuestCount,
		"adults":                  room.Adults,
		"children":                room.Children,
		"max_children":            room.MaxChildren,
		"extra_bed":               room.ExtraBed,
		"with_breakfast":          room.WithBreakfast,
		"currency":                room.Currency,
		"price":                   pgconv.NumericFromDecimal(room.Price),
		"netto_price":             pgconv.NumericFromDecimal(room.NettoPrice),
		"tax":                     pgconv.NumericFromDecimal(room.Tax),
		"fees":                    pgconv.NumericFromDecimal(room.Fees),
		"notes_extra":             room.Notes.Extra,
		"notes_facilities":        room.Notes.Facilities,
		"notes_info":              room.Notes.Info,
		"notes_meal":              room.Notes.Meal,
		"is_deleted":              room.IsDeleted,
		"deleted_at":              pgconv.TimePtrToPgtype(room.DeletedAt),
	}
	if withAccepted {
		original, err := encodePolicy(room.PolicyOriginal)
		if err != nil {
			return nil, err
		}
		rec["channel_rate_id"] = room.ChannelRateID
		rec["rate_plan_id_original"] = pgconv.Int8FromOpt(room.RatePlanIDOriginal)
		rec["policy_original"] = original
		rec["checkin_original"] = pgconv.DateToPgtype(room.CheckInOriginal)
		rec["checkout_original"] = pgconv.DateToPgtype(room.CheckOutOriginal)
		rec["price_accepted"] = pgconv.NumericFromDecimal(room.PriceAccepted)
		rec["netto_price_accepted"] = pgconv.NumericFromDecimal(room.NettoPriceAccepted)
	}
	return rec, nil
}

func DayRecord(houseID, reservationID, roomID int64, day *reservation.Day, withAccepted bool) goqu.Record {
	rec := goqu.Record{
		"reservation_room_id": roomID,
		"reservation_id":      reservationID,
		"house_id":            houseID,
		"day":                 pgconv.DateToPgtype(day.Day),
		"price_changed":       pgconv.NumericFromDecimal(day.PriceChanged),
		"tax":                 pgconv.NumericFromDecimal(day.Tax),
		"currency":            day.Currency,
		"room_id":             pgconv.Int8FromOpt(day.RoomID),
		"room_type_id":        pgconv.Int8FromOpt(day.RoomTypeID),
	}
	if withAccepted {
		rec["price_original"] = pgconv.NumericFromDecimal(day.PriceOriginal)
		rec["price_accepted"] = pgconv.NumericFromDecimal(day.PriceAccepted)
	}
	return rec
}

func ScanReservation(row pgx.Row) (*reservation.Reservation, error) {
	var res reservation.Reservation
	var source, status, closeReason string
	var checkIn, checkOut pgtype.Date
	var bookedAt, verifiedAt pgtype.Timestamptz
	var price, priceAccepted, netto, nettoAccepted pgtype.Numeric
	var tax, fees pgtype.Numeric
	var guestContactID, opportunityID, quotationID pgtype.Int8
	err := row.Scan(
		&res.ID, &res.HouseID, &source, &res.Channel, &res.ChannelID,
		&checkIn, &checkOut, &bookedAt, &status, &closeReason, &res.RoomCount, &res.Currency,
		&price, &priceAccepted, &netto, &nettoAccepted, &tax, &fees,
		&res.Guest.Name, &res.Guest.Surname, &res.Guest.Email, &res.Guest.Phone, &res.Guest.Country,
		&res.Guest.Nationality, &res.Guest.City, &res.Guest.Address, &res.Guest.PostCode, &res.Guest.Comments,
		&guestContactID, &res.Promo, &res.PaymentInfo, &res.IsVerified, &verifiedAt,
		&opportunityID, &quotationID, &res.Version,
	)
	if err != nil {
		return nil, err
	}

	res.Source = reservation.Source(source)
	res.Status = reservation.Status(status)
	res.CloseReason = reservation.CloseReason(closeReason)
	res.CheckIn = pgconv.DateFromPgtype(checkIn)
	res.CheckOut = pgconv.DateFromPgtype(checkOut)
	if t := pgconv.TimePtrFromPgtype(bookedAt); t != nil {
		res.BookedAt = *t
	}
	res.VerifiedAt = pgconv.TimePtrFromPgtype(verifiedAt)
	res.Price = pgconv.DecimalFromNumeric(price)
	res.PriceAccepted = pgconv.DecimalFromNumeric(priceAccepted)
	res.NettoPrice = pgconv.DecimalFromNumeric(netto)
	res.NettoPriceAccepted = pgconv.DecimalFromNumeric(nettoAccepted)
	res.Tax = pgconv.DecimalFromNumeric(tax)
	res.Fees = pgconv.DecimalFromNumeric(fees)
	res.GuestContactID = pgconv.OptFromInt8(guestContactID)
	res.OpportunityID = pgconv.OptFromInt8(opportunityID)
	res.QuotationID = pgconv.OptFromInt8(quotationID)
	return &res, nil
}

// ScanRoom returns the room with the id of its reservation.
func ScanRoom(row pgx.Row) (int64, reservation.Room, error) {
	var room reservation.Room
	var reservationID int64
	var ratePlanID, ratePlanIDOriginal, rateID pgtype.Int8
	var policy, policyOriginal []byte
	var checkIn, checkOut, checkInOrig, checkOutOrig pgtype.Date
	var price, priceAccepted, netto, nettoAccepted pgtype.Numeric
	var tax, fees pgtype.Numeric
	var deletedAt pgtype.Timestamptz
	err := row.Scan(
		&room.ID, &reservationID, &room.ExternalID, &room.ExternalName, &room.ChannelID,
		&room.ChannelRateID, &room.ChannelRateIDChanged, &ratePlanID, &ratePlanIDOriginal, &rateID,
		&policy, &policyOriginal, &checkIn, &checkOut, &checkInOrig, &checkOutOrig,
		&room.GuestName, &room.GuestCount, &room.Adults, &room.Children, &room.MaxChildren, &room.ExtraBed, &room.WithBreakfast,
		&room.Currency, &price, &priceAccepted, &netto, &nettoAccepted, &tax, &fees,
		&room.Notes.Extra, &room.Notes.Facilities, &room.Notes.Info, &room.Notes.Meal, &room.IsDeleted, &deletedAt,
	)
	if err != nil {
		return 0, reservation.Room{}, err
	}

	if room.Policy, err = decodePolicy(policy); err != nil {
		return 0, reservation.Room{}, err
	}
	if room.PolicyOriginal, err = decodePolicy(policyOriginal); err != nil {
		return 0, reservation.Room{}, err
	}
	room.RatePlanID = pgconv.OptFromInt8(ratePlanID)
	room.RatePlanIDOriginal = pgconv.OptFromInt8(ratePlanIDOriginal)
	room.RateID = pgconv.OptFromInt8(rateID)
	room.CheckIn = pgconv.DateFromPgtype(checkIn)
	room.CheckOut = pgconv.DateFromPgtype(checkOut)
	room.CheckInOriginal = pgconv.DateFromPgtype(checkInOrig)
	room.CheckOutOriginal = pgconv.DateFromPgtype(checkOutOrig)
	room.Price = pgconv.DecimalFromNumeric(price)
	room.PriceAccepted = pgconv.DecimalFromNumeric(priceAccepted)
	room.NettoPrice = pgconv.DecimalFromNumeric(netto)
	room.NettoPriceAccepted = pgconv.DecimalFromNumeric(nettoAccepted)
	room.Tax = pgconv.DecimalFromNumeric(tax)
	room.Fees = pgconv.DecimalFromNumeric(fees)
	room.DeletedAt = pgconv.TimePtrFromPgtype(deletedAt)
	return reservationID, room, nil
}

// ScanDay returns the day with the id of its reservation room.
func ScanDay(row pgx.Row) (int64, reservation.Day, error) {
	var day reservation.Day
	var roomID int64
	var date pgtype.Date
	var original, changed, accepted, tax pgtype.Numeric
	var assignedRoomID, roomTypeID pgtype.Int8
	err := row.Scan(
		&day.ID, &roomID, &date, &original, &changed, &accepted,
		&tax, &day.Currency, &assignedRoomID, &roomTypeID,
	)
	if err != nil {
		return 0, reservation.Day{}, err
	}

	day.Day = pgconv.DateFromPgtype(date)
	day.PriceOriginal = pgconv.DecimalFromNumeric(original)
	day.PriceChanged = pgconv.DecimalFromNumeric(changed)
	day.PriceAccepted = pgconv.DecimalFromNumeric(accepted)
	day.Tax = pgconv.DecimalFromNumeric(tax)
	day.RoomID = pgconv.OptFromInt8(assignedRoomID)
	day.RoomTypeID = pgconv.OptFromInt8(roomTypeID)
	return roomID, day, nil
}

// jsonb columns store an object, never null
func encodePolicy(p reservation.Policy) (string, error) {
	if p == nil {
		return "{}", nil
	}
	return jsoniter.ConfigFastest.MarshalToString(p)
}

func decodePolicy(raw []byte) (reservation.Policy, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var p reservation.Policy
	if err := jsoniter.ConfigFastest.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	if len(p) == 0 {
		return nil, nil
	}
	return p, nil
}
