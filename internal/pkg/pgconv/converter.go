package pgconv

import (
	"database/sql"
	"errors"
	"time"

	"hotel-board/internal/pkg/opt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

func UUIDPtrFromPgtype(pu pgtype.UUID) *uuid.UUID {
	if !pu.Valid {
		return nil
	}
	id := uuid.UUID(pu.Bytes)
	return &id
}

func UUIDPtrToPgtype(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{Valid: false}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: !t.IsZero()}
}

func TimePtrToPgtype(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{Valid: false}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}

func TimePtrFromPgtype(pt pgtype.Timestamptz) *time.Time {
	if !pt.Valid {
		return nil
	}
	t := pt.Time
	return &t
}

func DateToPgtype(t time.Time) pgtype.Date {
	if t.IsZero() {
		return pgtype.Date{Valid: false}
	}
	y, m, d := t.Date()
	return pgtype.Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), Valid: true}
}

func DateFromPgtype(pd pgtype.Date) time.Time {
	if !pd.Valid {
		return time.Time{}
	}
	y, m, d := pd.Time.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func NumericFromDecimal(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}

func NumericFromOptDecimal(o opt.Option[decimal.Decimal]) pgtype.Numeric {
	d, ok := o.Get()
	if !ok {
		return pgtype.Numeric{Valid: false}
	}
	return NumericFromDecimal(d)
}

// DecimalFromNumeric maps NULL to zero.
func DecimalFromNumeric(pn pgtype.Numeric) decimal.Decimal {
	if !pn.Valid || pn.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(pn.Int, pn.Exp)
}

func OptDecimalFromNumeric(pn pgtype.Numeric) opt.Option[decimal.Decimal] {
	if !pn.Valid || pn.Int == nil {
		return opt.None[decimal.Decimal]()
	}
	return opt.Some(decimal.NewFromBigInt(pn.Int, pn.Exp))
}

func Int8FromOpt(o opt.Option[int64]) pgtype.Int8 {
	v, ok := o.Get()
	return pgtype.Int8{Int64: v, Valid: ok}
}

func OptFromInt8(pi pgtype.Int8) opt.Option[int64] {
	if !pi.Valid {
		return opt.None[int64]()
	}
	return opt.Some(pi.Int64)
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
