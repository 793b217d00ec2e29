package response

import (
	"time"

	"hotel-board/internal/pkg/dates"
	"hotel-board/internal/pkg/opt"

	"github.com/jinzhu/copier"
)

// Date is a calendar day rendered as YYYY-MM-DD.
type Date string

// No deep copy: decimal values only survive a plain assignment.
var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: time.Time{},
			DstType: Date(""),
			Fn: func(src any) (any, error) {
				return Date(dates.Format(src.(time.Time))), nil
			},
		},
		{
			SrcType: opt.Option[int64]{},
			DstType: new(int64),
			Fn: func(src any) (any, error) {
				return src.(opt.Option[int64]).Ptr(), nil
			},
		},
	},
}

func copyInto(to, from any) error {
	return copier.CopyWithOption(to, from, copyOption)
}
