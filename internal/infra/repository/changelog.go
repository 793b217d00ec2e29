package repository

import (
	"context"
	"log/slog"

	"hotel-board/internal/infra"
	"hotel-board/internal/infra/db"
	"hotel-board/internal/pkg/pgconv"
	"hotel-board/internal/usecase/readmodel"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

type ChangelogRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewChangelogRepository(dbtx db.DBTX, logger *slog.Logger) *ChangelogRepository {
	return &ChangelogRepository{
		db:     dbtx,
		logger: logger,
	}
}

func (r *ChangelogRepository) Record(ctx context.Context, entry readmodel.ChangelogEntry) error {
	var staffID *uuid.UUID
	if entry.StaffID != uuid.Nil {
		staffID = &entry.StaffID
	}

	ds := insertInto("changelog").Rows(goqu.Record{
		"house_id":       entry.HouseID,
		"reservation_id": entry.ReservationID,
		"action":         string(entry.Action),
		"staff_id":       pgconv.UUIDPtrToPgtype(staffID),
		"message":        entry.Message,
		"created_at":     pgconv.TimeToPgtype(entry.CreatedAt),
	})
	if _, err := exec(ctx, r.db, ds); err != nil {
		return infra.WrapRepoErr(r.logger, infra.ClassifyErr(err), "failed to record changelog", err)
	}
	return nil
}
