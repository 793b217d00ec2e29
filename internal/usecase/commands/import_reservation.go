package commands

import (
	"context"
	"fmt"
	"time"

	"hotel-board/internal/domain/reservation"
	"hotel-board/internal/infra"
	"hotel-board/internal/pkg/dates"
	"hotel-board/internal/usecase/readmodel"
	"hotel-board/internal/usecase/shared"

	"github.com/google/uuid"
)

type ImportResult struct {
	Reservation *reservation.Reservation
	Changed     bool
}

// ImportReservation folds a channel snapshot into the stored reservation and
// persists it when anything changed.
func (uc *reservationUseCaseImpl) ImportReservation(ctx context.Context, snapshot reservation.ExternalReservation) (*ImportResult, error) {
	h, err := shared.SelectHouse(ctx, uc.houses, snapshot.HouseID)
	if err != nil {
		return nil, err
	}
	if err := validateSnapshot(h.ID, snapshot); err != nil {
		return nil, err
	}

	var result ImportResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, err := tx.Reservations().FindByChannel(ctx, h.ID, snapshot.Source, snapshot.ChannelID)
		if err != nil && !infra.IsKind(err, infra.KindNotFound) {
			return shared.NewCaseError(shared.KindError, h.ID, 0,
				fmt.Sprintf("select reservation %s/%s", snapshot.Source, snapshot.ChannelID), err)
		}

		res, deletions, changed := mergeSnapshot(existing, snapshot)
		result = ImportResult{Reservation: res, Changed: changed}
		if !changed {
			return nil
		}
		if err := res.Validate(); err != nil {
			return shared.NewCaseError(shared.KindWrongPeriod, h.ID, res.ID,
				fmt.Sprintf("reservation %s: %s", res.DisplayID(), err.Error()), nil)
		}

		saved, err := tx.Reservations().Save(ctx, res, shared.SaveOptions{Deletions: deletions})
		if err != nil {
			return shared.SaveError(err, h.ID, res.ID, fmt.Sprintf("save reservation %s", res.DisplayID()))
		}
		result.Reservation = saved
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Changed {
		uc.record(ctx, result.Reservation, readmodel.ActionImport, uuid.Nil)
	}
	return &result, nil
}

// mergeSnapshot applies a snapshot to the stored reservation. A cancellation of
// a known booking only touches its status and verification.
func mergeSnapshot(existing *reservation.Reservation, snapshot reservation.ExternalReservation) (*reservation.Reservation, reservation.Deletions, bool) {
	if existing != nil && snapshot.Status == reservation.StatusCancel {
		res := existing.Clone()
		if !res.Cancel() {
			return res, reservation.Deletions{}, false
		}
		res.Unverify()
		return res, reservation.Deletions{}, true
	}

	merged, changed := reservation.Merge(existing, snapshot)
	if changed && !merged.Reservation.IsNew() {
		merged.Reservation.Unverify()
	}
	return merged.Reservation, merged.Deletions, changed
}

func validateSnapshot(houseID int64, s reservation.ExternalReservation) error {
	if !s.Source.IsOTA() || !s.Source.IsValid() {
		return shared.NewCaseError(shared.KindError, houseID, 0, fmt.Sprintf("unexpected snapshot source %q", s.Source), nil)
	}
	if s.ChannelID == "" {
		return shared.NewCaseError(shared.KindError, houseID, 0, "snapshot without channel id", nil)
	}
	if !s.Status.IsValid() {
		return shared.NewCaseError(shared.KindError, houseID, 0, fmt.Sprintf("unexpected snapshot status %q", s.Status), nil)
	}
	if !dates.Date(s.CheckOut).After(dates.Date(s.CheckIn)) {
		return shared.NewCaseError(shared.KindWrongPeriod, houseID, 0,
			fmt.Sprintf("wrong period %s - %s", dates.Format(s.CheckIn), dates.Format(s.CheckOut)), nil)
	}
	for _, room := range s.Rooms {
		if err := validateSnapshotRoom(room); err != nil {
			return shared.NewCaseError(shared.KindWrongPeriod, houseID, 0,
				fmt.Sprintf("room %s: %s", room.ExternalID, err.Error()), nil)
		}
	}
	return nil
}

// validateSnapshotRoom checks that a room lists each night of its stay once.
func validateSnapshotRoom(room reservation.ExternalRoom) error {
	checkIn, checkOut := dates.Date(room.CheckIn), dates.Date(room.CheckOut)
	if !checkOut.After(checkIn) {
		return reservation.ErrInvalidPeriod
	}
	seen := make(map[time.Time]struct{}, len(room.Days))
	for _, d := range room.Days {
		key := dates.Date(d.Day)
		if _, ok := seen[key]; ok {
			return reservation.ErrDuplicateDay
		}
		if key.Before(checkIn) || !key.Before(checkOut) {
			return reservation.ErrDayOutsideRoomPeriod
		}
		seen[key] = struct{}{}
	}
	if len(room.Days) > 0 && len(room.Days) != dates.Between(checkIn, checkOut) {
		return reservation.ErrNightsMismatch
	}
	return nil
}
