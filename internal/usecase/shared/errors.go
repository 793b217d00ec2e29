package shared

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"hotel-board/internal/infra"
	"hotel-board/internal/pkg/errs"
)

// ErrorKind is the closed set of use case failures.
type ErrorKind string

const (
	KindMissedHouse          ErrorKind = "missed_house"
	KindMissedRoomType       ErrorKind = "missed_roomtype"
	KindMissedRatePlan       ErrorKind = "missed_rateplan"
	KindMissedRate           ErrorKind = "missed_rate"
	KindMissedReservation    ErrorKind = "missed_reservation"
	KindMissedRoom           ErrorKind = "missed_room"
	KindMissedGuest          ErrorKind = "missed_guest"
	KindMissedUser           ErrorKind = "missed_user"
	KindBusyRoom             ErrorKind = "busy_room"
	KindWrongPeriod          ErrorKind = "wrong_period"
	KindSave                 ErrorKind = "save"
	KindError                ErrorKind = "error"
	KindRoomCloseReservation ErrorKind = "room_close_reservation"
	KindConflict             ErrorKind = "conflict"
)

func (k ErrorKind) String() string {
	return string(k)
}

// IsRetryable reports whether running the whole use case again may succeed.
func (k ErrorKind) IsRetryable() bool {
	switch k {
	case KindError, KindSave, KindConflict:
		return true
	default:
		return false
	}
}

type CaseError struct {
	Kind     ErrorKind
	HouseID  int64
	EntityID int64
	Message  string
	cause    error
}

func NewCaseError(kind ErrorKind, houseID, entityID int64, msg string, cause error) *CaseError {
	if cause != nil {
		cause = errs.Wrap(cause, msg)
	}
	return &CaseError{Kind: kind, HouseID: houseID, EntityID: entityID, Message: msg, cause: cause}
}

func (e *CaseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.cause.Error())
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *CaseError) Unwrap() error {
	return e.cause
}

// KindOf extracts the case kind; anything that is not a *CaseError is KindError.
func KindOf(err error) ErrorKind {
	var ce *CaseError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return KindError
}

func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}

// repoError maps a repository failure onto a case kind. Not found becomes
// notFound, a version mismatch becomes KindConflict, anything else fallback.
func repoError(err error, notFound, fallback ErrorKind, houseID, entityID int64, msg string) *CaseError {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return NewCaseError(notFound, houseID, entityID, msg, nil)
	case infra.IsKind(err, infra.KindConflict):
		return NewCaseError(KindConflict, houseID, entityID, msg, err)
	default:
		return NewCaseError(fallback, houseID, entityID, msg, err)
	}
}

// SaveError maps a failed save.
func SaveError(err error, houseID, entityID int64, msg string) *CaseError {
	return repoError(err, KindSave, KindSave, houseID, entityID, msg)
}

// LogCaseError logs a failed use case. A room-close short circuit is expected
// and only logged at debug.
func LogCaseError(ctx context.Context, logger *slog.Logger, useCase string, err error) {
	if err == nil {
		return
	}
	var ce *CaseError
	if !errors.As(err, &ce) {
		logger.ErrorContext(ctx, "use case failed", slog.String("use_case", useCase), slog.String("error", err.Error()))
		return
	}

	level := slog.LevelWarn
	if ce.Kind == KindRoomCloseReservation {
		level = slog.LevelDebug
	}
	logger.Log(ctx, level, "use case failed",
		slog.String("use_case", useCase),
		slog.String("kind", ce.Kind.String()),
		slog.Int64("house_id", ce.HouseID),
		slog.Int64("entity_id", ce.EntityID),
		slog.String("error", ce.Error()),
	)
}
