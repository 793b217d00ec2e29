package tasks

import (
	"context"
	"log/slog"
	"time"

	"hotel-board/internal/domain/reservation"
	"hotel-board/internal/pkg/config"
	"hotel-board/internal/pkg/opt"
	"hotel-board/internal/pkg/retry"
	"hotel-board/internal/usecase/commands"
	"hotel-board/internal/usecase/shared"
)

//go:generate mockgen -source=runner.go -destination=../../../tests/mock/tasks/runner_mock.go -package=tasksmock

// Tasks is the queued side of the reservation use cases.
type Tasks interface {
	ImportReservation(ctx context.Context, snapshot reservation.ExternalReservation) (*commands.ImportResult, error)
	AcceptReservationChanges(ctx context.Context, req commands.AcceptReservationRequest) (*reservation.Reservation, error)
	Refresh(ctx context.Context, houseID, reservationID int64)
}

var _ Tasks = (*Runner)(nil)

// Runner executes use cases the way a task queue worker would: whole use cases
// are retried a bounded number of times for retryable failures, and calendar
// projections are refreshed after successful writes.
type Runner struct {
	reservations commands.ReservationCommands
	calendar     commands.CalendarCommands
	cfg          config.BoardConfig
	logger       *slog.Logger
}

func NewRunner(
	reservations commands.ReservationCommands,
	calendar commands.CalendarCommands,
	cfg config.BoardConfig,
	logger *slog.Logger,
) *Runner {
	return &Runner{
		reservations: reservations,
		calendar:     calendar,
		cfg:          cfg,
		logger:       logger,
	}
}

// Run executes fn with retries. A room-close short circuit is not a failure and
// yields a nil error.
func (r *Runner) Run(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	err := retry.Do(ctx,
		func(ctx context.Context, _ int) error { return fn(ctx) },
		retry.WithMaxRetries(r.cfg.TaskMaxRetries),
		retry.WithBaseDelay(r.cfg.TaskRetryDelay),
		retry.WithRetryIf(func(err error) bool { return shared.KindOf(err).IsRetryable() }),
		retry.WithOnRetry(func(attempt int, wait time.Duration, err error) {
			r.logger.WarnContext(ctx, "retrying task",
				slog.String("task", name),
				slog.Int("attempt", attempt),
				slog.Int64("wait_ms", wait.Milliseconds()),
				slog.String("error", err.Error()))
		}),
	)
	if err == nil {
		return nil
	}
	shared.LogCaseError(ctx, r.logger, name, err)
	if shared.IsKind(err, shared.KindRoomCloseReservation) {
		return nil
	}
	return err
}

func (r *Runner) ImportReservation(ctx context.Context, snapshot reservation.ExternalReservation) (*commands.ImportResult, error) {
	var result *commands.ImportResult
	err := r.Run(ctx, "import_reservation", func(ctx context.Context) error {
		var err error
		result, err = r.reservations.ImportReservation(ctx, snapshot)
		return err
	})
	if err != nil {
		return nil, err
	}
	if result.Changed {
		r.Refresh(ctx, result.Reservation.HouseID, result.Reservation.ID)
	}
	return result, nil
}

// AcceptReservationChanges returns a nil reservation when the target turned out
// to be a room close.
func (r *Runner) AcceptReservationChanges(ctx context.Context, req commands.AcceptReservationRequest) (*reservation.Reservation, error) {
	var result *reservation.Reservation
	err := r.Run(ctx, "accept_reservation", func(ctx context.Context) error {
		var err error
		result, err = r.reservations.AcceptReservationChanges(ctx, req)
		return err
	})
	if err != nil || result == nil {
		return result, err
	}
	r.Refresh(ctx, result.HouseID, result.ID)
	return result, nil
}

// Refresh recalculates occupancy and the calendar entries of one reservation.
// Failures are logged; the write that triggered the refresh already succeeded.
func (r *Runner) Refresh(ctx context.Context, houseID, reservationID int64) {
	if !r.cfg.RefreshCacheAfterSave {
		return
	}
	_ = r.Run(ctx, "calculate_occupancy", func(ctx context.Context) error {
		return r.calendar.CalculateOccupancy(ctx, commands.CalculateOccupancyRequest{HouseID: houseID})
	})
	_ = r.Run(ctx, "update_reservation_cache", func(ctx context.Context) error {
		return r.calendar.UpdateReservationCache(ctx, commands.UpdateReservationCacheRequest{
			HouseID:       houseID,
			ReservationID: opt.Some(reservationID),
		})
	})
}

// Warmup recalculates occupancy of every house, used on startup so prices do
// not fall back to uncached nights.
func (r *Runner) Warmup(ctx context.Context) error {
	return r.Run(ctx, "calculate_occupancy", func(ctx context.Context) error {
		return r.calendar.CalculateOccupancy(ctx, commands.CalculateOccupancyRequest{})
	})
}
