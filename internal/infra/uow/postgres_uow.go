package uow

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"hotel-board/internal/infra/db"
	"hotel-board/internal/infra/repository"
	"hotel-board/internal/pkg/errs"
	"hotel-board/internal/pkg/retry"
	"hotel-board/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	maxRetries = 3
	baseDelay  = 100 * time.Millisecond
)

var (
	errTransactionBegin  = errs.New("failed to begin transaction")
	errTransactionCommit = errs.New("failed to commit transaction")
)

type PostgresUoW struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewPostgresUoW(pool *pgxpool.Pool, logger *slog.Logger) shared.UnitOfWork {
	return &PostgresUoW{
		pool:   pool,
		logger: logger,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes;
// lost updates are caught by the reservation version check.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	options := pgx.TxOptions{IsoLevel: pgx.ReadCommitted}

	return retry.Do(ctx, func(ctx context.Context, _ int) error {
		return u.runInTx(ctx, options, fn)
	},
		retry.WithMaxRetries(maxRetries),
		retry.WithBaseDelay(baseDelay),
		retry.WithRetryIf(isRetryableError),
		retry.WithOnRetry(func(attempt int, wait time.Duration, err error) {
			u.logger.WarnContext(ctx, "retrying transaction due to retryable error",
				"attempt", attempt,
				"wait_ms", wait.Milliseconds(),
				"error", err.Error())
		}),
	)
}

// one attempt; no defer so rollbacks do not pile up across retries
func (u *PostgresUoW) runInTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	tx := &pgTx{dbtx: pgxTx, logger: u.logger}

	err = fn(ctx, tx)
	if err == nil {
		if err = pgxTx.Commit(ctx); err == nil {
			return nil
		}
		err = errs.Mark(err, errTransactionCommit)
	}

	if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
		u.logger.WarnContext(ctx, "rollback failed", "error", rollbackErr.Error())
	}
	return err
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx   db.DBTX
	logger *slog.Logger

	// lazy
	reservationRepo shared.ReservationRepository
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.dbtx, t.logger)
	}
	return t.reservationRepo
}
