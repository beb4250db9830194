package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"loft-booking/internal/domain/stay"
	"loft-booking/internal/infra/readstore"
	"loft-booking/internal/infra/repository"
	sqlc "loft-booking/internal/infra/sqlc/generated"
	"loft-booking/internal/pkg/errs"
	"loft-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin  = errs.New("failed to begin transaction")
	errTransactionCommit = errs.New("failed to commit transaction")
)

// retryPolicy bounds how often a transaction that lost a serialization race is replayed.
type retryPolicy struct {
	maxRetries int
	base       time.Duration
}

var defaultRetryPolicy = retryPolicy{maxRetries: 3, base: 100 * time.Millisecond}

// backoff doubles per attempt with up to 20% jitter.
func (p retryPolicy) backoff(attempt int) time.Duration {
	wait := time.Duration(1<<attempt) * p.base
	if jitter := int64(wait / 5); jitter > 0 {
		wait += time.Duration(rand.Int64N(jitter))
	}
	return wait
}

func (p retryPolicy) shouldRetry(err error, attempt int) bool {
	return isRetryableError(err) && attempt < p.maxRetries
}

type PostgresUoW struct {
	pool  *pgxpool.Pool
	q     *sqlc.Queries
	retry retryPolicy
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{pool: pool, q: q, retry: defaultRetryPolicy}
}

// Within runs fn in a serializable transaction so the availability re-check and the insert see one snapshot.
// fn may run more than once.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	opts := pgx.TxOptions{IsoLevel: pgx.Serializable}

	for attempt := 0; ; attempt++ {
		err := u.attempt(ctx, opts, fn)
		if err == nil {
			return nil
		}
		if !u.retry.shouldRetry(err, attempt) {
			if isRetryableError(err) {
				slog.Error("booking transaction kept conflicting", "attempts", attempt+1, "error", err.Error())
				return errs.Mark(err, shared.ErrTxRetriesExhausted)
			}
			return err
		}

		wait := u.retry.backoff(attempt)
		slog.Warn("retrying serializable transaction",
			"attempt", attempt+1,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// attempt owns one pgx transaction; no defer so retries never stack rollbacks.
func (u *PostgresUoW) attempt(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, opts)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	err = fn(ctx, &pgTx{dbtx: pgxTx, q: u.q})
	if err == nil {
		if err = pgxTx.Commit(ctx); err == nil {
			return nil
		}
		err = errs.Mark(err, errTransactionCommit)
	}

	if rbErr := pgxTx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
		slog.Warn("rollback failed", "error", rbErr.Error())
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
	dbtx sqlc.DBTX
	q    *sqlc.Queries

	bookingRepo      shared.BookingRepository
	seasonalRateRepo shared.SeasonalRateRepository
	reads            *txReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.q)
	}
	return t.bookingRepo
}

func (t *pgTx) SeasonalRates() shared.SeasonalRateRepository {
	if t.seasonalRateRepo == nil {
		t.seasonalRateRepo = repository.NewSeasonalRateRepository(t.q)
	}
	return t.seasonalRateRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.reads == nil {
		t.reads = &txReads{
			lofts:    readstore.NewLoftReadStore(t.q, t.dbtx),
			bookings: readstore.NewBookingReadStore(t.q, t.dbtx),
			rates:    readstore.NewSeasonalRateReadStore(t.q, t.dbtx),
		}
	}
	return t.reads
}

// txReads serves command-side reads from the readstores bound to the open transaction.
type txReads struct {
	lofts    *readstore.LoftReadStore
	bookings *readstore.BookingReadStore
	rates    *readstore.SeasonalRateReadStore
}

func (r *txReads) LoftByID(ctx context.Context, id uuid.UUID) (*shared.LoftSnapshot, error) {
	return r.lofts.FindByID(ctx, id)
}

func (r *txReads) BlockingOccupancies(ctx context.Context, loftID uuid.UUID, period stay.DateRange) ([]*shared.OccupancySnapshot, error) {
	return r.bookings.FindBlocking(ctx, loftID, period)
}

func (r *txReads) SeasonalRatesByLoft(ctx context.Context, loftID uuid.UUID) ([]*shared.SeasonalRateSnapshot, error) {
	return r.rates.FindByLoft(ctx, loftID)
}

func (r *txReads) SeasonalRateByID(ctx context.Context, id uuid.UUID) (*shared.SeasonalRateSnapshot, error) {
	return r.rates.FindByID(ctx, id)
}

func (r *txReads) BookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	return r.bookings.FindByID(ctx, id)
}
