//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"loft-booking/internal/infra/repository/converter"
	sqlc "loft-booking/internal/infra/sqlc/generated"
	"loft-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreateTestLoft inserts the builder's loft and returns the id assigned by the database.
func CreateTestLoft(t *testing.T, db sqlc.DBTX, b *builder.LoftBuilder) uuid.UUID {
	t.Helper()
	id, err := sqlc.New().CreateLoft(context.Background(), db, b.BuildCreateParams())
	require.NoError(t, err)
	return id
}

// CreateTestBooking inserts a booking with the builder's id and status, bypassing availability checks.
func CreateTestBooking(t *testing.T, db sqlc.DBTX, b *builder.BookingBuilder) uuid.UUID {
	t.Helper()
	id, err := sqlc.New().CreateBooking(context.Background(), db, converter.BookingToInfra(b.BuildCommandsDomain()))
	require.NoError(t, err)
	return id
}

func CreateTestSeasonalRate(t *testing.T, db sqlc.DBTX, b *builder.SeasonalRateBuilder) uuid.UUID {
	t.Helper()
	id, err := sqlc.New().CreateSeasonalRate(context.Background(), db, converter.SeasonalRateToInfra(b.BuildDomain()))
	require.NoError(t, err)
	return id
}

func CountBookings(t *testing.T, db DBLike, loftID uuid.UUID) int {
	t.Helper()
	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM bookings WHERE loft_id = $1", loftID).Scan(&n)
	require.NoError(t, err)
	return n
}

// every table in migrations/
const truncateSQL = "TRUNCATE bookings, seasonal_rates, lofts CASCADE"

// ResetDB empties every table between subtests.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := pool.Exec(ctx, truncateSQL)
	return err
}
