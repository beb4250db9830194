//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"loft-booking/internal/domain/booking"
	"loft-booking/internal/infra"
	"loft-booking/internal/infra/repository"
	sqlc "loft-booking/internal/infra/sqlc/generated"
	"loft-booking/internal/pkg/pgconv"
	"loft-booking/tests/common/builder"
	repositorymock "loft-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Booking Tests
// =============================================================================

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockBookingWriteQueries, *booking.Booking, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: booking created",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				mock.EXPECT().CreateBooking(ctx, tx, sqlc.CreateBookingParams{
					ID:         b.ID(),
					LoftID:     b.LoftID(),
					GuestID:    b.GuestID(),
					CheckIn:    pgconv.DateToPgtype(b.Stay().CheckIn()),
					CheckOut:   pgconv.DateToPgtype(b.Stay().CheckOut()),
					Status:     "pending",
					TotalCents: b.Total().Cents(),
					Currency:   string(b.Currency()),
				}).Return(b.ID(), nil)
			},
		},
		{
			name: "error: overlapping booking hits exclusion constraint",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				pgErr := &pgconn.PgError{Code: "23P01", ConstraintName: "bookings_no_overlap"}
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(uuid.Nil, pgErr)
			},
			expectedError: true,
			expectKind:    infra.KindConflict,
		},
		{
			name: "error: unknown loft",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				pgErr := &pgconn.PgError{Code: "23503"}
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(uuid.Nil, pgErr)
			},
			expectedError: true,
			expectKind:    infra.KindForeignKeyViolated,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(uuid.Nil, errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries)

			b, err := builder.NewBookingBuilder().BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, b, mockDB)

			id, err := repo.Create(ctx, mockDB, b)
			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Equal(t, uuid.Nil, id)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, b.ID(), id)
		})
	}
}

// =============================================================================
// Update Booking Status Tests
// =============================================================================

func TestBookingRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2030, 5, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		affected      int64
		queryErr      error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{name: "success: status updated", affected: 1},
		{name: "error: booking disappeared", affected: 0, expectedError: true, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", queryErr: errors.New("boom"), expectedError: true, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries)

			b, err := builder.NewBookingBuilder().BuildDomain()
			require.NoError(t, err)
			require.NoError(t, b.TransitionTo(booking.StatusConfirmed, now))

			mockQueries.EXPECT().UpdateBookingStatus(ctx, mockDB, sqlc.UpdateBookingStatusParams{
				ID:        b.ID(),
				Status:    "confirmed",
				UpdatedAt: pgconv.TimeToPgtype(now),
			}).Return(tc.affected, tc.queryErr)

			err = repo.UpdateStatus(ctx, mockDB, b)
			if tc.expectedError {
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
