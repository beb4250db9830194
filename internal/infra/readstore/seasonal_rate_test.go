//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"loft-booking/internal/infra"
	"loft-booking/internal/infra/readstore"
	sqlc "loft-booking/internal/infra/sqlc/generated"
	"loft-booking/internal/pkg/pgconv"
	readstoremock "loft-booking/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSeasonalRateReadStore(t *testing.T) {
	ctx := context.Background()
	loftID := uuid.New()
	row := sqlc.SeasonalRates{
		ID:                uuid.New(),
		LoftID:            loftID,
		CheckIn:           pgconv.DateToPgtype(day("2030-07-01")),
		CheckOut:          pgconv.DateToPgtype(day("2030-09-01")),
		NightlyPriceCents: 18000,
		Label:             "summer",
		CreatedAt:         pgconv.TimeToPgtype(day("2030-01-01")),
	}

	t.Run("FindByLoft: success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockSeasonalRateReadQueries(ctrl)
		store := readstore.NewSeasonalRateReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().GetSeasonalRatesByLoft(ctx, gomock.Any(), loftID).Return([]sqlc.SeasonalRates{row}, nil)

		got, err := store.FindByLoft(ctx, loftID)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, row.ID, got[0].ID)
		assert.Equal(t, day("2030-07-01"), got[0].CheckIn)
		assert.Equal(t, int64(18000), got[0].NightlyPriceCents)
		assert.Equal(t, "summer", got[0].Label)
	})

	t.Run("FindByLoft: DB障害", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockSeasonalRateReadQueries(ctrl)
		store := readstore.NewSeasonalRateReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().GetSeasonalRatesByLoft(ctx, gomock.Any(), loftID).Return(nil, errDBConnectionLost)

		_, err := store.FindByLoft(ctx, loftID)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("FindByID: not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockSeasonalRateReadQueries(ctrl)
		store := readstore.NewSeasonalRateReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().GetSeasonalRateByID(ctx, gomock.Any(), row.ID).Return(sqlc.SeasonalRates{}, pgx.ErrNoRows)

		got, err := store.FindByID(ctx, row.ID)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.Nil(t, got)
	})

	t.Run("FindByID: success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockSeasonalRateReadQueries(ctrl)
		store := readstore.NewSeasonalRateReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().GetSeasonalRateByID(ctx, gomock.Any(), row.ID).Return(row, nil)

		got, err := store.FindByID(ctx, row.ID)
		require.NoError(t, err)
		assert.Equal(t, loftID, got.LoftID)
	})
}
