//go:build unit

package queries_test

import (
	"context"
	"testing"

	"loft-booking/internal/usecase/queries"
	"loft-booking/internal/usecase/shared"
	"loft-booking/tests/common/builder"
	queriesmock "loft-booking/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLoftQueries(t *testing.T) {
	ctx := context.Background()
	maxStay := 14
	lb := builder.NewLoftBuilder().With(func(b *builder.LoftBuilder) { b.MaximumStay = &maxStay })

	t.Run("GetByID", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		catalog := queriesmock.NewMockCatalog(ctrl)
		catalog.EXPECT().Loft(ctx, lb.ID).Return(lb.BuildSnapshot(), nil)

		got, err := queries.NewLoftQueries(catalog).GetByID(ctx, lb.ID)
		require.NoError(t, err)
		if diff := cmp.Diff(lb.BuildViewQuery(), got); diff != "" {
			t.Errorf("LoftView mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("ListSeasonalRates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		catalog := queriesmock.NewMockCatalog(ctrl)
		rb := builder.NewSeasonalRateBuilder().With(func(b *builder.SeasonalRateBuilder) { b.LoftID = lb.ID })
		catalog.EXPECT().Loft(ctx, lb.ID).Return(lb.BuildSnapshot(), nil)
		catalog.EXPECT().SeasonalRates(ctx, lb.ID).Return([]*shared.SeasonalRateSnapshot{rb.BuildSnapshot()}, nil)

		got, err := queries.NewLoftQueries(catalog).ListSeasonalRates(ctx, lb.ID)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, &queries.SeasonalRateView{
			ID:                rb.ID,
			LoftID:            lb.ID,
			CheckIn:           "2030-07-01",
			CheckOut:          "2030-09-01",
			NightlyPriceCents: rb.NightlyPriceCents,
			Label:             rb.Label,
			CreatedAt:         rb.CreatedAt,
		}, got[0])
	})

	t.Run("ListSeasonalRates: 存在しないロフト", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		catalog := queriesmock.NewMockCatalog(ctrl)
		catalog.EXPECT().Loft(ctx, lb.ID).Return(nil, queries.ErrLoftNotFound)

		_, err := queries.NewLoftQueries(catalog).ListSeasonalRates(ctx, lb.ID)
		assert.ErrorIs(t, err, queries.ErrLoftNotFound)
	})
}
