//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"loft-booking/internal/domain/pricing"
	"loft-booking/internal/domain/user"
	"loft-booking/internal/infra"
	sqlc "loft-booking/internal/infra/sqlc/generated"
	"loft-booking/internal/pkg/errs"
	"loft-booking/internal/usecase/commands"
	"loft-booking/tests/common/builder"
	commandsmock "loft-booking/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateSeasonalRate(t *testing.T) {
	ctx := context.Background()
	loft := builder.NewLoftBuilder().BuildSnapshot()
	owner := user.NewActor(loft.PartnerID, user.RolePartner)
	req := builder.NewSeasonalRateBuilder().BuildCreateRequestDTO()
	cmdReq := commands.CreateSeasonalRateRequest{
		CheckIn:           req.CheckIn,
		CheckOut:          req.CheckOut,
		NightlyPriceCents: req.NightlyPriceCents,
		Label:             req.Label,
	}

	t.Run("オーナーは作成できキャッシュを破棄する", func(t *testing.T) {
		f := newUoWFixture(t)
		invalidator := commandsmock.NewMockRateCacheInvalidator(gomock.NewController(t))
		uc := commands.NewSeasonalRateUseCase(f.uow, invalidator)

		f.reads.EXPECT().LoftByID(ctx, loft.ID).Return(loft, nil)
		f.seasonalRate.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, r *pricing.SeasonalRate) (uuid.UUID, error) {
				assert.Equal(t, loft.ID, r.LoftID())
				assert.Equal(t, int64(15000), r.NightlyPrice().Cents())
				return r.ID(), nil
			})
		invalidator.EXPECT().InvalidateSeasonalRates(ctx, loft.ID).Return(nil).Times(2)

		id, err := uc.CreateSeasonalRate(ctx, loft.ID, cmdReq, owner)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
	})

	t.Run("キャッシュ破棄の失敗は無視", func(t *testing.T) {
		f := newUoWFixture(t)
		invalidator := commandsmock.NewMockRateCacheInvalidator(gomock.NewController(t))
		uc := commands.NewSeasonalRateUseCase(f.uow, invalidator)

		f.reads.EXPECT().LoftByID(ctx, loft.ID).Return(loft, nil)
		f.seasonalRate.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
		invalidator.EXPECT().InvalidateSeasonalRates(ctx, loft.ID).Return(errors.New("redis down")).Times(2)

		_, err := uc.CreateSeasonalRate(ctx, loft.ID, cmdReq, owner)
		assert.NoError(t, err)
	})

	t.Run("書き込みの前後でキャッシュを破棄する", func(t *testing.T) {
		f := newUoWFixture(t)
		invalidator := commandsmock.NewMockRateCacheInvalidator(gomock.NewController(t))
		uc := commands.NewSeasonalRateUseCase(f.uow, invalidator)

		f.reads.EXPECT().LoftByID(ctx, loft.ID).Return(loft, nil)
		gomock.InOrder(
			invalidator.EXPECT().InvalidateSeasonalRates(ctx, loft.ID).Return(nil),
			f.seasonalRate.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(uuid.New(), nil),
			invalidator.EXPECT().InvalidateSeasonalRates(ctx, loft.ID).Return(nil),
		)

		_, err := uc.CreateSeasonalRate(ctx, loft.ID, cmdReq, owner)
		require.NoError(t, err)
	})

	t.Run("期間重複", func(t *testing.T) {
		f := newUoWFixture(t)
		invalidator := commandsmock.NewMockRateCacheInvalidator(gomock.NewController(t))
		uc := commands.NewSeasonalRateUseCase(f.uow, invalidator)

		f.reads.EXPECT().LoftByID(ctx, loft.ID).Return(loft, nil)
		invalidator.EXPECT().InvalidateSeasonalRates(ctx, loft.ID).Return(nil).Times(1)
		f.seasonalRate.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("failed to create seasonal rate", &pgconn.PgError{Code: "23P01"}))

		_, err := uc.CreateSeasonalRate(ctx, loft.ID, cmdReq, owner)
		assert.ErrorIs(t, err, commands.ErrSeasonalRateOverlap)
	})

	t.Run("他人のロフトは禁止", func(t *testing.T) {
		f := newUoWFixture(t)
		uc := commands.NewSeasonalRateUseCase(f.uow, commandsmock.NewMockRateCacheInvalidator(gomock.NewController(t)))

		f.reads.EXPECT().LoftByID(ctx, loft.ID).Return(loft, nil)

		_, err := uc.CreateSeasonalRate(ctx, loft.ID, cmdReq, user.NewActor(uuid.New(), user.RolePartner))
		assert.ErrorIs(t, err, commands.ErrForbidden)
	})

	t.Run("入力検証", func(t *testing.T) {
		cases := []struct {
			name    string
			mutate  func(*commands.CreateSeasonalRateRequest)
			wantErr error
		}{
			{name: "料金0", mutate: func(r *commands.CreateSeasonalRateRequest) { r.NightlyPriceCents = 0 }, wantErr: pricing.ErrInvalidSeasonalPrice},
			{name: "逆順の期間", mutate: func(r *commands.CreateSeasonalRateRequest) { r.CheckIn, r.CheckOut = r.CheckOut, r.CheckIn }, wantErr: errs.ErrInvalidDateRange},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				f := newUoWFixture(t)
				uc := commands.NewSeasonalRateUseCase(f.uow, commandsmock.NewMockRateCacheInvalidator(gomock.NewController(t)))
				r := cmdReq
				tc.mutate(&r)
				_, err := uc.CreateSeasonalRate(ctx, loft.ID, r, owner)
				assert.ErrorIs(t, err, tc.wantErr)
			})
		}
	})
}

func TestDeleteSeasonalRate(t *testing.T) {
	ctx := context.Background()
	loft := builder.NewLoftBuilder().BuildSnapshot()
	admin := user.NewActor(uuid.New(), user.RoleAdmin)
	rate := builder.NewSeasonalRateBuilder().With(func(b *builder.SeasonalRateBuilder) { b.LoftID = loft.ID }).BuildSnapshot()

	t.Run("管理者は削除できる", func(t *testing.T) {
		f := newUoWFixture(t)
		invalidator := commandsmock.NewMockRateCacheInvalidator(gomock.NewController(t))
		uc := commands.NewSeasonalRateUseCase(f.uow, invalidator)

		f.reads.EXPECT().LoftByID(ctx, loft.ID).Return(loft, nil)
		f.reads.EXPECT().SeasonalRateByID(ctx, rate.ID).Return(rate, nil)
		gomock.InOrder(
			invalidator.EXPECT().InvalidateSeasonalRates(ctx, loft.ID).Return(nil),
			f.seasonalRate.EXPECT().Delete(ctx, gomock.Any(), rate.ID).Return(nil),
			invalidator.EXPECT().InvalidateSeasonalRates(ctx, loft.ID).Return(nil),
		)

		assert.NoError(t, uc.DeleteSeasonalRate(ctx, loft.ID, rate.ID, admin))
	})

	t.Run("別ロフトの料金は見つからない扱い", func(t *testing.T) {
		f := newUoWFixture(t)
		uc := commands.NewSeasonalRateUseCase(f.uow, commandsmock.NewMockRateCacheInvalidator(gomock.NewController(t)))

		other := *rate
		other.LoftID = uuid.New()
		f.reads.EXPECT().LoftByID(ctx, loft.ID).Return(loft, nil)
		f.reads.EXPECT().SeasonalRateByID(ctx, rate.ID).Return(&other, nil)

		err := uc.DeleteSeasonalRate(ctx, loft.ID, rate.ID, admin)
		assert.ErrorIs(t, err, commands.ErrSeasonalRateNotFound)
	})

	t.Run("存在しない料金", func(t *testing.T) {
		f := newUoWFixture(t)
		uc := commands.NewSeasonalRateUseCase(f.uow, commandsmock.NewMockRateCacheInvalidator(gomock.NewController(t)))

		f.reads.EXPECT().LoftByID(ctx, loft.ID).Return(loft, nil)
		f.reads.EXPECT().SeasonalRateByID(ctx, rate.ID).
			Return(nil, infra.WrapRepoErr("seasonal rate not found", pgx.ErrNoRows, infra.KindNotFound))

		err := uc.DeleteSeasonalRate(ctx, loft.ID, rate.ID, admin)
		assert.ErrorIs(t, err, commands.ErrSeasonalRateNotFound)
	})

	t.Run("クライアントは禁止", func(t *testing.T) {
		f := newUoWFixture(t)
		uc := commands.NewSeasonalRateUseCase(f.uow, commandsmock.NewMockRateCacheInvalidator(gomock.NewController(t)))

		f.reads.EXPECT().LoftByID(ctx, loft.ID).Return(loft, nil)

		err := uc.DeleteSeasonalRate(ctx, loft.ID, rate.ID, user.NewActor(uuid.New(), user.RoleClient))
		assert.ErrorIs(t, err, commands.ErrForbidden)
	})
}
