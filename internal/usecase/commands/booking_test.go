//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"loft-booking/internal/domain/availability"
	"loft-booking/internal/domain/booking"
	"loft-booking/internal/domain/pricing"
	"loft-booking/internal/domain/user"
	"loft-booking/internal/infra"
	sqlc "loft-booking/internal/infra/sqlc/generated"
	"loft-booking/internal/pkg/errs"
	"loft-booking/internal/pkg/metrics"
	"loft-booking/internal/usecase/commands"
	"loft-booking/internal/usecase/shared"
	"loft-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newBookingUseCase(t *testing.T, f *uowFixture, m *metrics.Collector) commands.BookingCommands {
	calc, err := pricing.NewDefaultCalculator(pricing.DefaultServiceFeePercent)
	require.NoError(t, err)
	return commands.NewBookingUseCase(f.uow, calc, f.clock, m)
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()
	loft := builder.NewLoftBuilder().BuildSnapshot()
	guest := user.NewActor(uuid.New(), user.RoleClient)
	req := commands.CreateBookingRequest{LoftID: loft.ID, CheckIn: "2030-06-03", CheckOut: "2030-06-06"}

	t.Run("空いていれば保留中で作成し合計を保存", func(t *testing.T) {
		f := newUoWFixture(t)
		m := metrics.NewCollector()
		uc := newBookingUseCase(t, f, m)

		f.reads.EXPECT().LoftByID(ctx, loft.ID).Return(loft, nil)
		f.reads.EXPECT().BlockingOccupancies(ctx, loft.ID, gomock.Any()).Return(nil, nil)
		f.reads.EXPECT().SeasonalRatesByLoft(ctx, loft.ID).Return(nil, nil)
		f.bookings.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, b *booking.Booking) (uuid.UUID, error) {
				assert.Equal(t, booking.StatusPending, b.Status())
				assert.Equal(t, int64(38500), b.Total().Cents())
				assert.Equal(t, guest.ID, b.GuestID())
				assert.Equal(t, now, b.CreatedAt())
				return b.ID(), nil
			})

		got, err := uc.CreateBooking(ctx, req, guest)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, got.BookingID)
		assert.Equal(t, booking.StatusPending, got.Status)
		assert.Equal(t, int64(38500), got.Pricing.TotalCents)
		count, err := testutil.GatherAndCount(m.Registry(), "loft_booking_bookings_total")
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("制約違反はUnavailableErrorで理由を返す", func(t *testing.T) {
		f := newUoWFixture(t)
		uc := newBookingUseCase(t, f, nil)

		f.reads.EXPECT().LoftByID(ctx, loft.ID).Return(loft, nil)
		f.reads.EXPECT().BlockingOccupancies(ctx, loft.ID, gomock.Any()).
			Return([]*shared.OccupancySnapshot{{BookingID: uuid.New(), CheckIn: day("2030-06-01"), CheckOut: day("2030-06-04"), Status: "confirmed"}}, nil)

		_, err := uc.CreateBooking(ctx, req, guest)
		require.ErrorIs(t, err, commands.ErrBookingUnavailable)
		var unavailable *commands.UnavailableError
		require.True(t, errors.As(err, &unavailable))
		require.Len(t, unavailable.Restrictions, 1)
		assert.Equal(t, availability.KindBookingConflict, unavailable.Restrictions[0].Kind)
	})

	t.Run("排他制約違反は競合", func(t *testing.T) {
		f := newUoWFixture(t)
		uc := newBookingUseCase(t, f, nil)

		f.reads.EXPECT().LoftByID(ctx, loft.ID).Return(loft, nil)
		f.reads.EXPECT().BlockingOccupancies(ctx, loft.ID, gomock.Any()).Return(nil, nil)
		f.reads.EXPECT().SeasonalRatesByLoft(ctx, loft.ID).Return(nil, nil)
		f.bookings.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("failed to create booking", &pgconn.PgError{Code: "23P01"}))

		_, err := uc.CreateBooking(ctx, req, guest)
		assert.ErrorIs(t, err, commands.ErrBookingConflict)
	})

	t.Run("リトライ上限は競合", func(t *testing.T) {
		f := newUoWFixture(t)
		uc := newBookingUseCase(t, f, nil)

		f.reads.EXPECT().LoftByID(ctx, loft.ID).
			Return(nil, errs.Mark(&pgconn.PgError{Code: "40001"}, shared.ErrTxRetriesExhausted))

		_, err := uc.CreateBooking(ctx, req, guest)
		assert.ErrorIs(t, err, commands.ErrBookingConflict)
	})

	t.Run("存在しないロフト", func(t *testing.T) {
		f := newUoWFixture(t)
		uc := newBookingUseCase(t, f, nil)

		f.reads.EXPECT().LoftByID(ctx, loft.ID).Return(nil, infra.WrapRepoErr("loft not found", pgx.ErrNoRows, infra.KindNotFound))

		_, err := uc.CreateBooking(ctx, req, guest)
		assert.ErrorIs(t, err, commands.ErrLoftNotFound)
	})

	t.Run("過去日はトランザクション前に拒否", func(t *testing.T) {
		f := newUoWFixture(t)
		uc := newBookingUseCase(t, f, nil)

		_, err := uc.CreateBooking(ctx, commands.CreateBookingRequest{LoftID: loft.ID, CheckIn: "2030-04-01", CheckOut: "2030-04-03"}, guest)
		assert.ErrorIs(t, err, errs.ErrInvalidDateRange)
	})
}

func TestUpdateBookingStatus(t *testing.T) {
	ctx := context.Background()
	bb := builder.NewBookingBuilder()
	guest := user.NewActor(bb.GuestID, user.RoleClient)
	owner := user.NewActor(bb.PartnerID, user.RolePartner)
	admin := user.NewActor(uuid.New(), user.RoleAdmin)

	testCases := []struct {
		name    string
		current string
		next    string
		actor   user.Actor
		wantErr error
	}{
		{name: "オーナーが確定", current: "pending", next: "confirmed", actor: owner},
		{name: "管理者が完了", current: "confirmed", next: "completed", actor: admin},
		{name: "ゲストがキャンセル", current: "confirmed", next: "cancelled", actor: guest},
		{name: "ゲストは確定できない", current: "pending", next: "confirmed", actor: guest, wantErr: commands.ErrForbidden},
		{name: "他のパートナーはキャンセル不可", current: "pending", next: "cancelled", actor: user.NewActor(uuid.New(), user.RolePartner), wantErr: commands.ErrForbidden},
		{name: "キャンセル済みは確定できない", current: "cancelled", next: "confirmed", actor: owner, wantErr: commands.ErrInvalidStatusTransition},
		{name: "保留中から完了は不可", current: "pending", next: "completed", actor: owner, wantErr: commands.ErrInvalidStatusTransition},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newUoWFixture(t)
			uc := newBookingUseCase(t, f, nil)
			snap := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
				*b = *bb
				b.Status = tc.current
			}).BuildSnapshot()

			f.reads.EXPECT().BookingByID(ctx, bb.ID).Return(snap, nil)
			if tc.wantErr == nil {
				f.bookings.EXPECT().UpdateStatus(ctx, gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, b *booking.Booking) error {
						assert.Equal(t, tc.next, b.Status().String())
						assert.Equal(t, now, b.UpdatedAt())
						return nil
					})
			}

			err := uc.UpdateBookingStatus(ctx, bb.ID, tc.next, tc.actor)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}

	t.Run("不明なステータス", func(t *testing.T) {
		f := newUoWFixture(t)
		uc := newBookingUseCase(t, f, nil)
		err := uc.UpdateBookingStatus(ctx, bb.ID, "archived", owner)
		assert.ErrorIs(t, err, booking.ErrInvalidStatus)
	})

	t.Run("存在しない予約", func(t *testing.T) {
		f := newUoWFixture(t)
		uc := newBookingUseCase(t, f, nil)
		f.reads.EXPECT().BookingByID(ctx, bb.ID).Return(nil, infra.WrapRepoErr("booking not found", pgx.ErrNoRows, infra.KindNotFound))

		err := uc.UpdateBookingStatus(ctx, bb.ID, "cancelled", guest)
		assert.ErrorIs(t, err, commands.ErrBookingNotFound)
	})
}
