//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"loft-booking/internal/pkg/clock"
	"loft-booking/internal/usecase/shared"
	sharedmock "loft-booking/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

var now = time.Date(2030, 5, 1, 10, 0, 0, 0, time.UTC)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

type uowFixture struct {
	clock        *clock.FixedClock
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	reads        *sharedmock.MockCommandReads
	bookings     *sharedmock.MockBookingRepository
	seasonalRate *sharedmock.MockSeasonalRateRepository
}

// newUoWFixture runs every Within callback synchronously against mocked repositories.
func newUoWFixture(t *testing.T) *uowFixture {
	ctrl := gomock.NewController(t)
	f := &uowFixture{
		clock:        clock.NewFixedClock(now),
		uow:          sharedmock.NewMockUnitOfWork(ctrl),
		tx:           sharedmock.NewMockTx(ctrl),
		reads:        sharedmock.NewMockCommandReads(ctrl),
		bookings:     sharedmock.NewMockBookingRepository(ctrl),
		seasonalRate: sharedmock.NewMockSeasonalRateRepository(ctrl),
	}
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().Bookings().Return(f.bookings).AnyTimes()
	f.tx.EXPECT().SeasonalRates().Return(f.seasonalRate).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	return f
}
