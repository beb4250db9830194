//go:build unit

package calendar_test

import (
	"testing"

	"loft-booking/internal/domain/availability"
	"loft-booking/internal/domain/booking"
	"loft-booking/internal/domain/calendar"
	"loft-booking/internal/domain/pricing"
	"loft-booking/internal/domain/stay"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rng(t *testing.T, in, out string) stay.DateRange {
	t.Helper()
	r, err := stay.ParseDateRange(in, out)
	require.NoError(t, err)
	return r
}

func TestBuild(t *testing.T) {
	window := rng(t, "2030-06-01", "2030-06-06")
	rate, err := pricing.NewSeasonalRate(uuid.New(), rng(t, "2030-06-04", "2030-06-10"), pricing.NewMoney(20000), "high")
	require.NoError(t, err)
	occupied := []availability.Occupancy{
		{BookingID: uuid.New(), Stay: rng(t, "2030-05-30", "2030-06-02"), Status: booking.StatusConfirmed},
		{BookingID: uuid.New(), Stay: rng(t, "2030-06-02", "2030-06-04"), Status: booking.StatusCancelled},
		{BookingID: uuid.New(), Stay: rng(t, "2030-06-05", "2030-06-07"), Status: booking.StatusPending},
	}

	days := calendar.Build(window, pricing.NewMoney(10000), []*pricing.SeasonalRate{rate}, occupied)

	require.Len(t, days, 5)
	wantAvailable := []bool{false, true, true, true, false}
	wantPrice := []int64{10000, 10000, 10000, 20000, 20000}
	for i, d := range days {
		assert.Equal(t, wantAvailable[i], d.Available, d.Date.Format(stay.DateLayout))
		assert.Equal(t, wantPrice[i], d.Price.Cents(), d.Date.Format(stay.DateLayout))
	}
	assert.True(t, days[3].Seasonal)
	assert.Equal(t, "high", days[3].RateLabel)
	assert.False(t, days[0].Seasonal)
}

func TestValidateWindow(t *testing.T) {
	assert.NoError(t, calendar.ValidateWindow(rng(t, "2030-01-01", "2030-04-01")))
	assert.ErrorIs(t, calendar.ValidateWindow(rng(t, "2030-01-01", "2030-04-02")), calendar.ErrWindowTooLarge)
}
