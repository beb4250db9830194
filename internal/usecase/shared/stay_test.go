//go:build unit

package shared_test

import (
	"testing"
	"time"

	"loft-booking/internal/domain/stay"
	"loft-booking/internal/pkg/errs"
	"loft-booking/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStay(t *testing.T) {
	today := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		checkIn    string
		checkOut   string
		wantNights int
		wantCause  error
	}{
		{name: "当日チェックインOK", checkIn: "2026-10-14", checkOut: "2026-10-16", wantNights: 2},
		{name: "上限泊数ちょうどOK", checkIn: "2026-10-14", checkOut: "2027-10-14", wantNights: stay.MaxStayNights},
		{name: "上限泊数超過NG", checkIn: "2026-10-14", checkOut: "2027-10-15", wantCause: stay.ErrStayTooLong},
		{name: "遠い未来までの滞在NG", checkIn: "2026-10-14", checkOut: "9999-01-01", wantCause: stay.ErrStayTooLong},
		{name: "過去日NG", checkIn: "2026-10-13", checkOut: "2026-10-15", wantCause: stay.ErrCheckInInPast},
		{name: "逆順NG", checkIn: "2026-10-20", checkOut: "2026-10-15", wantCause: stay.ErrCheckOutNotAfterCheckIn},
		{name: "形式不正NG", checkIn: "2026/10/14", checkOut: "2026-10-15", wantCause: stay.ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			period, err := shared.ParseStay(tt.checkIn, tt.checkOut, today)
			if tt.wantCause != nil {
				require.ErrorIs(t, err, errs.ErrInvalidDateRange)
				require.ErrorIs(t, err, tt.wantCause)
				assert.Equal(t, []string{tt.wantCause.Error()}, errs.Details(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantNights, period.Nights())
		})
	}
}

func TestParseWindow_AllowsPast(t *testing.T) {
	window, err := shared.ParseWindow("2020-01-01", "2020-01-08")
	require.NoError(t, err)
	assert.Equal(t, 7, window.Nights())
}
