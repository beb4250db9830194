//go:build unit

package stay_test

import (
	"testing"
	"time"

	"loft-booking/internal/domain/stay"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse(stay.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNewDateRange(t *testing.T) {
	tests := []struct {
		name       string
		checkIn    time.Time
		checkOut   time.Time
		wantNights int
		wantErr    error
	}{
		{name: "3泊OK", checkIn: date("2030-06-01"), checkOut: date("2030-06-04"), wantNights: 3},
		{name: "1泊OK", checkIn: date("2030-06-01"), checkOut: date("2030-06-02"), wantNights: 1},
		{name: "同日NG", checkIn: date("2030-06-01"), checkOut: date("2030-06-01"), wantErr: stay.ErrCheckOutNotAfterCheckIn},
		{name: "逆順NG", checkIn: date("2030-06-05"), checkOut: date("2030-06-01"), wantErr: stay.ErrCheckOutNotAfterCheckIn},
		{
			name:       "時刻部分は切り捨て",
			checkIn:    time.Date(2030, 6, 1, 18, 30, 0, 0, time.UTC),
			checkOut:   time.Date(2030, 6, 3, 9, 0, 0, 0, time.UTC),
			wantNights: 2,
		},
		{
			name:     "時刻を落とすと同日になるケースNG",
			checkIn:  time.Date(2030, 6, 1, 8, 0, 0, 0, time.UTC),
			checkOut: time.Date(2030, 6, 1, 23, 0, 0, 0, time.UTC),
			wantErr:  stay.ErrCheckOutNotAfterCheckIn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := stay.NewDateRange(tt.checkIn, tt.checkOut)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantNights, r.Nights())
			assert.Len(t, r.EachNight(), tt.wantNights)
		})
	}
}

func TestParseDateRange(t *testing.T) {
	r, err := stay.ParseDateRange("2030-06-01", "2030-06-05")
	require.NoError(t, err)
	assert.Equal(t, "[2030-06-01,2030-06-05)", r.String())

	_, err = stay.ParseDateRange("2030/06/01", "2030-06-05")
	require.ErrorIs(t, err, stay.ErrInvalidDate)

	_, err = stay.ParseDateRange("2030-06-01", "")
	require.ErrorIs(t, err, stay.ErrInvalidDate)
}

func TestDateRange_ValidateNotPastAt(t *testing.T) {
	r, err := stay.ParseDateRange("2030-06-01", "2030-06-03")
	require.NoError(t, err)

	assert.NoError(t, r.ValidateNotPastAt(time.Date(2030, 6, 1, 23, 59, 0, 0, time.UTC)), "当日チェックインは許可")
	assert.NoError(t, r.ValidateNotPastAt(time.Date(2030, 5, 1, 0, 0, 0, 0, time.UTC)))
	assert.ErrorIs(t, r.ValidateNotPastAt(time.Date(2030, 6, 2, 0, 0, 0, 0, time.UTC)), stay.ErrCheckInInPast)
}

func TestDateRange_Overlaps(t *testing.T) {
	existing, _ := stay.ParseDateRange("2030-06-01", "2030-06-05")

	tests := []struct {
		name     string
		in, out  string
		overlaps bool
	}{
		{name: "後半が重なる", in: "2030-06-03", out: "2030-06-07", overlaps: true},
		{name: "前半が重なる", in: "2030-05-28", out: "2030-06-02", overlaps: true},
		{name: "内包", in: "2030-06-02", out: "2030-06-03", overlaps: true},
		{name: "包含", in: "2030-05-01", out: "2030-07-01", overlaps: true},
		{name: "チェックアウト日にチェックインは重ならない", in: "2030-06-05", out: "2030-06-08", overlaps: false},
		{name: "チェックイン日にチェックアウトは重ならない", in: "2030-05-28", out: "2030-06-01", overlaps: false},
		{name: "完全に離れている", in: "2030-07-01", out: "2030-07-03", overlaps: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate, err := stay.ParseDateRange(tt.in, tt.out)
			require.NoError(t, err)
			assert.Equal(t, tt.overlaps, existing.Overlaps(candidate))
			assert.Equal(t, tt.overlaps, candidate.Overlaps(existing))
		})
	}
}

func TestDateRange_Covers(t *testing.T) {
	r, _ := stay.ParseDateRange("2030-06-01", "2030-06-03")

	assert.True(t, r.Covers(date("2030-06-01")))
	assert.True(t, r.Covers(time.Date(2030, 6, 2, 15, 0, 0, 0, time.UTC)))
	assert.False(t, r.Covers(date("2030-06-03")))
	assert.False(t, r.Covers(date("2030-05-31")))
}

func TestDateRange_Nights_FarFuture(t *testing.T) {
	r, err := stay.ParseDateRange("2026-10-14", "9999-01-01")
	require.NoError(t, err)

	assert.Equal(t, 2911792, r.Nights(), "Durationの上限を超える期間でも日数が正しい")
	assert.ErrorIs(t, r.ValidateLength(), stay.ErrStayTooLong)
}

func TestDateRange_ValidateLength(t *testing.T) {
	yearLong, err := stay.ParseDateRange("2026-10-14", "2027-10-14")
	require.NoError(t, err)
	require.Equal(t, stay.MaxStayNights, yearLong.Nights())
	assert.NoError(t, yearLong.ValidateLength(), "上限ちょうどは許可")

	overLimit, err := stay.ParseDateRange("2026-10-14", "2027-10-15")
	require.NoError(t, err)
	assert.ErrorIs(t, overLimit.ValidateLength(), stay.ErrStayTooLong)
}
