//go:build unit

package loft_test

import (
	"strings"
	"testing"

	"loft-booking/internal/domain/loft"
	"loft-booking/internal/domain/pricing"
	"loft-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmp.AllowUnexported(pricing.Money{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.LoftBuilder)
	errIs  error
}

func intPtr(v int) *int { return &v }

func TestLoft(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		b := builder.NewLoftBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsOwnedBy(b.PartnerID))
		assert.False(t, actual.IsOwnedBy(uuid.New()))

		wantRates := pricing.Rates{
			NightlyPrice: pricing.NewMoney(b.NightlyPriceCents),
			CleaningFee:  pricing.NewMoney(b.CleaningFeeCents),
			TaxRate:      b.TaxRate,
			Currency:     pricing.Currency(b.Currency),
		}
		if diff := cmp.Diff(wantRates, actual.Rates(), cmpOpts...); diff != "" {
			t.Errorf("Rates mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, b.MinimumStay, actual.StayRules().MinimumStay)
		assert.Nil(t, actual.StayRules().MaximumStay)
	})

	t.Run("名前検証", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "前後の空白は除去OK", mutate: func(b *builder.LoftBuilder) { b.Name = "  Canal Loft  " }},
			{name: "空NG", mutate: func(b *builder.LoftBuilder) { b.Name = "   " }, errIs: loft.ErrEmptyName},
			{
				name:   "201文字NG",
				mutate: func(b *builder.LoftBuilder) { b.Name = strings.Repeat("a", 201) },
				errIs:  loft.ErrNameTooLong,
			},
		})
	})

	t.Run("料金検証", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "宿泊料0円NG", mutate: func(b *builder.LoftBuilder) { b.NightlyPriceCents = 0 }, errIs: loft.ErrInvalidNightlyPrice},
			{name: "清掃料0円OK", mutate: func(b *builder.LoftBuilder) { b.CleaningFeeCents = 0 }},
			{name: "清掃料マイナスNG", mutate: func(b *builder.LoftBuilder) { b.CleaningFeeCents = -1 }, errIs: loft.ErrNegativeCleaningFee},
			{name: "税率0OK", mutate: func(b *builder.LoftBuilder) { b.TaxRate = 0 }},
			{name: "税率1NG", mutate: func(b *builder.LoftBuilder) { b.TaxRate = 1 }, errIs: loft.ErrInvalidTaxRate},
			{name: "税率マイナスNG", mutate: func(b *builder.LoftBuilder) { b.TaxRate = -0.01 }, errIs: loft.ErrInvalidTaxRate},
			{name: "通貨小文字NG", mutate: func(b *builder.LoftBuilder) { b.Currency = "usd" }, errIs: pricing.ErrInvalidCurrency},
		})
	})

	t.Run("宿泊数検証", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "最低0泊NG", mutate: func(b *builder.LoftBuilder) { b.MinimumStay = 0 }, errIs: loft.ErrInvalidMinimumStay},
			{
				name:   "最大=最低OK",
				mutate: func(b *builder.LoftBuilder) { b.MinimumStay = 3; b.MaximumStay = intPtr(3) },
			},
			{
				name:   "最大<最低NG",
				mutate: func(b *builder.LoftBuilder) { b.MinimumStay = 3; b.MaximumStay = intPtr(2) },
				errIs:  loft.ErrInvalidMaximumStay,
			},
		})
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewLoftBuilder().With(tc.mutate)
			_, err := b.BuildDomain()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
		})
	}
}
