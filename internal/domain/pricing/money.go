package pricing

import (
	"errors"
	"math"
	"regexp"
)

var ErrInvalidCurrency = errors.New("currency must be a three-letter ISO 4217 code")

var currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// Currency is carried through unchanged; no conversion happens anywhere.
type Currency string

func NewCurrency(code string) (Currency, error) {
	if !currencyPattern.MatchString(code) {
		return "", ErrInvalidCurrency
	}
	return Currency(code), nil
}

func (c Currency) String() string {
	return string(c)
}

// Money is an amount in minor units of its currency.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) IsPositive() bool {
	return m.cents > 0
}

func (m Money) IsNegative() bool {
	return m.cents < 0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Times(n int) Money {
	return Money{cents: m.cents * int64(n)}
}

// rateScale keeps six decimal digits of a rate so 0.15 and 15% land on exact integers.
const rateScale = 1_000_000

// MulRate returns m x rate rounded half away from zero to the minor unit.
func (m Money) MulRate(rate float64) Money {
	scaled := int64(math.Round(rate * rateScale))
	return Money{cents: roundDiv(m.cents*scaled, rateScale)}
}

// Percent returns m x pct / 100 with the same rounding as MulRate.
func (m Money) Percent(pct float64) Money {
	return m.MulRate(pct / 100)
}

func roundDiv(n, d int64) int64 {
	if n < 0 {
		return -((-n + d/2) / d)
	}
	return (n + d/2) / d
}
