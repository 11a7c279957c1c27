package kernel

import (
	"fmt"
	"math"

	"fulfillment/internal/pkg/errs"
)

// Money is a non-negative amount stored in cents so that pricing arithmetic
// is exact. The zero value is a valid zero amount.
type Money struct {
	cents int64
}

// ZeroMoney is the zero amount.
var ZeroMoney = Money{}

// NewMoney builds an amount from cents.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("money", cents, 0, math.MaxInt64)
	}
	return Money{cents: cents}, nil
}

// MustMoney is NewMoney for constants known to be valid.
func MustMoney(cents int64) Money {
	m, err := NewMoney(cents)
	if err != nil {
		panic(err)
	}
	return m
}

// MoneyFromFloat converts a decimal amount (as received over JSON) to cents,
// rounding half away from zero.
//
// Example:
//
//	price, err := kernel.MoneyFromFloat(49.99) // 4999 cents
func MoneyFromFloat(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", fmt.Errorf("%v is not a finite number", amount))
	}
	return NewMoney(int64(math.Round(amount * 100)))
}

func (m Money) Cents() int64 {
	return m.cents
}

// Float64 returns the amount in currency units, exact to two decimals.
func (m Money) Float64() float64 {
	return float64(m.cents) / 100
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// Times multiplies by a non-negative quantity.
func (m Money) Times(quantity int) Money {
	if quantity <= 0 {
		return ZeroMoney
	}
	return Money{cents: m.cents * int64(quantity)}
}

// Percent returns pct percent of the amount rounded half-up to the cent.
// 5% of 110.00 is 5.50; 5% of 0.10 is 0.01 (0.005 rounds up).
func (m Money) Percent(pct int64) Money {
	return Money{cents: (m.cents*pct + 50) / 100}
}

func (m Money) GreaterThan(other Money) bool {
	return m.cents > other.cents
}

func (m Money) LessThan(other Money) bool {
	return m.cents < other.cents
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

// String formats as a plain decimal with two fraction digits, e.g. "115.50".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
