// README: Common money value object used across modules.
package types

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Money is an amount in minor units (e.g. cents) with its currency code.
// Amounts stay integral so that scaling and summing fee components cannot
// accumulate float drift.
type Money struct {
	Amount   int64
	Currency string
}

func NewMoney(amount int64, currency string) Money {
	return Money{Amount: amount, Currency: currency}
}

func Zero(currency string) Money {
	return Money{Currency: currency}
}

func (m Money) Add(o Money) Money {
	return Money{Amount: m.Amount + o.Amount, Currency: m.Currency}
}

// Scale multiplies the amount by f, rounding half away from zero to the
// nearest minor unit.
func (m Money) Scale(f float64) Money {
	return Money{Amount: int64(math.Round(float64(m.Amount) * f)), Currency: m.Currency}
}

func (m Money) MulInt(n int64) Money {
	return Money{Amount: m.Amount * n, Currency: m.Currency}
}

func (m Money) IsZero() bool {
	return m.Amount == 0
}

// Float64 returns the amount in major units. Minor-unit amounts carry at
// most two decimals, which float64 represents without visible error.
func (m Money) Float64() float64 {
	return float64(m.Amount) / 100
}

func (m Money) String() string {
	sign := ""
	a := m.Amount
	if a < 0 {
		sign = "-"
		a = -a
	}
	return fmt.Sprintf("%s%d.%02d %s", sign, a/100, a%100, m.Currency)
}

// ParseAmount converts a decimal string such as "50" or "50.25" into minor
// units. At most two fractional digits are accepted.
func ParseAmount(s string) (int64, error) {
	in := strings.TrimSpace(s)
	if in == "" {
		return 0, errors.New("parse amount: empty value")
	}
	neg := strings.HasPrefix(in, "-")
	if neg {
		in = in[1:]
	}
	whole, frac, hasFrac := strings.Cut(in, ".")
	if whole == "" {
		whole = "0"
	}
	w, err := strconv.ParseUint(whole, 10, 63)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}
	amount := int64(w) * 100
	if hasFrac {
		if len(frac) == 0 || len(frac) > 2 {
			return 0, fmt.Errorf("parse amount %q: at most two fractional digits", s)
		}
		f, err := strconv.ParseUint(frac, 10, 8)
		if err != nil {
			return 0, fmt.Errorf("parse amount %q: %w", s, err)
		}
		if len(frac) == 1 {
			f *= 10
		}
		amount += int64(f)
	}
	if neg {
		amount = -amount
	}
	return amount, nil
}
