package advisor

import (
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency of every amount in a client profile.
// Profiles are single-currency documents, there is no conversion anywhere.
const DefaultCurrency = "KRW"

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	}
	panic("unreachable")
}

// Money represents a monetary value, held in whole currency units.
type Money struct {
	value decimal.Decimal
	cur   string
}

// M creates a Money value in the given currency.
func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// KRW creates a Money value in the default currency.
func KRW[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64](value T) Money {
	return M(value, DefaultCurrency)
}

// currencyTokens are suffix or prefix tokens stripped before parsing an
// amount string. "원" is the won suffix found in raw bank exports.
var currencyTokens = []string{"KRW", "won", "₩", "원"}

// ParseAmount normalizes a heterogeneous amount representation into Money.
//
// Numeric values pass through. Strings may carry thousands separators and a
// currency token ("1,550,152 KRW", "812,893원"). Anything unparseable, and
// any negative value, normalizes to zero: malformed upstream data degrades
// the derived metrics instead of aborting report generation.
func ParseAmount(v any) Money {
	switch n := v.(type) {
	case Money:
		return n.clamped()
	case int:
		return KRW(n).clamped()
	case int64:
		return KRW(n).clamped()
	case float64:
		return KRW(n).clamped()
	case string:
		s := n
		for _, tok := range currencyTokens {
			s = strings.ReplaceAll(s, tok, "")
		}
		s = strings.ReplaceAll(s, ",", "")
		s = strings.TrimSpace(s)
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return KRW(0)
		}
		return KRW(i).clamped()
	default:
		return KRW(0)
	}
}

// clamped floors negative amounts to zero. Profile amounts are non-negative
// by contract.
func (m Money) clamped() Money {
	if m.value.IsNegative() {
		return Money{value: decimal.Zero, cur: m.cur}
	}
	return m
}

// functions that requires the full currency

// currency returns the money's currency
func (m Money) currency() money.Currency {
	cur := m.cur
	if cur == "" {
		cur = DefaultCurrency
	}
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, cur).Currency()
}

// String returns the string representation of the money value.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// Simple wrappers around the decimal value.

func (m Money) Currency() string                { return m.cur }
func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// Scale multiplies the amount by a factor, rounded to whole units.
func (m Money) Scale(f float64) Money {
	return Money{value: m.value.Mul(decimal.NewFromFloat(f)).Round(0), cur: m.cur}
}

// DivBy divides the amount by a count, rounded to whole units.
// A count below one is treated as one.
func (m Money) DivBy(n int) Money {
	if n < 1 {
		n = 1
	}
	return Money{value: m.value.Div(decimal.NewFromInt(int64(n))).Round(0), cur: m.cur}
}

// AsFloat returns the amount as a float64, for ratio computations only.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch " + A.cur + "!=" + B.cur)
	}
	return A.cur
}
