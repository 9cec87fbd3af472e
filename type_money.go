package cfodash

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in the reporting currency.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// ReportingCurrency is the currency every ledger amount is expressed in.
// The management sheets this dashboard digests are euro-denominated.
const ReportingCurrency = "EUR"

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

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
	return decimal.Zero
}

// currency returns the money's currency, defaulting to the reporting one.
func (m Money) currency() money.Currency {
	c := m.cur
	if c == "" {
		c = ReportingCurrency
	}
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, c).Currency()
}

// String returns the locale-correct representation of the money value.
// The reporting sheets are Italian, so euros render with "." grouping
// and "," decimals, symbol last: "100.000,00 €". The library's built-in
// EUR format uses Anglo separators, hence the explicit formatter.
func (m Money) String() string {
	cur := m.currency()
	f := money.NewFormatter(cur.Fraction, ",", ".", cur.Grapheme, "1 $")
	dec := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return f.Format(dec.IntPart())
}

func (m Money) Currency() string         { return m.cur }
func (m Money) Equal(n Money) bool       { cur(m, n); return m.value.Equal(n.value) }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsPositive() bool         { return m.value.IsPositive() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool    { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool { return m.value.GreaterThan(n.value) }
func (m Money) Neg() Money               { return Money{value: m.value.Neg(), cur: m.cur} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// Scale multiplies the value by a factor, e.g. 1.10 for a +10% delta.
func (m Money) Scale(factor float64) Money {
	return Money{value: m.value.Mul(decimal.NewFromFloat(factor)), cur: m.cur}
}

// Div divides the value by a strictly positive divisor.
func (m Money) Div(divisor decimal.Decimal) Money {
	return Money{value: m.value.Div(divisor), cur: m.cur}
}

// Round returns the value rounded half away from zero to whole currency units.
func (m Money) Round() Money {
	return Money{value: m.value.Round(0), cur: m.cur}
}

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

// AsFloat is for ratio derivation only, amounts stay exact.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as a "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}
