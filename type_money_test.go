package cfodash

import "testing"

// Amounts render with the Italian convention: "." grouping, ","
// decimals, the euro sign last.
func TestMoney_String(t *testing.T) {
	cases := []struct {
		in   Money
		want string
	}{
		{EUR(0), "0,00 €"},
		{EUR(100), "100,00 €"},
		{EUR(1234.56), "1.234,56 €"},
		{EUR(105000), "105.000,00 €"},
		{EUR(1234567.89), "1.234.567,89 €"},
		{EUR(-1000.50), "-1.000,50 €"},
	}
	for _, c := range cases {
		if got := c.in.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}

func TestMoney_SignedString(t *testing.T) {
	if got, want := EUR(0).SignedString(), "-"; got != want {
		t.Errorf("SignedString(0) = %q, want %q", got, want)
	}
	if got, want := EUR(250).SignedString(), "+250,00 €"; got != want {
		t.Errorf("SignedString() = %q, want %q", got, want)
	}
	if got, want := EUR(-250).SignedString(), "-250,00 €"; got != want {
		t.Errorf("SignedString() = %q, want %q", got, want)
	}
}

// String rounds to cents; the underlying value stays exact.
func TestMoney_StringRounds(t *testing.T) {
	m := EUR(10).Div(newDecimal(3))
	if got, want := m.String(), "3,33 €"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if m.Scale(3).Equal(EUR(9.99)) {
		t.Error("rendering must not round the stored value")
	}
}
