package money_test

import (
	"errors"
	"testing"

	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/money"
)

// FuzzParse checks that Parse never panics and that accepted input keeps its
// sign and currency.
func FuzzParse(f *testing.F) {
	f.Add("100")
	f.Add("-50.25")
	f.Add("0")
	f.Add("99,90")
	f.Add("1e12")
	f.Add("not-a-number")

	f.Fuzz(func(t *testing.T, input string) {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("Parse panicked: %v (input=%q)", r, input)
			}
		}()

		m, err := money.Parse(input, money.BRL)
		if err != nil {
			if !errors.Is(err, money.ErrInvalidAmount) && !errors.Is(err, money.ErrInvalidDecimals) {
				t.Fatalf("unexpected error kind: %v", err)
			}
			return
		}
		if got := m.CurrencyCode(); got != money.BRL {
			t.Errorf("Currency code changed: got %q", got)
		}
		back, err := money.Parse(m.Decimal().String(), money.BRL)
		if err != nil {
			t.Fatalf("re-parse of %q failed: %v", m.Decimal().String(), err)
		}
		if !back.Equals(m) {
			t.Errorf("round trip changed value: %s != %s", back, m)
		}
	})
}
