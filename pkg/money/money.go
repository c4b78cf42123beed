// Package money provides functionality for handling monetary values.
//
// It is a value object that represents a monetary value in a specific currency.
// Invariants:
//   - Amount is always stored in the smallest currency unit (e.g., centavos for BRL).
//   - Currency code must be valid ISO 4217 (3 uppercase letters).
//   - All arithmetic operations require matching currencies.
package money

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount represents a monetary amount as an integer in the
// smallest currency unit (e.g., centavos for BRL).
type Amount = int64

// ToCurrency converts a Code to a Currency with default decimals
func (c Code) ToCurrency() Currency {
	switch c {
	case BRL:
		return BRLCurrency
	case USD:
		return USDCurrency
	case EUR:
		return EURCurrency
	case GBP:
		return GBPCurrency
	case JPY:
		return JPYCurrency
	default:
		return Currency{Code: c, Decimals: 2}
	}
}

// IsValid checks if the currency code is valid
func (c Code) IsValid() bool {
	if len(c) != 3 {
		return false
	}
	return c[0] >= 'A' && c[0] <= 'Z' &&
		c[1] >= 'A' && c[1] <= 'Z' &&
		c[2] >= 'A' && c[2] <= 'Z'
}

// String returns the string representation of the currency code.
func (c Code) String() string {
	return string(c)
}

// Currency represents a monetary unit with its standard decimal places
type Currency struct {
	Code     Code // 3-letter ISO 4217 code (e.g., "BRL")
	Decimals int  // Number of decimal places (0-8)
}

// IsValid checks if the currency is valid.
func (c Currency) IsValid() bool {
	if c.Decimals < 0 || c.Decimals > 8 {
		return false
	}
	return c.Code.IsValid()
}

// String returns the currency code as a string
func (c Currency) String() string { return string(c.Code) }

// Common currency instances
var (
	BRLCurrency = Currency{Code: BRL, Decimals: 2}
	USDCurrency = Currency{Code: USD, Decimals: 2}
	EURCurrency = Currency{Code: EUR, Decimals: 2}
	GBPCurrency = Currency{Code: GBP, Decimals: 2}
	JPYCurrency = Currency{Code: JPY, Decimals: 0} // Japanese Yen has no decimal places
)

// DefaultCurrency is the currency every ledger account is kept in.
var DefaultCurrency = BRLCurrency

// Money represents a monetary value in a specific currency.
// The zero value is zero in no currency; use Zero to get a usable zero amount.
type Money struct {
	amount   Amount
	currency Currency
}

// resolveCurrency accepts a Code, a Currency or a string code.
func resolveCurrency(currency any) (Currency, error) {
	var c Currency
	switch v := currency.(type) {
	case string:
		code := Code(strings.ToUpper(strings.TrimSpace(v)))
		if !code.IsValid() {
			return Currency{}, fmt.Errorf("%w: %s", ErrInvalidCurrency, v)
		}
		c = code.ToCurrency()
	case Code:
		c = v.ToCurrency()
	case Currency:
		c = v
	default:
		return Currency{}, fmt.Errorf(
			"invalid currency type: %T, expected string, Code, or Currency",
			currency,
		)
	}
	if !c.IsValid() {
		return Currency{}, fmt.Errorf("%w: %v", ErrInvalidCurrency, c)
	}
	return c, nil
}

// Zero creates a Money object with zero amount in the specified currency.
// Unknown currency values fall back to DefaultCurrency.
func Zero(currency any) Money {
	c, err := resolveCurrency(currency)
	if err != nil {
		c = DefaultCurrency
	}
	return Money{currency: c}
}

// Must is like New but panics if any invariant is violated.
func Must(amount float64, currency any) Money {
	m, err := New(amount, currency)
	if err != nil {
		panic(fmt.Sprintf("money.Must(%v, %v): %v", amount, currency, err))
	}
	return m
}

// New creates a new Money value object with the given amount and currency.
// The amount is rounded half away from zero to the currency's decimal places.
func New(amount float64, currency any) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, fmt.Errorf("%w: %v", ErrInvalidAmount, amount)
	}
	c, err := resolveCurrency(currency)
	if err != nil {
		return Money{}, err
	}
	d := decimal.NewFromFloat(amount).Round(int32(c.Decimals))
	return fromDecimal(d, c)
}

// NewFromDecimal creates Money from an exact decimal. Unlike New it never
// rounds: an amount with more decimal places than the currency allows is
// rejected with ErrInvalidDecimals.
func NewFromDecimal(d decimal.Decimal, currency any) (Money, error) {
	c, err := resolveCurrency(currency)
	if err != nil {
		return Money{}, err
	}
	if !d.Equal(d.Truncate(int32(c.Decimals))) {
		return Money{}, fmt.Errorf("%w: %s %s", ErrInvalidDecimals, d.String(), c.Code)
	}
	return fromDecimal(d, c)
}

// Parse reads a human-entered amount such as "1500", "500.00" or "99,90".
// A comma is accepted as the decimal separator when no dot is present.
func Parse(s string, currency any) (Money, error) {
	raw := strings.TrimSpace(s)
	if !strings.Contains(raw, ".") {
		raw = strings.Replace(raw, ",", ".", 1)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return NewFromDecimal(d, currency)
}

// NewFromSmallestUnit creates a new Money object from the smallest currency unit.
func NewFromSmallestUnit(amount int64, currency any) (Money, error) {
	c, err := resolveCurrency(currency)
	if err != nil {
		return Money{}, err
	}
	return Money{amount: amount, currency: c}, nil
}

func fromDecimal(d decimal.Decimal, c Currency) (Money, error) {
	units := d.Shift(int32(c.Decimals))
	if units.GreaterThan(decimal.NewFromInt(math.MaxInt64)) ||
		units.LessThan(decimal.NewFromInt(math.MinInt64)) {
		return Money{}, fmt.Errorf("%w: %s exceeds maximum safe value", ErrInvalidAmount, d.String())
	}
	return Money{amount: units.IntPart(), currency: c}, nil
}

// Amount returns the amount of the Money object in the smallest currency unit.
func (m Money) Amount() Amount {
	return m.amount
}

// Decimal returns the amount in the main currency unit as an exact decimal.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.amount, -int32(m.currency.Decimals))
}

// AmountFloat returns the amount as a float64 in the main currency unit (e.g., reais for BRL).
func (m Money) AmountFloat() float64 {
	f, _ := m.Decimal().Float64()
	return f
}

// Currency returns the currency of the Money object.
func (m Money) Currency() Currency {
	return m.currency
}

// CurrencyCode returns the currency code of the Money object.
func (m Money) CurrencyCode() Code {
	return m.currency.Code
}

// IsSameCurrency checks if both values share a currency.
func (m Money) IsSameCurrency(other Money) bool {
	return m.currency == other.currency
}

// Add returns a new Money object with the sum of amounts.
func (m Money) Add(other Money) (Money, error) {
	if !m.IsSameCurrency(other) {
		return Money{}, fmt.Errorf(
			"%w: cannot add %s and %s",
			ErrMismatchedCurrencies,
			m.currency.Code,
			other.currency.Code,
		)
	}
	if (other.amount > 0 && m.amount > math.MaxInt64-other.amount) ||
		(other.amount < 0 && m.amount < math.MinInt64-other.amount) {
		return Money{}, ErrAmountExceedsMaxSafeInt
	}
	return Money{amount: m.amount + other.amount, currency: m.currency}, nil
}

// Subtract returns a new Money object with the difference of amounts.
// The result can be negative if the subtrahend is larger than the minuend.
func (m Money) Subtract(other Money) (Money, error) {
	if !m.IsSameCurrency(other) {
		return Money{}, fmt.Errorf(
			"%w: cannot subtract %s from %s",
			ErrMismatchedCurrencies,
			other.currency.Code,
			m.currency.Code,
		)
	}
	return Money{amount: m.amount - other.amount, currency: m.currency}, nil
}

// Equals reports whether both values have the same currency and amount.
func (m Money) Equals(other Money) bool {
	return m.currency == other.currency && m.amount == other.amount
}

// GreaterThan checks if the current Money object is greater than another Money object.
func (m Money) GreaterThan(other Money) (bool, error) {
	if !m.IsSameCurrency(other) {
		return false, fmt.Errorf(
			"%w: cannot compare %s and %s",
			ErrMismatchedCurrencies,
			m.currency.Code,
			other.currency.Code,
		)
	}
	return m.amount > other.amount, nil
}

// IsPositive returns true if the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.amount > 0
}

// IsNegative returns true if the amount is less than zero.
func (m Money) IsNegative() bool {
	return m.amount < 0
}

// IsZero returns true if the amount is zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// String returns a string representation of the Money object.
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Decimal().StringFixed(int32(m.currency.Decimals)), m.currency.Code)
}

// MarshalJSON implements json.Marshaler interface.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"amount":   m.amount,
		"currency": m.currency.Code,
	})
}

// UnmarshalJSON implements json.Unmarshaler interface.
func (m *Money) UnmarshalJSON(data []byte) error {
	var aux struct {
		Amount   int64  `json:"amount"`
		Currency string `json:"currency"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	c, err := resolveCurrency(aux.Currency)
	if err != nil {
		return err
	}
	m.amount = aux.Amount
	m.currency = c
	return nil
}
