package money

import "errors"

// Common money package errors
var (
	// ErrInvalidAmount is returned when an amount cannot be parsed.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidCurrency is returned when a currency code is not a valid ISO 4217 code.
	ErrInvalidCurrency = errors.New("invalid currency code")

	// ErrInvalidDecimals is returned when an amount has more decimal places
	// than its currency allows.
	ErrInvalidDecimals = errors.New("amount has more decimal places than allowed by the currency")

	// ErrAmountExceedsMaxSafeInt is returned when an operation would overflow int64.
	ErrAmountExceedsMaxSafeInt = errors.New("amount exceeds maximum safe integer value")

	// ErrMismatchedCurrencies is returned when performing operations on money with
	// different currencies
	ErrMismatchedCurrencies = errors.New("mismatched currencies")
)
