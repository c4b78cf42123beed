package account

import (
	"fmt"
	"time"

	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/domain"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/money"
)

// Type identifies an account kind.
type Type string

// Account kinds.
const (
	TypeBasic    Type = "basic"
	TypeChecking Type = "checking"
)

// Policy holds the withdrawal rules specific to an account kind. It is
// consulted before the base balance rules and must not mutate the account.
type Policy interface {
	Type() Type
	CheckWithdrawal(acc *Account, amount money.Money) error
}

// BasePolicy adds no rules on top of the base ones.
type BasePolicy struct{}

// Type implements Policy.
func (BasePolicy) Type() Type { return TypeBasic }

// CheckWithdrawal implements Policy.
func (BasePolicy) CheckWithdrawal(*Account, money.Money) error { return nil }

// WithdrawalWindow selects which past withdrawals count towards
// CheckingPolicy.MaxWithdrawals.
type WithdrawalWindow string

const (
	// WindowCumulative counts every withdrawal ever recorded. The count never resets.
	WindowCumulative WithdrawalWindow = "cumulative"
	// WindowDaily counts withdrawals recorded since local midnight.
	WindowDaily WithdrawalWindow = "daily"
)

// Checking account defaults.
const (
	DefaultWithdrawalLimit = 500.00
	DefaultMaxWithdrawals  = 3
)

// CheckingPolicy caps each withdrawal at Limit and the number of withdrawals
// at MaxWithdrawals.
type CheckingPolicy struct {
	Limit          money.Money
	MaxWithdrawals int
	Window         WithdrawalWindow
}

// DefaultCheckingPolicy returns a 500.00 limit, 3 withdrawals, cumulative count.
func DefaultCheckingPolicy() CheckingPolicy {
	return CheckingPolicy{
		Limit:          money.Must(DefaultWithdrawalLimit, money.DefaultCurrency),
		MaxWithdrawals: DefaultMaxWithdrawals,
		Window:         WindowCumulative,
	}
}

// Type implements Policy.
func (CheckingPolicy) Type() Type { return TypeChecking }

// CheckWithdrawal rejects amounts above the limit, then withdrawals past the
// allowed count.
func (p CheckingPolicy) CheckWithdrawal(acc *Account, amount money.Money) error {
	over, err := amount.GreaterThan(p.Limit)
	if err != nil {
		return err
	}
	if over {
		return fmt.Errorf("%w: limit is %s", domain.ErrExceedsWithdrawalLimit, p.Limit)
	}
	if p.WithdrawalsCounted(acc) >= p.MaxWithdrawals {
		return fmt.Errorf("%w: %d allowed", domain.ErrDailyWithdrawalLimitExceeded, p.MaxWithdrawals)
	}
	return nil
}

// WithdrawalsCounted returns how many recorded withdrawals count against the limit.
func (p CheckingPolicy) WithdrawalsCounted(acc *Account) int {
	if p.Window == WindowDaily {
		now := acc.Now()
		y, m, d := now.Date()
		return acc.History().CountSince(KindWithdrawal, time.Date(y, m, d, 0, 0, 0, 0, now.Location()))
	}
	return acc.History().Count(KindWithdrawal)
}

// ParseWithdrawalWindow maps a config value to a window. Empty means cumulative.
func ParseWithdrawalWindow(s string) (WithdrawalWindow, error) {
	switch WithdrawalWindow(s) {
	case "", WindowCumulative:
		return WindowCumulative, nil
	case WindowDaily:
		return WindowDaily, nil
	default:
		return "", fmt.Errorf("unknown withdrawal window %q", s)
	}
}
