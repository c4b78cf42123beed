package account

import (
	"fmt"
	"reflect"
	"time"

	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/domain"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/money"
	"github.com/google/uuid"
)

// DefaultBranch is the branch code every account is opened in.
const DefaultBranch = "0001"

// Holder is the owning client as seen from an account.
type Holder interface {
	HolderID() uuid.UUID
	HolderName() string
}

// Account holds a balance and the journal of transactions applied to it.
// It acts as an aggregate root, ensuring all state changes are consistent and valid.
//
// Invariants:
//   - An account always has exactly one holder, set at creation.
//   - The balance starts at zero and is never driven negative by a withdrawal.
//   - Deposit and Withdraw either fully apply or leave the account untouched.
//   - Withdrawal rules specific to the account kind live in its Policy.
type Account struct {
	Number    int
	Branch    string
	CreatedAt time.Time

	holder  Holder
	balance money.Money
	policy  Policy
	history *History
	now     func() time.Time
}

// Builder provides a fluent API for constructing Account instances.
type Builder struct {
	number   int
	branch   string
	holder   Holder
	currency money.Currency
	policy   Policy
	now      func() time.Time
}

// New creates a new Builder with sensible defaults: the default branch and
// currency, no extra withdrawal rules and the wall clock.
func New() *Builder {
	return &Builder{
		branch:   DefaultBranch,
		currency: money.DefaultCurrency,
		policy:   BasePolicy{},
		now:      time.Now,
	}
}

// WithNumber sets the account number.
func (b *Builder) WithNumber(number int) *Builder {
	b.number = number
	return b
}

// WithBranch overrides the branch code.
func (b *Builder) WithBranch(branch string) *Builder {
	b.branch = branch
	return b
}

// WithHolder sets the owning client. This is a mandatory field.
func (b *Builder) WithHolder(holder Holder) *Builder {
	b.holder = holder
	return b
}

// WithCurrency sets the currency the balance is kept in.
func (b *Builder) WithCurrency(c money.Currency) *Builder {
	b.currency = c
	return b
}

// WithPolicy sets the withdrawal policy, which decides the account kind.
func (b *Builder) WithPolicy(p Policy) *Builder {
	if p != nil {
		b.policy = p
	}
	return b
}

// WithClock replaces the clock used to timestamp records.
func (b *Builder) WithClock(now func() time.Time) *Builder {
	if now != nil {
		b.now = now
	}
	return b
}

// Build finalizes the construction of the Account.
func (b *Builder) Build() (*Account, error) {
	if isNil(b.holder) {
		return nil, domain.ErrNilHolder
	}
	if !b.currency.IsValid() {
		return nil, fmt.Errorf("%w: %v", money.ErrInvalidCurrency, b.currency)
	}
	return &Account{
		Number:    b.number,
		Branch:    b.branch,
		CreatedAt: b.now(),
		holder:    b.holder,
		balance:   money.Zero(b.currency),
		policy:    b.policy,
		history:   &History{},
		now:       b.now,
	}, nil
}

// NewAccount creates a plain account bound to holder.
func NewAccount(holder Holder, number int) (*Account, error) {
	return New().WithHolder(holder).WithNumber(number).Build()
}

// NewCheckingAccount creates a checking account with the default limits.
func NewCheckingAccount(holder Holder, number int) (*Account, error) {
	return New().
		WithHolder(holder).
		WithNumber(number).
		WithPolicy(DefaultCheckingPolicy()).
		Build()
}

// Holder returns the owning client.
func (a *Account) Holder() Holder { return a.holder }

// Balance returns the current balance.
func (a *Account) Balance() money.Money { return a.balance }

// Currency returns the currency the account is kept in.
func (a *Account) Currency() money.Currency { return a.balance.Currency() }

// Policy returns the withdrawal policy of the account.
func (a *Account) Policy() Policy { return a.policy }

// Type returns the account kind.
func (a *Account) Type() Type { return a.policy.Type() }

// History returns the account's transaction journal.
func (a *Account) History() *History { return a.history }

// Snapshot returns a copy of a with its own journal. Later postings to a do
// not show through the copy, and the copy shares no mutable state with a.
func (a *Account) Snapshot() *Account {
	cp := *a
	cp.history = &History{records: a.history.Records()}
	return &cp
}

// Now returns the current time according to the account's clock.
func (a *Account) Now() time.Time { return a.now() }

func (a *Account) validateAmount(amount money.Money) error {
	if !amount.IsPositive() {
		return domain.ErrInvalidAmount
	}
	return nil
}

// Deposit adds amount to the balance. It mutates the balance only; recording
// the movement is up to the caller.
func (a *Account) Deposit(amount money.Money) error {
	if err := a.validateAmount(amount); err != nil {
		return err
	}
	next, err := a.balance.Add(amount)
	if err != nil {
		return err
	}
	a.balance = next
	return nil
}

// Withdraw removes amount from the balance once the account's policy and the
// base rules allow it. Base rules, in order:
//   - InsufficientFunds when amount is greater than the balance;
//   - InvalidAmount when amount is not positive.
func (a *Account) Withdraw(amount money.Money) error {
	if err := a.policy.CheckWithdrawal(a, amount); err != nil {
		return err
	}
	exceeds, err := amount.GreaterThan(a.balance)
	if err != nil {
		return err
	}
	if exceeds {
		return domain.ErrInsufficientFunds
	}
	if err := a.validateAmount(amount); err != nil {
		return err
	}
	next, err := a.balance.Subtract(amount)
	if err != nil {
		return err
	}
	a.balance = next
	return nil
}

// String renders the account the way it is listed to clients.
func (a *Account) String() string {
	return fmt.Sprintf("Agência: %s C/C: %d Titular: %s", a.Branch, a.Number, a.holder.HolderName())
}

func isNil(h Holder) bool {
	if h == nil {
		return true
	}
	v := reflect.ValueOf(h)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
