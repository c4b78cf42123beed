// Package transaction defines the movements a client can post to an account.
package transaction

import (
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/domain/account"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/money"
)

// Transaction is a movement of funds that can be applied to an account.
// A successful Apply changes the balance and appends exactly one record to
// the account's history; a failed one changes neither.
type Transaction interface {
	Kind() account.Kind
	Amount() money.Money
	Apply(acc *account.Account) error
}

// Deposit credits an account.
type Deposit struct {
	amount money.Money
}

// NewDeposit returns a deposit of amount.
func NewDeposit(amount money.Money) Deposit {
	return Deposit{amount: amount}
}

// Kind implements Transaction.
func (Deposit) Kind() account.Kind { return account.KindDeposit }

// Amount implements Transaction.
func (d Deposit) Amount() money.Money { return d.amount }

// Apply implements Transaction.
func (d Deposit) Apply(acc *account.Account) error {
	if err := acc.Deposit(d.amount); err != nil {
		return err
	}
	record(acc, d)
	return nil
}

// Withdrawal debits an account.
type Withdrawal struct {
	amount money.Money
}

// NewWithdrawal returns a withdrawal of amount.
func NewWithdrawal(amount money.Money) Withdrawal {
	return Withdrawal{amount: amount}
}

// Kind implements Transaction.
func (Withdrawal) Kind() account.Kind { return account.KindWithdrawal }

// Amount implements Transaction.
func (w Withdrawal) Amount() money.Money { return w.amount }

// Apply implements Transaction.
func (w Withdrawal) Apply(acc *account.Account) error {
	if err := acc.Withdraw(w.amount); err != nil {
		return err
	}
	record(acc, w)
	return nil
}

func record(acc *account.Account, tx Transaction) {
	acc.History().Append(account.NewRecord(tx.Kind(), tx.Amount(), acc.Now()))
}
