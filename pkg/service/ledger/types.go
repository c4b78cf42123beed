package ledger

import (
	"strings"
	"time"

	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/domain/account"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/money"
)

// NewClientInput is the data needed to register an individual client.
type NewClientInput struct {
	TaxID     string    `validate:"required,max=32"`
	Name      string    `validate:"required,max=120"`
	BirthDate time.Time `validate:"required"`
	Address   string    `validate:"max=255"`
}

func (in *NewClientInput) normalize() {
	in.TaxID = strings.TrimSpace(in.TaxID)
	in.Name = strings.TrimSpace(in.Name)
	in.Address = strings.TrimSpace(in.Address)
}

// Statement is a read-only view of an account's journal.
type Statement struct {
	Branch     string
	Number     int
	HolderName string
	Records    []account.Record
	Balance    money.Money
}

// IsEmpty reports whether no transaction was ever posted to the account.
func (s Statement) IsEmpty() bool { return len(s.Records) == 0 }

// StatementOf builds the statement of acc.
func StatementOf(acc *account.Account) Statement {
	return Statement{
		Branch:     acc.Branch,
		Number:     acc.Number,
		HolderName: acc.Holder().HolderName(),
		Records:    acc.History().Records(),
		Balance:    acc.Balance(),
	}
}
