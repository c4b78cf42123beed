package mapper

import (
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/domain/account"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/domain/client"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/dto"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/money"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/service/ledger"
)

const dateLayout = "2006-01-02"

// MapClientToRead maps a domain client to a dto.ClientRead.
func MapClientToRead(c *client.Client) *dto.ClientRead {
	if c == nil {
		return nil
	}
	out := &dto.ClientRead{
		ID:        c.ID,
		Kind:      string(c.Profile.Kind()),
		TaxID:     c.TaxID(),
		Name:      c.Name(),
		Address:   c.Address,
		Accounts:  []int{},
		CreatedAt: c.CreatedAt,
	}
	if ind, ok := c.Profile.(client.Individual); ok && !ind.BirthDate.IsZero() {
		out.BirthDate = ind.BirthDate.Format(dateLayout)
	}
	for _, acc := range c.Accounts() {
		out.Accounts = append(out.Accounts, acc.Number)
	}
	return out
}

// MapAccountToRead maps a domain account to a dto.AccountRead.
func MapAccountToRead(acc *account.Account) *dto.AccountRead {
	if acc == nil {
		return nil
	}
	out := &dto.AccountRead{
		Number:     acc.Number,
		Branch:     acc.Branch,
		Type:       string(acc.Type()),
		HolderID:   acc.Holder().HolderID().String(),
		HolderName: acc.Holder().HolderName(),
		Balance:    acc.Balance().AmountFloat(),
		Currency:   acc.Balance().CurrencyCode().String(),
	}
	if p, ok := acc.Policy().(account.CheckingPolicy); ok {
		out.WithdrawalsMax = p.MaxWithdrawals
		out.WithdrawalsCap = p.Limit.AmountFloat()
	}
	return out
}

// MapAccountsToRead maps a slice of accounts, keeping the order.
func MapAccountsToRead(accounts []*account.Account) []*dto.AccountRead {
	out := make([]*dto.AccountRead, 0, len(accounts))
	for _, acc := range accounts {
		out = append(out, MapAccountToRead(acc))
	}
	return out
}

// MapRecordToRead maps a journal record to a dto.TransactionRead.
func MapRecordToRead(r account.Record) dto.TransactionRead {
	return dto.TransactionRead{
		ID:        r.ID,
		Kind:      string(r.Kind),
		Amount:    r.Amount.AmountFloat(),
		Currency:  r.Amount.CurrencyCode().String(),
		Timestamp: r.Timestamp,
	}
}

// MapStatementToRead maps a ledger statement to a dto.StatementRead.
func MapStatementToRead(st ledger.Statement) *dto.StatementRead {
	out := &dto.StatementRead{
		Branch:       st.Branch,
		Number:       st.Number,
		HolderName:   st.HolderName,
		Transactions: make([]dto.TransactionRead, 0, len(st.Records)),
		Balance:      st.Balance.AmountFloat(),
		Currency:     st.Balance.CurrencyCode().String(),
	}
	for _, r := range st.Records {
		out.Transactions = append(out.Transactions, MapRecordToRead(r))
	}
	return out
}

// MapBalanceToRead maps the balance returned by a posting.
func MapBalanceToRead(number int, balance money.Money) *dto.BalanceRead {
	return &dto.BalanceRead{
		Number:   number,
		Balance:  balance.AmountFloat(),
		Currency: balance.CurrencyCode().String(),
	}
}
