package mapper

import (
	"testing"
	"time"

	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/domain/account"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/domain/client"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/domain/transaction"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/money"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/service/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapClientAndAccount(t *testing.T) {
	c, err := client.NewIndividual("Ana", "123", time.Date(1990, 2, 3, 0, 0, 0, 0, time.UTC), "Rua 1")
	require.NoError(t, err)
	acc, err := account.NewCheckingAccount(c, 4)
	require.NoError(t, err)
	require.NoError(t, c.AddAccount(acc))
	require.NoError(t, transaction.NewDeposit(money.Must(12.34, money.BRL)).Apply(acc))

	cr := MapClientToRead(c)
	assert.Equal(t, "123", cr.TaxID)
	assert.Equal(t, "individual", cr.Kind)
	assert.Equal(t, "1990-02-03", cr.BirthDate)
	assert.Equal(t, []int{4}, cr.Accounts)

	ar := MapAccountToRead(acc)
	assert.Equal(t, 4, ar.Number)
	assert.Equal(t, "0001", ar.Branch)
	assert.Equal(t, "checking", ar.Type)
	assert.Equal(t, "Ana", ar.HolderName)
	assert.Equal(t, c.ID.String(), ar.HolderID)
	assert.InDelta(t, 12.34, ar.Balance, 1e-9)
	assert.Equal(t, "BRL", ar.Currency)
	assert.Equal(t, 3, ar.WithdrawalsMax)
	assert.InDelta(t, 500.0, ar.WithdrawalsCap, 1e-9)

	st := MapStatementToRead(ledger.StatementOf(acc))
	require.Len(t, st.Transactions, 1)
	assert.Equal(t, "Deposit", st.Transactions[0].Kind)
	assert.InDelta(t, 12.34, st.Balance, 1e-9)

	assert.Nil(t, MapClientToRead(nil))
	assert.Nil(t, MapAccountToRead(nil))
	assert.Len(t, MapAccountsToRead([]*account.Account{acc}), 1)
}

func TestMapEmptyStatement(t *testing.T) {
	c, err := client.NewIndividual("Ana", "1", time.Time{}, "")
	require.NoError(t, err)
	acc, err := account.NewAccount(c, 1)
	require.NoError(t, err)

	st := MapStatementToRead(ledger.StatementOf(acc))
	assert.NotNil(t, st.Transactions)
	assert.Empty(t, st.Transactions)
	assert.Zero(t, st.Balance)
	assert.Empty(t, MapClientToRead(c).BirthDate)

	b := MapBalanceToRead(1, money.Must(5, money.BRL))
	assert.InDelta(t, 5.0, b.Balance, 1e-9)
}
