package transaction_test

import (
	"testing"
	"time"

	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/domain"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/domain/account"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/domain/client"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/domain/transaction"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC)

func newChecking(t *testing.T) *account.Account {
	t.Helper()
	c, err := client.NewIndividual("João Souza", "12345678900", time.Date(1990, 1, 2, 0, 0, 0, 0, time.UTC), "Rua A, 1")
	require.NoError(t, err)
	acc, err := account.New().
		WithHolder(c).
		WithNumber(1).
		WithPolicy(account.DefaultCheckingPolicy()).
		WithClock(func() time.Time { return fixedNow }).
		Build()
	require.NoError(t, err)
	return acc
}

func TestDeposit_Apply(t *testing.T) {
	acc := newChecking(t)
	tx := transaction.NewDeposit(money.Must(250.50, money.BRL))

	require.NoError(t, tx.Apply(acc))

	assert.Equal(t, "250.50 BRL", acc.Balance().String())
	records := acc.History().Records()
	require.Len(t, records, 1)
	assert.Equal(t, account.KindDeposit, records[0].Kind)
	assert.True(t, records[0].Amount.Equals(tx.Amount()))
	assert.Equal(t, fixedNow, records[0].Timestamp)
}

func TestDeposit_InvalidAmountLeavesNoTrace(t *testing.T) {
	acc := newChecking(t)
	for _, v := range []float64{0, -1, -0.01} {
		err := transaction.NewDeposit(money.Must(v, money.BRL)).Apply(acc)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	}
	assert.True(t, acc.Balance().IsZero())
	assert.Equal(t, 0, acc.History().Len())
}

func TestWithdrawal_Apply(t *testing.T) {
	acc := newChecking(t)
	require.NoError(t, transaction.NewDeposit(money.Must(1000, money.BRL)).Apply(acc))

	require.NoError(t, transaction.NewWithdrawal(money.Must(500, money.BRL)).Apply(acc))
	assert.Equal(t, "500.00 BRL", acc.Balance().String())

	records := acc.History().Records()
	require.Len(t, records, 2)
	assert.Equal(t, account.KindWithdrawal, records[1].Kind)
}

func TestWithdrawal_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		deposit float64
		amount  float64
		want    error
	}{
		{"above limit", 1000, 500.01, domain.ErrExceedsWithdrawalLimit},
		{"above balance", 100, 150, domain.ErrInsufficientFunds},
		{"zero", 100, 0, domain.ErrInvalidAmount},
		{"negative", 100, -20, domain.ErrInvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := newChecking(t)
			require.NoError(t, transaction.NewDeposit(money.Must(tt.deposit, money.BRL)).Apply(acc))
			before := acc.Balance()

			err := transaction.NewWithdrawal(money.Must(tt.amount, money.BRL)).Apply(acc)
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, acc.Balance().Equals(before))
			assert.Equal(t, 1, acc.History().Len())
		})
	}
}

func TestWithdrawal_FourthInARowFails(t *testing.T) {
	acc := newChecking(t)
	require.NoError(t, transaction.NewDeposit(money.Must(1000, money.BRL)).Apply(acc))

	w := transaction.NewWithdrawal(money.Must(100, money.BRL))
	for i := 0; i < 3; i++ {
		require.NoError(t, w.Apply(acc), "withdrawal %d", i+1)
	}
	assert.ErrorIs(t, w.Apply(acc), domain.ErrDailyWithdrawalLimitExceeded)
	assert.Equal(t, "700.00 BRL", acc.Balance().String())
	assert.Equal(t, 3, acc.History().Count(account.KindWithdrawal))
}

func TestBalanceIsSignedSumOfHistory(t *testing.T) {
	acc := newChecking(t)
	steps := []transaction.Transaction{
		transaction.NewDeposit(money.Must(300, money.BRL)),
		transaction.NewWithdrawal(money.Must(120.10, money.BRL)),
		transaction.NewWithdrawal(money.Must(600, money.BRL)),
		transaction.NewDeposit(money.Must(-5, money.BRL)),
		transaction.NewDeposit(money.Must(45.35, money.BRL)),
		transaction.NewWithdrawal(money.Must(500, money.BRL)),
	}
	for _, tx := range steps {
		_ = tx.Apply(acc)
	}

	sum := money.Zero(money.BRL)
	for _, r := range acc.History().Records() {
		var err error
		if r.Kind == account.KindDeposit {
			sum, err = sum.Add(r.Amount)
		} else {
			sum, err = sum.Subtract(r.Amount)
		}
		require.NoError(t, err)
	}
	assert.True(t, sum.Equals(acc.Balance()), "balance %s, history sum %s", acc.Balance(), sum)
	assert.Equal(t, "225.25 BRL", acc.Balance().String())
}
