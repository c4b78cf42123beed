package repository

import (
	"context"
	"testing"
	"time"

	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/domain"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/domain/account"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/domain/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustClient(t *testing.T, cpf string) *client.Client {
	t.Helper()
	c, err := client.NewIndividual("Cliente "+cpf, cpf, time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), "Rua X")
	require.NoError(t, err)
	return c
}

func TestClientRepository(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewClientRepository()

	a := mustClient(t, "111")
	b := mustClient(t, "222")
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	t.Run("duplicate tax id", func(t *testing.T) {
		err := repo.Create(ctx, mustClient(t, " 111 "))
		assert.ErrorIs(t, err, domain.ErrDuplicateTaxID)
	})

	t.Run("get by tax id", func(t *testing.T) {
		got, err := repo.GetByTaxID(ctx, "222")
		require.NoError(t, err)
		assert.Same(t, b, got)

		_, err = repo.GetByTaxID(ctx, "999")
		assert.ErrorIs(t, err, domain.ErrClientNotFound)
	})

	t.Run("list keeps creation order", func(t *testing.T) {
		all, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Same(t, a, all[0])
		assert.Same(t, b, all[1])
	})

	t.Run("nil client", func(t *testing.T) {
		assert.ErrorIs(t, repo.Create(ctx, nil), domain.ErrInvalidClient)
	})
}

func TestAccountRepository(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewAccountRepository()
	holder := mustClient(t, "333")

	var created []*account.Account
	for n := 1; n <= 3; n++ {
		acc, err := account.NewCheckingAccount(holder, n)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, acc))
		created = append(created, acc)
	}
	assert.ErrorIs(t, repo.Create(ctx, nil), domain.ErrNilAccount)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i := range created {
		assert.Same(t, created[i], all[i])
	}

	all[0] = nil
	again, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, again[0], "list must return a snapshot")
}

func TestAccountRepository_RejectsBadNumbers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewAccountRepository()
	holder := mustClient(t, "444")

	first, err := account.NewCheckingAccount(holder, 1)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, first))

	dup, err := account.NewCheckingAccount(mustClient(t, "555"), 1)
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Create(ctx, dup), domain.ErrDuplicateAccountNumber)

	for _, n := range []int{0, -7} {
		acc, err := account.NewCheckingAccount(holder, n)
		require.NoError(t, err)
		assert.ErrorIs(t, repo.Create(ctx, acc), domain.ErrInvalidAccountNumber, n)
	}

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Same(t, first, all[0])
}

func TestCanceledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	clients := NewClientRepository()
	assert.ErrorIs(t, clients.Create(ctx, mustClient(t, "1")), context.Canceled)
	_, err := clients.GetByTaxID(ctx, "1")
	assert.ErrorIs(t, err, context.Canceled)

	accounts := NewAccountRepository()
	_, err = accounts.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
