package app

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/infra/repository"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/config"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/service/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDeps() *config.Deps {
	return &config.Deps{
		ClientRepository:  repository.NewClientRepository(),
		AccountRepository: repository.NewAccountRepository(),
		Logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestNew(t *testing.T) {
	cfg := config.Default()
	cfg.Checking.MaxWithdrawals = 7

	a, err := New(testDeps(), cfg)
	require.NoError(t, err)
	require.NotNil(t, a.LedgerService)
	assert.Same(t, cfg, a.Config)
	assert.Same(t, cfg, a.Deps.Config)
	assert.Equal(t, 7, a.LedgerService.CheckingPolicy().MaxWithdrawals)

	_, err = a.LedgerService.CreateClient(context.Background(), ledger.NewClientInput{
		TaxID: "1", Name: "Ana", BirthDate: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.NoError(t, err)
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Checking.WithdrawalWindow = "monthly"
	_, err := New(testDeps(), cfg)
	assert.Error(t, err)
}
