package ledger_test

import (
	"context"

	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/domain/account"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/domain/client"
	"github.com/stretchr/testify/mock"
)

type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) Create(ctx context.Context, c *client.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClientRepository) GetByTaxID(ctx context.Context, taxID string) (*client.Client, error) {
	args := m.Called(ctx, taxID)
	if c := args.Get(0); c != nil {
		return c.(*client.Client), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockClientRepository) List(ctx context.Context) ([]*client.Client, error) {
	args := m.Called(ctx)
	if cs := args.Get(0); cs != nil {
		return cs.([]*client.Client), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(ctx context.Context, acc *account.Account) error {
	args := m.Called(ctx, acc)
	return args.Error(0)
}

func (m *MockAccountRepository) List(ctx context.Context) ([]*account.Account, error) {
	args := m.Called(ctx)
	if as := args.Get(0); as != nil {
		return as.([]*account.Account), args.Error(1)
	}
	return nil, args.Error(1)
}
