// Package repository defines the storage ports of the ledger.
package repository

import (
	"context"

	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/domain/account"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/domain/client"
)

// ClientRepository defines the interface for client data access operations.
type ClientRepository interface {
	// Create stores a new client. It fails with domain.ErrDuplicateTaxID when
	// a client with the same tax id already exists.
	Create(ctx context.Context, c *client.Client) error

	// GetByTaxID returns the client with the given tax id or
	// domain.ErrClientNotFound.
	GetByTaxID(ctx context.Context, taxID string) (*client.Client, error)

	// List returns every client in creation order.
	List(ctx context.Context) ([]*client.Client, error)
}

// AccountRepository defines the interface for account data access operations.
type AccountRepository interface {
	// Create stores a new account.
	Create(ctx context.Context, acc *account.Account) error

	// List returns every account in creation order.
	List(ctx context.Context) ([]*account.Account, error)
}
