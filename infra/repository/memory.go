// Package repository provides the in-memory storage behind the ledger ports.
// Records live for the lifetime of the process.
package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/domain"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/domain/account"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/domain/client"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/repository"
)

type clientRepository struct {
	mu      sync.RWMutex
	clients []*client.Client
	byTaxID map[string]*client.Client
}

// NewClientRepository returns an empty in-memory client store.
func NewClientRepository() repository.ClientRepository {
	return &clientRepository{byTaxID: make(map[string]*client.Client)}
}

func normalizeTaxID(taxID string) string {
	return strings.TrimSpace(taxID)
}

func (r *clientRepository) Create(ctx context.Context, c *client.Client) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c == nil {
		return domain.ErrInvalidClient
	}
	key := normalizeTaxID(c.TaxID())

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byTaxID[key]; ok {
		return domain.ErrDuplicateTaxID
	}
	r.byTaxID[key] = c
	r.clients = append(r.clients, c)
	return nil
}

func (r *clientRepository) GetByTaxID(ctx context.Context, taxID string) (*client.Client, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byTaxID[normalizeTaxID(taxID)]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	return c, nil
}

func (r *clientRepository) List(ctx context.Context) ([]*client.Client, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*client.Client, len(r.clients))
	copy(out, r.clients)
	return out, nil
}

type accountRepository struct {
	mu       sync.RWMutex
	accounts []*account.Account
	byNumber map[int]*account.Account
}

// NewAccountRepository returns an empty in-memory account store. Account
// numbers are unique across the store and must be positive.
func NewAccountRepository() repository.AccountRepository {
	return &accountRepository{byNumber: make(map[int]*account.Account)}
}

func (r *accountRepository) Create(ctx context.Context, acc *account.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if acc == nil {
		return domain.ErrNilAccount
	}
	if acc.Number <= 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidAccountNumber, acc.Number)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.byNumber[acc.Number]; taken {
		return fmt.Errorf("%w: %d", domain.ErrDuplicateAccountNumber, acc.Number)
	}
	r.accounts = append(r.accounts, acc)
	r.byNumber[acc.Number] = acc
	return nil
}

func (r *accountRepository) List(ctx context.Context) ([]*account.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*account.Account, len(r.accounts))
	copy(out, r.accounts)
	return out, nil
}
