// Package client holds the bank's customers and the accounts they own.
package client

import (
	"errors"
	"strings"
	"time"

	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/domain"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/domain/account"
	"github.com/google/uuid"
)

// ProfileKind identifies the legal nature of a client.
type ProfileKind string

// ProfileIndividual is a natural person identified by a CPF.
const ProfileIndividual ProfileKind = "individual"

// Profile carries the identity data of a client. Individual is the only
// implementation today; companies would add another.
type Profile interface {
	Kind() ProfileKind
	TaxID() string
	DisplayName() string
}

// Individual is the profile of a natural person.
type Individual struct {
	Name      string    `json:"name"`
	CPF       string    `json:"cpf"`
	BirthDate time.Time `json:"birth_date"`
}

// Kind implements Profile.
func (Individual) Kind() ProfileKind { return ProfileIndividual }

// TaxID implements Profile.
func (i Individual) TaxID() string { return i.CPF }

// DisplayName implements Profile.
func (i Individual) DisplayName() string { return i.Name }

// Client is a bank customer: an identity, an address and the accounts it owns,
// kept in the order they were added.
type Client struct {
	ID        uuid.UUID
	Profile   Profile
	Address   string
	CreatedAt time.Time

	accounts []*account.Account
}

// New creates a client with no accounts.
func New(profile Profile, address string) (*Client, error) {
	if profile == nil {
		return nil, errors.Join(domain.ErrInvalidClient, errors.New("profile is required"))
	}
	if strings.TrimSpace(profile.TaxID()) == "" {
		return nil, errors.Join(domain.ErrInvalidClient, errors.New("tax id cannot be empty"))
	}
	return &Client{
		ID:        uuid.New(),
		Profile:   profile,
		Address:   address,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// NewIndividual is a shorthand for New with an Individual profile.
func NewIndividual(name, cpf string, birthDate time.Time, address string) (*Client, error) {
	return New(Individual{Name: name, CPF: cpf, BirthDate: birthDate}, address)
}

// TaxID returns the tax id of the client's profile.
func (c *Client) TaxID() string { return c.Profile.TaxID() }

// Name returns the display name of the client's profile.
func (c *Client) Name() string { return c.Profile.DisplayName() }

// HolderID implements account.Holder.
func (c *Client) HolderID() uuid.UUID { return c.ID }

// HolderName implements account.Holder.
func (c *Client) HolderName() string { return c.Name() }

// AddAccount appends acc to the client's accounts. Adding the same account
// twice is a no-op.
func (c *Client) AddAccount(acc *account.Account) error {
	if acc == nil {
		return domain.ErrNilAccount
	}
	if c.Owns(acc) {
		return nil
	}
	c.accounts = append(c.accounts, acc)
	return nil
}

// Accounts returns the client's accounts in the order they were added.
func (c *Client) Accounts() []*account.Account {
	out := make([]*account.Account, len(c.accounts))
	copy(out, c.accounts)
	return out
}

// Owns reports whether acc is one of the client's accounts.
func (c *Client) Owns(acc *account.Account) bool {
	for _, a := range c.accounts {
		if a == acc {
			return true
		}
	}
	return false
}

// AccountByNumber returns the client's account with the given number.
func (c *Client) AccountByNumber(number int) (*account.Account, bool) {
	for _, a := range c.accounts {
		if a.Number == number {
			return a, true
		}
	}
	return nil, false
}

// Snapshot returns a copy of c whose accounts are snapshots of c's accounts.
// Changes to c made afterwards are not visible through the copy.
func (c *Client) Snapshot() *Client {
	cp := *c
	cp.accounts = make([]*account.Account, len(c.accounts))
	for i, a := range c.accounts {
		cp.accounts[i] = a.Snapshot()
	}
	return &cp
}

// Applier is anything that can be applied to an account.
type Applier interface {
	Apply(acc *account.Account) error
}

// ExecuteTransaction applies tx to acc on behalf of the client. The account
// must belong to the client.
func (c *Client) ExecuteTransaction(acc *account.Account, tx Applier) error {
	if acc == nil {
		return domain.ErrNilAccount
	}
	if tx == nil {
		return domain.ErrNilTransaction
	}
	if !c.Owns(acc) {
		return domain.ErrAccountNotOwned
	}
	return tx.Apply(acc)
}
