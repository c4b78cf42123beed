// Package ledger provides the business operations of the bank: registering
// clients, opening accounts, posting deposits and withdrawals and producing
// statements.
//
// The Service owns the client and account stores, the account number sequence
// and the checking policy every new account receives. Every operation is
// wrapped by the logging decorator, and a service-wide lock serializes
// mutations so the same Service can be shared by concurrent callers.
//
// Clients and accounts handed out by the Service are snapshots copied while
// the lock is held. They never change after they are returned; postings go
// through Deposit and Withdraw.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/config"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/decorator"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/domain"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/domain/account"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/domain/client"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/domain/events"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/domain/transaction"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/eventbus"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/money"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/repository"
	"github.com/go-playground/validator/v10"
)

// Service provides the ledger operations.
type Service struct {
	mu sync.RWMutex

	clients  repository.ClientRepository
	accounts repository.AccountRepository
	bus      eventbus.Bus
	op       decorator.OperationDecorator
	logger   *slog.Logger
	validate *validator.Validate

	branch     string
	currency   money.Currency
	policy     account.CheckingPolicy
	nextNumber int
	clock      func() time.Time
}

// NewService creates a new Service with the provided dependencies. A nil
// deps.Config means the built-in defaults.
func NewService(deps config.Deps) (*Service, error) {
	if deps.ClientRepository == nil || deps.AccountRepository == nil {
		return nil, errors.New("ledger: client and account repositories are required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := deps.Config
	if cfg == nil {
		cfg = config.Default()
	}
	branch, currency, policy, err := settingsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	return &Service{
		clients:    deps.ClientRepository,
		accounts:   deps.AccountRepository,
		bus:        deps.EventBus,
		op:         decorator.NewLoggingDecorator(logger),
		logger:     logger,
		validate:   validator.New(),
		branch:     branch,
		currency:   currency,
		policy:     policy,
		nextNumber: 1,
		clock:      time.Now,
	}, nil
}

func settingsFromConfig(cfg *config.App) (string, money.Currency, account.CheckingPolicy, error) {
	def := config.Default()
	bank, checking := cfg.Bank, cfg.Checking
	if bank == nil {
		bank = def.Bank
	}
	if checking == nil {
		checking = def.Checking
	}

	currency := money.Code(strings.ToUpper(bank.Currency)).ToCurrency()
	if !currency.IsValid() {
		return "", money.Currency{}, account.CheckingPolicy{},
			fmt.Errorf("ledger: %w: %q", money.ErrInvalidCurrency, bank.Currency)
	}
	limit, err := money.Parse(checking.WithdrawalLimit, currency)
	if err != nil {
		return "", money.Currency{}, account.CheckingPolicy{},
			fmt.Errorf("ledger: withdrawal limit: %w", err)
	}
	if !limit.IsPositive() {
		return "", money.Currency{}, account.CheckingPolicy{},
			fmt.Errorf("ledger: withdrawal limit must be positive, got %s", limit)
	}
	if checking.MaxWithdrawals < 0 {
		return "", money.Currency{}, account.CheckingPolicy{},
			fmt.Errorf("ledger: max withdrawals must not be negative, got %d", checking.MaxWithdrawals)
	}
	window, err := account.ParseWithdrawalWindow(checking.WithdrawalWindow)
	if err != nil {
		return "", money.Currency{}, account.CheckingPolicy{}, fmt.Errorf("ledger: %w", err)
	}
	branch := bank.Branch
	if branch == "" {
		branch = account.DefaultBranch
	}
	return branch, currency, account.CheckingPolicy{
		Limit:          limit,
		MaxWithdrawals: checking.MaxWithdrawals,
		Window:         window,
	}, nil
}

// WithClock replaces the clock used by the accounts the service opens.
func (s *Service) WithClock(now func() time.Time) *Service {
	if now != nil {
		s.clock = now
	}
	return s
}

// Currency returns the currency accounts are opened in.
func (s *Service) Currency() money.Currency { return s.currency }

// CheckingPolicy returns the policy new accounts are opened with.
func (s *Service) CheckingPolicy() account.CheckingPolicy { return s.policy }

// ParseAmount parses a user supplied amount in the service currency. Malformed
// input is reported as domain.ErrInvalidAmount.
func (s *Service) ParseAmount(input string) (money.Money, error) {
	m, err := money.Parse(input, s.currency)
	if err != nil {
		return money.Money{}, fmt.Errorf("%w: %v", domain.ErrInvalidAmount, err)
	}
	return m, nil
}

// CreateClient registers a new individual client. It fails with
// domain.ErrInvalidClient when in does not validate and with
// domain.ErrDuplicateTaxID when the tax id is taken.
func (s *Service) CreateClient(ctx context.Context, in NewClientInput) (c *client.Client, err error) {
	err = s.op.Execute(ctx, "CreateClient", func() error {
		in.normalize()
		if verr := s.validate.Struct(in); verr != nil {
			return fmt.Errorf("%w: %v", domain.ErrInvalidClient, verr)
		}
		created, cerr := client.NewIndividual(in.Name, in.TaxID, in.BirthDate, in.Address)
		if cerr != nil {
			return cerr
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		if cerr = s.clients.Create(ctx, created); cerr != nil {
			return cerr
		}
		c = created.Snapshot()
		return nil
	}, "tax_id", in.TaxID)
	if err == nil {
		s.publish(ctx, events.ClientCreatedEvent{ClientID: c.ID, TaxID: c.TaxID(), Timestamp: c.CreatedAt})
	}
	return c, err
}

// FindClientByTaxID returns the client registered under taxID or
// domain.ErrClientNotFound.
func (s *Service) FindClientByTaxID(ctx context.Context, taxID string) (*client.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, err := s.clients.GetByTaxID(ctx, taxID)
	if err != nil {
		return nil, err
	}
	return c.Snapshot(), nil
}

// ListClients returns every client in registration order.
func (s *Service) ListClients(ctx context.Context) ([]*client.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	clients, err := s.clients.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*client.Client, len(clients))
	for i, c := range clients {
		out[i] = c.Snapshot()
	}
	return out, nil
}

// CreateAccount opens a checking account numbered number for the registered
// client c. The number must be positive and not in use. Numbers handed out
// later by OpenAccount always follow the highest one seen.
func (s *Service) CreateAccount(ctx context.Context, c *client.Client, number int) (acc *account.Account, err error) {
	var owner *client.Client
	err = s.op.Execute(ctx, "CreateAccount", func() error {
		if c == nil {
			return domain.ErrNilHolder
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		var cerr error
		owner, cerr = s.clients.GetByTaxID(ctx, c.TaxID())
		if cerr != nil {
			return cerr
		}
		acc, cerr = s.createAccount(ctx, owner, number)
		return cerr
	}, "number", number)
	if err == nil {
		s.publishOpened(ctx, owner, acc)
	}
	return acc, err
}

// OpenAccount opens the next sequentially numbered checking account for the
// client registered under taxID. The sequence starts at 1 and only advances
// when an account is actually created.
func (s *Service) OpenAccount(ctx context.Context, taxID string) (acc *account.Account, err error) {
	var c *client.Client
	err = s.op.Execute(ctx, "OpenAccount", func() error {
		s.mu.Lock()
		defer s.mu.Unlock()
		var cerr error
		c, cerr = s.clients.GetByTaxID(ctx, taxID)
		if cerr != nil {
			return cerr
		}
		acc, cerr = s.createAccount(ctx, c, s.nextNumber)
		return cerr
	}, "tax_id", taxID)
	if err == nil {
		s.publishOpened(ctx, c, acc)
	}
	return acc, err
}

func (s *Service) publishOpened(ctx context.Context, c *client.Client, acc *account.Account) {
	s.publish(ctx, events.AccountOpenedEvent{
		ClientID:  c.ID,
		TaxID:     c.TaxID(),
		Branch:    acc.Branch,
		Number:    acc.Number,
		Timestamp: acc.CreatedAt,
	})
}

// createAccount must be called with s.mu held. It returns a snapshot of the
// new account.
func (s *Service) createAccount(ctx context.Context, c *client.Client, number int) (*account.Account, error) {
	if c == nil {
		return nil, domain.ErrNilHolder
	}
	if number <= 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidAccountNumber, number)
	}
	acc, err := account.New().
		WithHolder(c).
		WithNumber(number).
		WithBranch(s.branch).
		WithCurrency(s.currency).
		WithPolicy(s.policy).
		WithClock(s.clock).
		Build()
	if err != nil {
		return nil, err
	}
	if err = s.accounts.Create(ctx, acc); err != nil {
		return nil, err
	}
	if err = c.AddAccount(acc); err != nil {
		return nil, err
	}
	if number >= s.nextNumber {
		s.nextNumber = number + 1
	}
	return acc.Snapshot(), nil
}

// ListAccounts returns every account in creation order.
func (s *Service) ListAccounts(ctx context.Context) ([]*account.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*account.Account, len(accounts))
	for i, acc := range accounts {
		out[i] = acc.Snapshot()
	}
	return out, nil
}

// Deposit credits amount to account number of the client registered under
// taxID and returns the new balance.
func (s *Service) Deposit(ctx context.Context, taxID string, number int, amount money.Money) (money.Money, error) {
	return s.post(ctx, "Deposit", taxID, number, transaction.NewDeposit(amount))
}

// Withdraw debits amount from account number of the client registered under
// taxID and returns the new balance.
func (s *Service) Withdraw(ctx context.Context, taxID string, number int, amount money.Money) (money.Money, error) {
	return s.post(ctx, "Withdraw", taxID, number, transaction.NewWithdrawal(amount))
}

func (s *Service) post(
	ctx context.Context,
	name, taxID string,
	number int,
	tx transaction.Transaction,
) (balance money.Money, err error) {
	var evt events.Event
	err = s.op.Execute(ctx, name, func() error {
		s.mu.Lock()
		defer s.mu.Unlock()
		c, acc, rerr := s.resolve(ctx, taxID, number)
		if rerr != nil {
			return rerr
		}
		if rerr = c.ExecuteTransaction(acc, tx); rerr != nil {
			evt = events.TransactionRejectedEvent{
				Kind:      tx.Kind(),
				TaxID:     c.TaxID(),
				Number:    acc.Number,
				Amount:    tx.Amount(),
				Reason:    rerr.Error(),
				Timestamp: acc.Now(),
			}
			return rerr
		}
		balance = acc.Balance()
		posted := events.TransactionPostedEvent{
			Kind:    tx.Kind(),
			TaxID:   c.TaxID(),
			Number:  acc.Number,
			Amount:  tx.Amount(),
			Balance: balance,
		}
		if r, ok := acc.History().Last(); ok {
			posted.RecordID = r.ID
			posted.Timestamp = r.Timestamp
		}
		evt = posted
		return nil
	}, "tax_id", taxID, "number", number, "amount", tx.Amount().String())
	if evt != nil {
		s.publish(ctx, evt)
	}
	return balance, err
}

// publish delivers evt outside the service lock so handlers may call back
// into the service. Delivery failures are logged, never returned.
func (s *Service) publish(ctx context.Context, evt events.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		s.logger.Warn("Failed to publish event", "event_type", evt.Type(), "error", err)
	}
}

// Statement returns the journal and balance of account number of the client
// registered under taxID.
func (s *Service) Statement(ctx context.Context, taxID string, number int) (st Statement, err error) {
	err = s.op.Execute(ctx, "Statement", func() error {
		s.mu.RLock()
		defer s.mu.RUnlock()
		_, acc, rerr := s.resolve(ctx, taxID, number)
		if rerr != nil {
			return rerr
		}
		st = StatementOf(acc)
		return nil
	}, "tax_id", taxID, "number", number)
	return st, err
}

func (s *Service) resolve(ctx context.Context, taxID string, number int) (*client.Client, *account.Account, error) {
	c, err := s.clients.GetByTaxID(ctx, taxID)
	if err != nil {
		return nil, nil, err
	}
	acc, err := SelectAccount(c, number)
	if err != nil {
		return nil, nil, err
	}
	return c, acc, nil
}

// SelectAccount resolves one of c's accounts. A number of zero selects the
// client's only account; it is ambiguous when the client has several.
func SelectAccount(c *client.Client, number int) (*account.Account, error) {
	if c == nil {
		return nil, domain.ErrClientNotFound
	}
	accounts := c.Accounts()
	if len(accounts) == 0 {
		return nil, fmt.Errorf("%w: client has no accounts", domain.ErrAccountNotFound)
	}
	if number == 0 {
		if len(accounts) == 1 {
			return accounts[0], nil
		}
		return nil, fmt.Errorf("%w: client has %d accounts, choose one", domain.ErrAccountNotFound, len(accounts))
	}
	acc, ok := c.AccountByNumber(number)
	if !ok {
		return nil, fmt.Errorf("%w: number %d", domain.ErrAccountNotFound, number)
	}
	return acc, nil
}

// FindClientByTaxID returns the client in clients whose tax id is taxID, or
// nil when there is none.
func FindClientByTaxID(taxID string, clients []*client.Client) *client.Client {
	taxID = strings.TrimSpace(taxID)
	for _, c := range clients {
		if c != nil && c.TaxID() == taxID {
			return c
		}
	}
	return nil
}
