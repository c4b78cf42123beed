package ledger

import (
	"context"
	"time"

	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/mapper"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/money"
	ledgersvc "github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/service/ledger"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// Routes registers HTTP routes for the ledger operations.
//
// Routes:
//   - POST   /clients                                      : Register a client.
//   - GET    /clients/:taxId                               : Get a client by tax id.
//   - POST   /clients/:taxId/accounts                      : Open a checking account for the client.
//   - GET    /accounts                                     : List every account.
//   - POST   /clients/:taxId/accounts/:number/deposit      : Deposit into an account.
//   - POST   /clients/:taxId/accounts/:number/withdraw     : Withdraw from an account.
//   - GET    /clients/:taxId/accounts/:number/statement    : Account statement.
func Routes(app *fiber.App, svc *ledgersvc.Service) {
	app.Post("/clients", CreateClient(svc))
	app.Get("/clients/:taxId", GetClient(svc))
	app.Post("/clients/:taxId/accounts", OpenAccount(svc))
	app.Get("/accounts", ListAccounts(svc))
	app.Post("/clients/:taxId/accounts/:number/deposit", Deposit(svc))
	app.Post("/clients/:taxId/accounts/:number/withdraw", Withdraw(svc))
	app.Get("/clients/:taxId/accounts/:number/statement", Statement(svc))
}

// CreateClient returns a Fiber handler that registers an individual client.
// Responds 201 with the client, 400 on invalid input and 409 when the tax id
// is already registered.
func CreateClient(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateClientRequest](c)
		if input == nil {
			return err // error response already written
		}
		birthDate, err := time.Parse("2006-01-02", input.BirthDate)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid birth date", err, fiber.StatusBadRequest)
		}
		created, err := svc.CreateClient(c.UserContext(), ledgersvc.NewClientInput{
			TaxID:     input.TaxID,
			Name:      input.Name,
			BirthDate: birthDate,
			Address:   input.Address,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to create client", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Client created", mapper.MapClientToRead(created))
	}
}

// GetClient returns a Fiber handler that fetches a client by tax id.
func GetClient(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		found, err := svc.FindClientByTaxID(c.UserContext(), c.Params("taxId"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Client not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Client fetched", mapper.MapClientToRead(found))
	}
}

// OpenAccount returns a Fiber handler that opens the next numbered checking
// account for a client.
func OpenAccount(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		acc, err := svc.OpenAccount(c.UserContext(), c.Params("taxId"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to open account", err)
		}
		log.Infof("Account %d opened for %s", acc.Number, acc.Holder().HolderName())
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Account created", mapper.MapAccountToRead(acc))
	}
}

// ListAccounts returns a Fiber handler that lists every account in creation order.
func ListAccounts(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accounts, err := svc.ListAccounts(c.UserContext())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list accounts", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Accounts fetched", mapper.MapAccountsToRead(accounts))
	}
}

// Deposit returns a Fiber handler that credits an account.
func Deposit(svc *ledgersvc.Service) fiber.Handler {
	return post(svc, "Deposit successful", "Failed to deposit", svc.Deposit)
}

// Withdraw returns a Fiber handler that debits an account.
func Withdraw(svc *ledgersvc.Service) fiber.Handler {
	return post(svc, "Withdrawal successful", "Failed to withdraw", svc.Withdraw)
}

func post(
	svc *ledgersvc.Service,
	okMsg, failTitle string,
	apply func(ctx context.Context, taxID string, number int, amount money.Money) (money.Money, error),
) fiber.Handler {
	return func(c *fiber.Ctx) error {
		number, err := accountNumber(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account number", err, "Account number must be a positive integer", fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[TransactionRequest](c)
		if input == nil {
			return err // error response already written
		}
		amount, err := svc.ParseAmount(input.Amount)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid amount", err)
		}
		balance, err := apply(c.UserContext(), c.Params("taxId"), number, amount)
		if err != nil {
			return common.ProblemDetailsJSON(c, failTitle, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, okMsg, mapper.MapBalanceToRead(number, balance))
	}
}

// Statement returns a Fiber handler that renders an account statement.
func Statement(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		number, err := accountNumber(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account number", err, "Account number must be a positive integer", fiber.StatusBadRequest)
		}
		st, err := svc.Statement(c.UserContext(), c.Params("taxId"), number)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to fetch statement", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Statement fetched", mapper.MapStatementToRead(st))
	}
}

func accountNumber(c *fiber.Ctx) (int, error) {
	n, err := c.ParamsInt("number")
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "account number must be positive")
	}
	return n, nil
}
