package domain

import "errors"

// Ledger errors. All of them are recoverable business-rule failures; callers
// match them with errors.Is and decide whether to retry.
var (
	// ErrInvalidAmount is returned when a deposit or withdrawal amount is not positive.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInsufficientFunds is returned when a withdrawal exceeds the account balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrExceedsWithdrawalLimit is returned when a single withdrawal is above
	// the account's per-transaction limit.
	ErrExceedsWithdrawalLimit = errors.New("withdrawal exceeds per-transaction limit")

	// ErrDailyWithdrawalLimitExceeded is returned once an account has used up
	// its allowed number of withdrawals.
	ErrDailyWithdrawalLimitExceeded = errors.New("maximum number of withdrawals exceeded")

	// ErrAccountNotOwned is returned when a client operates on an account that is not theirs.
	ErrAccountNotOwned = errors.New("account does not belong to client")

	// ErrDuplicateTaxID is returned when registering a client whose tax id is already taken.
	ErrDuplicateTaxID = errors.New("client with this tax id already exists")

	// ErrInvalidAccountNumber is returned when an account number is zero or negative.
	ErrInvalidAccountNumber = errors.New("account number must be positive")

	// ErrDuplicateAccountNumber is returned when opening an account under a number already in use.
	ErrDuplicateAccountNumber = errors.New("account number already in use")

	// ErrClientNotFound is returned when no client matches a tax id.
	ErrClientNotFound = errors.New("client not found")

	// ErrAccountNotFound is returned when an account cannot be resolved.
	ErrAccountNotFound = errors.New("account not found")

	// ErrNilHolder is returned when an account is built without an owning client.
	ErrNilHolder = errors.New("account holder is required")

	// ErrNilAccount is returned when a nil account is passed to an operation.
	ErrNilAccount = errors.New("nil account")

	// ErrInvalidClient is returned when client registration data fails validation.
	ErrInvalidClient = errors.New("invalid client data")

	// ErrNilTransaction is returned when a nil transaction is passed to an operation.
	ErrNilTransaction = errors.New("nil transaction")
)

var businessErrors = []error{
	ErrInvalidAmount,
	ErrInsufficientFunds,
	ErrExceedsWithdrawalLimit,
	ErrDailyWithdrawalLimitExceeded,
	ErrAccountNotOwned,
	ErrDuplicateTaxID,
	ErrInvalidAccountNumber,
	ErrDuplicateAccountNumber,
	ErrClientNotFound,
	ErrAccountNotFound,
	ErrInvalidClient,
}

// IsBusinessError reports whether err is, or wraps, one of the ledger's
// business-rule errors.
func IsBusinessError(err error) bool {
	for _, target := range businessErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
