// Package dto holds the read models the ledger exposes to its callers.
package dto

import (
	"time"

	"github.com/google/uuid"
)

// ClientRead is a read-optimized DTO for client queries and API responses.
type ClientRead struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	TaxID     string    `json:"tax_id"`
	Name      string    `json:"name"`
	BirthDate string    `json:"birth_date,omitempty"`
	Address   string    `json:"address,omitempty"`
	Accounts  []int     `json:"accounts"`
	CreatedAt time.Time `json:"created_at"`
}

// AccountRead is a read-optimized DTO for account queries and API responses.
type AccountRead struct {
	Number         int     `json:"number"`
	Branch         string  `json:"branch"`
	Type           string  `json:"type"`
	HolderID       string  `json:"holder_id"`
	HolderName     string  `json:"holder_name"`
	Balance        float64 `json:"balance"`
	Currency       string  `json:"currency"`
	WithdrawalsMax int     `json:"withdrawals_max,omitempty"`
	WithdrawalsCap float64 `json:"withdrawal_limit,omitempty"`
}

// TransactionRead is a read-optimized DTO for a journal record.
type TransactionRead struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Timestamp time.Time `json:"timestamp"`
}

// StatementRead is the API representation of an account statement.
type StatementRead struct {
	Branch       string            `json:"branch"`
	Number       int               `json:"number"`
	HolderName   string            `json:"holder_name"`
	Transactions []TransactionRead `json:"transactions"`
	Balance      float64           `json:"balance"`
	Currency     string            `json:"currency"`
}

// BalanceRead is returned after a deposit or withdrawal.
type BalanceRead struct {
	Number   int     `json:"number"`
	Balance  float64 `json:"balance"`
	Currency string  `json:"currency"`
}
