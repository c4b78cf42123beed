// Package events defines the facts the ledger publishes after it changes
// state.
package events

import (
	"time"

	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/domain/account"
	"github.com/Krsoliveira/Sistema-bancario-DIO-PRO/pkg/money"
	"github.com/google/uuid"
)

// EventType represents the type of an event in the system.
type EventType string

// Event type constants
const (
	EventTypeClientCreated       EventType = "Client.Created"
	EventTypeAccountOpened       EventType = "Account.Opened"
	EventTypeDepositPosted       EventType = "Deposit.Posted"
	EventTypeWithdrawPosted      EventType = "Withdraw.Posted"
	EventTypeTransactionRejected EventType = "Transaction.Rejected"
)

// AllTypes lists every event type the ledger publishes.
func AllTypes() []EventType {
	return []EventType{
		EventTypeClientCreated,
		EventTypeAccountOpened,
		EventTypeDepositPosted,
		EventTypeWithdrawPosted,
		EventTypeTransactionRejected,
	}
}

// Event is implemented by every ledger event.
type Event interface {
	Type() EventType
}

// ClientCreatedEvent is emitted after a client is registered.
type ClientCreatedEvent struct {
	ClientID  uuid.UUID
	TaxID     string
	Timestamp time.Time
}

func (ClientCreatedEvent) Type() EventType { return EventTypeClientCreated }

// AccountOpenedEvent is emitted after an account is created and linked to its holder.
type AccountOpenedEvent struct {
	ClientID  uuid.UUID
	TaxID     string
	Branch    string
	Number    int
	Timestamp time.Time
}

func (AccountOpenedEvent) Type() EventType { return EventTypeAccountOpened }

// TransactionPostedEvent is emitted after a deposit or withdrawal is applied
// and journaled.
type TransactionPostedEvent struct {
	RecordID  uuid.UUID
	Kind      account.Kind
	TaxID     string
	Number    int
	Amount    money.Money
	Balance   money.Money
	Timestamp time.Time
}

func (e TransactionPostedEvent) Type() EventType {
	if e.Kind == account.KindWithdrawal {
		return EventTypeWithdrawPosted
	}
	return EventTypeDepositPosted
}

// TransactionRejectedEvent is emitted when an account refuses a transaction.
// Balance and history are unchanged.
type TransactionRejectedEvent struct {
	Kind      account.Kind
	TaxID     string
	Number    int
	Amount    money.Money
	Reason    string
	Timestamp time.Time
}

func (TransactionRejectedEvent) Type() EventType { return EventTypeTransactionRejected }
