package ledger

//revive:disable

// CreateClientRequest represents the request body for registering a client.
type CreateClientRequest struct {
	TaxID     string `json:"tax_id" validate:"required,max=32"`
	Name      string `json:"name" validate:"required,min=2,max=120"`
	BirthDate string `json:"birth_date" validate:"required,datetime=2006-01-02"`
	Address   string `json:"address" validate:"max=255"`
}

// TransactionRequest represents the request body for a deposit or withdrawal.
// Amount is a decimal string such as "150.00" or "99,90".
type TransactionRequest struct {
	Amount string `json:"amount" xml:"amount" form:"amount" validate:"required,max=32"`
}

//revive:enable
