package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentRead is a read-optimized DTO for payment queries and API
// responses. Account and Creditor carry the referenced records on
// reads; they stay nil when the reference dangles after a deletion.
type PaymentRead struct {
	ID          uuid.UUID        `json:"id"`
	AccountID   uuid.UUID        `json:"account_id"`
	CreditorID  uuid.UUID        `json:"creditor_id"`
	Amount      decimal.Decimal  `json:"amount"`
	GrossAmount *decimal.Decimal `json:"gross_amount,omitempty"`
	TaxRate     *decimal.Decimal `json:"tax_rate,omitempty"`
	TaxAmount   *decimal.Decimal `json:"tax_amount,omitempty"`
	NetAmount   *decimal.Decimal `json:"net_amount,omitempty"`
	PaymentDate time.Time        `json:"payment_date"`
	Status      string           `json:"status"`
	Account     *AccountRead     `json:"account,omitempty"`
	Creditor    *CreditorRead    `json:"creditor,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

// PaymentCreate is a DTO for creating a new payment. Amount and
// GrossAmount are both optional at this layer; the service resolves
// which one drives the debit.
type PaymentCreate struct {
	AccountID   uuid.UUID
	CreditorID  uuid.UUID
	Amount      *decimal.Decimal
	GrossAmount *decimal.Decimal
	TaxRate     *decimal.Decimal
	PaymentDate time.Time
	Status      string
}
