package payment

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest is the request body for creating a payment.
// Either amount or gross_amount must be present; with gross_amount the
// debit is the net of tax.
type CreatePaymentRequest struct {
	AccountID   uuid.UUID        `json:"account_id" validate:"required"`
	CreditorID  uuid.UUID        `json:"creditor_id" validate:"required"`
	Amount      *decimal.Decimal `json:"amount"`
	GrossAmount *decimal.Decimal `json:"gross_amount"`
	TaxRate     *decimal.Decimal `json:"tax_rate"`
	PaymentDate string           `json:"payment_date" validate:"required,datetime=2006-01-02"`
	Status      string           `json:"status" validate:"omitempty,oneof=pending completed failed"`
}
