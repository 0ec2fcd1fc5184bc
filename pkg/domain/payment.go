package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus is the lifecycle state of a payment.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// Valid reports whether s is one of the known payment statuses.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed:
		return true
	}
	return false
}

// Payment is a one-directional debit from an account to a creditor.
// Amount is the value actually debited: the net amount when the caller
// supplied gross/tax figures, the raw amount otherwise. Gross, tax and
// net are kept for reporting and are nil for simple-amount payments.
type Payment struct {
	ID          uuid.UUID
	AccountID   uuid.UUID
	CreditorID  uuid.UUID
	Amount      decimal.Decimal
	GrossAmount *decimal.Decimal
	TaxRate     *decimal.Decimal
	TaxAmount   *decimal.Decimal
	NetAmount   *decimal.Decimal
	PaymentDate time.Time
	Status      PaymentStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PaymentAmounts carries the resolved figures for a new payment.
type PaymentAmounts struct {
	Amount      decimal.Decimal
	GrossAmount *decimal.Decimal
	TaxRate     *decimal.Decimal
	TaxAmount   *decimal.Decimal
	NetAmount   *decimal.Decimal
}

var oneHundred = decimal.NewFromInt(100)

// ResolvePaymentAmounts derives tax and net figures from the supplied
// inputs and picks the effective debit amount. With a gross amount the
// tax is gross * rate / 100 rounded to two decimals, the net is
// gross - tax, and the net becomes the debit amount. Without a gross
// amount the raw amount is debited as-is.
func ResolvePaymentAmounts(amount, gross, taxRate *decimal.Decimal) (PaymentAmounts, error) {
	var out PaymentAmounts

	if taxRate != nil && (taxRate.IsNegative() || taxRate.GreaterThan(oneHundred)) {
		return out, ErrInvalidTaxRate
	}

	if gross != nil {
		if gross.IsNegative() {
			return out, ErrAmountMustBeNonNegative
		}
		rate := decimal.Zero
		if taxRate != nil {
			rate = *taxRate
		}
		tax := gross.Mul(rate).Div(oneHundred).Round(2)
		net := gross.Sub(tax)

		out.GrossAmount = gross
		out.TaxRate = &rate
		out.TaxAmount = &tax
		out.NetAmount = &net
		out.Amount = net
		return out, nil
	}

	if amount == nil {
		return out, ErrMissingPaymentAmount
	}
	if amount.IsNegative() {
		return out, ErrAmountMustBeNonNegative
	}
	out.Amount = *amount
	return out, nil
}
