package domain

import "errors"

var (
	// ErrAccountNotFound is returned when the referenced account does not exist.
	ErrAccountNotFound = errors.New("account not found")
	// ErrCreditorNotFound is returned when the referenced creditor does not exist.
	ErrCreditorNotFound = errors.New("creditor not found")
	// ErrTransferNotFound is returned when the referenced transfer does not exist.
	ErrTransferNotFound = errors.New("transfer not found")
	// ErrPaymentNotFound is returned when the referenced payment does not exist.
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrAccountNumberTaken is returned when an account number is already in use.
	ErrAccountNumberTaken = errors.New("account number already in use")

	// ErrCreditorDocumentTaken is returned when a creditor document is
	// already registered.
	ErrCreditorDocumentTaken = errors.New("creditor document already registered")

	// ErrInsufficientFunds is returned when the source account balance cannot
	// cover the requested transfer amount at lock-check time.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidReversal is returned when deleting a transfer would drive the
	// destination account balance below zero. The transfer is kept and no
	// balance changes.
	ErrInvalidReversal = errors.New("reversal would make destination balance negative")

	// ErrSameAccount is returned when a transfer names the same account on
	// both sides.
	ErrSameAccount = errors.New("source and destination accounts must differ")

	// ErrAmountMustBePositive is returned for non-positive transfer or
	// deposit amounts.
	ErrAmountMustBePositive = errors.New("amount must be positive")

	// ErrAmountMustBeNonNegative is returned for negative payment amounts.
	ErrAmountMustBeNonNegative = errors.New("amount must not be negative")

	// ErrInvalidTaxRate is returned when a tax rate is outside [0, 100].
	ErrInvalidTaxRate = errors.New("tax rate must be between 0 and 100")

	// ErrInvalidPaymentStatus is returned for an unknown payment status.
	ErrInvalidPaymentStatus = errors.New("invalid payment status")

	// ErrMissingPaymentAmount is returned when neither an amount nor a gross
	// amount was supplied for a payment.
	ErrMissingPaymentAmount = errors.New("payment requires an amount or a gross amount")
)
