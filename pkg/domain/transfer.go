package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transfer records an atomic balance movement between two distinct
// accounts. Once committed it is immutable; the only way to undo it is
// deletion, which reverses both balance mutations in the same
// transaction.
type Transfer struct {
	ID            uuid.UUID
	FromAccountID uuid.UUID
	ToAccountID   uuid.UUID
	Amount        decimal.Decimal
	Description   string
	CreatedAt     time.Time
}

// ValidateTransfer checks the preconditions that do not require a lock:
// distinct accounts and a positive amount.
func ValidateTransfer(from, to uuid.UUID, amount decimal.Decimal) error {
	if from == to {
		return ErrSameAccount
	}
	if !amount.IsPositive() {
		return ErrAmountMustBePositive
	}
	return nil
}
