package transfer

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateTransferRequest is the request body for creating a transfer.
type CreateTransferRequest struct {
	FromAccountID uuid.UUID       `json:"from_account_id" validate:"required"`
	ToAccountID   uuid.UUID       `json:"to_account_id" validate:"required"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description" validate:"omitempty,max=255"`
}
