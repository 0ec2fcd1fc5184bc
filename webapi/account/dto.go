package account

import "github.com/shopspring/decimal"

// CreateAccountRequest is the request body for creating an account.
type CreateAccountRequest struct {
	Number         string          `json:"number" validate:"required,max=255"`
	Name           string          `json:"name" validate:"required,max=255"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
}

// UpdateAccountRequest is the request body for partially updating an
// account. Absent fields are left untouched.
type UpdateAccountRequest struct {
	Number         *string          `json:"number" validate:"omitempty,max=255"`
	Name           *string          `json:"name" validate:"omitempty,max=255"`
	InitialBalance *decimal.Decimal `json:"initial_balance"`
	CurrentBalance *decimal.Decimal `json:"current_balance"`
}

// DepositRequest is the request body for depositing into an account.
type DepositRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description" validate:"omitempty,max=1000"`
}
