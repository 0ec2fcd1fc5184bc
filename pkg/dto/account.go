// Package dto defines the data transfer structures exchanged between
// the webapi, service and repository layers.
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountRead is a read-optimized DTO for account queries and API responses.
type AccountRead struct {
	ID             uuid.UUID       `json:"id"`
	Number         string          `json:"number"`
	Name           string          `json:"name"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// AccountCreate is a DTO for creating a new account. The current
// balance is always seeded from the initial balance.
type AccountCreate struct {
	Number         string
	Name           string
	InitialBalance decimal.Decimal
}

// AccountUpdate is a DTO for updating one or more fields of an account.
// Nil fields are left untouched. Setting InitialBalance also resets
// CurrentBalance to the same value, discarding accumulated history.
type AccountUpdate struct {
	Number         *string
	Name           *string
	InitialBalance *decimal.Decimal
	CurrentBalance *decimal.Decimal
}
