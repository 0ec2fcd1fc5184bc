// Package domain holds the ledger entities and the invariants that the
// services enforce around balance mutation.
package domain

import (
	"bytes"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account is a balance-bearing entity identified by a unique number.
// CurrentBalance is only ever changed through deposits, transfers and
// payments, all of which run under a row lock inside one transaction.
type Account struct {
	ID             uuid.UUID
	Number         string
	Name           string
	InitialBalance decimal.Decimal
	CurrentBalance decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// LockOrder returns the two ids in canonical locking order. Every
// operation that locks two account rows acquires them in this order so
// that opposite-direction transfers cannot deadlock each other.
func LockOrder(a, b uuid.UUID) (first, second uuid.UUID) {
	if bytes.Compare(a[:], b[:]) <= 0 {
		return a, b
	}
	return b, a
}
