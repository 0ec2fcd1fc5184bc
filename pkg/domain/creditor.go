package domain

import (
	"time"

	"github.com/google/uuid"
)

// Creditor is a payment recipient. It carries no balance; payments
// reference it as descriptive data only.
type Creditor struct {
	ID        uuid.UUID
	Name      string
	Document  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
