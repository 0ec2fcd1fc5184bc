// Package model holds the gorm models for the ledger tables. It is a
// leaf package so the unit of work and the per-entity repositories can
// both depend on it.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account represents an account record in the database. Deletion is
// terminal, so there is no soft-delete column; historical transfers and
// payments keep dangling references on purpose.
type Account struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key"`
	Number         string          `gorm:"uniqueIndex;not null;size:255"`
	Name           string          `gorm:"not null;size:255"`
	InitialBalance decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	CurrentBalance decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string {
	return "accounts"
}

// AccountTransfer represents a committed transfer record.
type AccountTransfer struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key"`
	FromAccountID uuid.UUID       `gorm:"type:uuid;index;not null"`
	ToAccountID   uuid.UUID       `gorm:"type:uuid;index;not null"`
	Amount        decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	Description   string          `gorm:"size:255"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for the AccountTransfer model.
func (AccountTransfer) TableName() string {
	return "account_transfers"
}

// Payment represents a payment record. Gross, tax and net columns are
// nullable: simple-amount payments never set them. The Account and
// Creditor associations are preloaded for reads; they stay nil when
// the referenced row was deleted.
type Payment struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key"`
	AccountID   uuid.UUID        `gorm:"type:uuid;index;not null"`
	CreditorID  uuid.UUID        `gorm:"type:uuid;index;not null"`
	Amount      decimal.Decimal  `gorm:"type:numeric(15,2);not null"`
	GrossAmount *decimal.Decimal `gorm:"type:numeric(15,2)"`
	TaxRate     *decimal.Decimal `gorm:"type:numeric(5,2)"`
	TaxAmount   *decimal.Decimal `gorm:"type:numeric(15,2)"`
	NetAmount   *decimal.Decimal `gorm:"type:numeric(15,2)"`
	PaymentDate time.Time        `gorm:"type:date;not null"`
	Status      string           `gorm:"not null;default:'pending';size:20"`
	Account     *Account         `gorm:"foreignKey:AccountID"`
	Creditor    *Creditor        `gorm:"foreignKey:CreditorID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for the Payment model.
func (Payment) TableName() string {
	return "payments"
}

// Creditor represents a creditor record in the database. The document
// is nullable; uniqueness applies only among supplied values.
type Creditor struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Name      string    `gorm:"not null;size:255"`
	Document  *string   `gorm:"uniqueIndex;size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for the Creditor model.
func (Creditor) TableName() string {
	return "creditors"
}
