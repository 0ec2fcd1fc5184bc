package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreditorRead is a read-optimized DTO for creditor queries and API responses.
type CreditorRead struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Document  string    `json:"document,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreditorCreate is a DTO for creating a new creditor.
type CreditorCreate struct {
	Name     string
	Document string
}

// CreditorUpdate is a DTO for updating a creditor.
type CreditorUpdate struct {
	Name     *string
	Document *string
}
