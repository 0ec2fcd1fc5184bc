package creditor

// CreateCreditorRequest is the request body for creating a creditor.
// The document is optional; supplied values must be unique.
type CreateCreditorRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Document string `json:"document" validate:"omitempty,max=255"`
}

// UpdateCreditorRequest is the request body for updating a creditor.
type UpdateCreditorRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=255"`
	Document *string `json:"document" validate:"omitempty,max=255"`
}
