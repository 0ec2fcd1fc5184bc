// Package transfer exposes the transfer REST endpoints.
package transfer

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"

	"github.com/mfcarvalho/bookkeep/pkg/dto"
	transfersvc "github.com/mfcarvalho/bookkeep/pkg/service/transfer"
	"github.com/mfcarvalho/bookkeep/webapi/common"
)

// Routes registers the transfer endpoints:
//   - GET    /transfers     : List transfers, newest first.
//   - POST   /transfers     : Create a transfer (atomic debit+credit).
//   - GET    /transfers/:id : Retrieve a transfer.
//   - DELETE /transfers/:id : Reverse and delete a transfer.
func Routes(app *fiber.App, transferSvc *transfersvc.Service) {
	app.Get("/transfers", List(transferSvc))
	app.Post("/transfers", Create(transferSvc))
	app.Get("/transfers/:id", Get(transferSvc))
	app.Delete("/transfers/:id", Delete(transferSvc))
}

// List returns a handler listing all transfers.
// @Summary List transfers
// @Tags transfers
// @Produce json
// @Success 200 {object} common.Response
// @Router /transfers [get]
func List(transferSvc *transfersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		transfers, err := transferSvc.List(c.Context())
		if err != nil {
			log.Errorf("Failed to list transfers: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to list transfers", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transfers listed", transfers)
	}
}

// Create returns a handler moving funds between two accounts. The
// debit, the credit and the transfer record commit atomically; an
// insufficient source balance aborts the whole operation.
// @Summary Create a transfer
// @Tags transfers
// @Accept json
// @Produce json
// @Param request body CreateTransferRequest true "Transfer details"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Failure 422 {object} common.ProblemDetails
// @Router /transfers [post]
func Create(transferSvc *transfersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateTransferRequest](c)
		if input == nil {
			return err // error response already written
		}
		t, err := transferSvc.Create(c.Context(), dto.TransferCreate{
			FromAccountID: input.FromAccountID,
			ToAccountID:   input.ToAccountID,
			Amount:        input.Amount,
			Description:   input.Description,
		})
		if err != nil {
			log.Errorf("Failed to create transfer: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to create transfer", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Transfer created", t)
	}
}

// Get returns a handler retrieving a transfer by id.
// @Summary Get transfer by ID
// @Tags transfers
// @Produce json
// @Param id path string true "Transfer ID"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /transfers/{id} [get]
func Get(transferSvc *transfersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid transfer ID", err, "Transfer ID must be a valid UUID", fiber.StatusBadRequest)
		}
		t, err := transferSvc.Get(c.Context(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to get transfer", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transfer found", t)
	}
}

// Delete returns a handler reversing a transfer. Both balances are
// restored before the record is removed; if the destination cannot
// cover the reversal nothing changes.
// @Summary Delete (reverse) a transfer
// @Tags transfers
// @Param id path string true "Transfer ID"
// @Success 204 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Failure 422 {object} common.ProblemDetails
// @Router /transfers/{id} [delete]
func Delete(transferSvc *transfersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid transfer ID", err, "Transfer ID must be a valid UUID", fiber.StatusBadRequest)
		}
		if err := transferSvc.Delete(c.Context(), id); err != nil {
			log.Errorf("Failed to delete transfer: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to delete transfer", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
