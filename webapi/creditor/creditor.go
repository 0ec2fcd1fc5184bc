// Package creditor exposes the creditor REST endpoints.
package creditor

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"

	"github.com/mfcarvalho/bookkeep/pkg/dto"
	creditorsvc "github.com/mfcarvalho/bookkeep/pkg/service/creditor"
	"github.com/mfcarvalho/bookkeep/webapi/common"
)

// Routes registers the creditor endpoints:
//   - GET    /creditors     : List creditors, newest first.
//   - POST   /creditors     : Create a creditor.
//   - GET    /creditors/:id : Retrieve a creditor.
//   - PUT    /creditors/:id : Update a creditor.
//   - DELETE /creditors/:id : Delete a creditor.
func Routes(app *fiber.App, creditorSvc *creditorsvc.Service) {
	app.Get("/creditors", List(creditorSvc))
	app.Post("/creditors", Create(creditorSvc))
	app.Get("/creditors/:id", Get(creditorSvc))
	app.Put("/creditors/:id", Update(creditorSvc))
	app.Delete("/creditors/:id", Delete(creditorSvc))
}

// List returns a handler listing all creditors.
// @Summary List creditors
// @Tags creditors
// @Produce json
// @Success 200 {object} common.Response
// @Router /creditors [get]
func List(creditorSvc *creditorsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		creditors, err := creditorSvc.List(c.Context())
		if err != nil {
			log.Errorf("Failed to list creditors: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to list creditors", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Creditors listed", creditors)
	}
}

// Create returns a handler creating a new creditor.
// @Summary Create a creditor
// @Tags creditors
// @Accept json
// @Produce json
// @Param request body CreateCreditorRequest true "Creditor details"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Router /creditors [post]
func Create(creditorSvc *creditorsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateCreditorRequest](c)
		if input == nil {
			return err // error response already written
		}
		cr, err := creditorSvc.Create(c.Context(), dto.CreditorCreate{
			Name:     input.Name,
			Document: input.Document,
		})
		if err != nil {
			log.Errorf("Failed to create creditor: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to create creditor", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Creditor created", cr)
	}
}

// Get returns a handler retrieving a creditor by id.
// @Summary Get creditor by ID
// @Tags creditors
// @Produce json
// @Param id path string true "Creditor ID"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /creditors/{id} [get]
func Get(creditorSvc *creditorsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid creditor ID", err, "Creditor ID must be a valid UUID", fiber.StatusBadRequest)
		}
		cr, err := creditorSvc.Get(c.Context(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to get creditor", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Creditor found", cr)
	}
}

// Update returns a handler updating a creditor.
// @Summary Update a creditor
// @Tags creditors
// @Accept json
// @Produce json
// @Param id path string true "Creditor ID"
// @Param request body UpdateCreditorRequest true "Fields to update"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /creditors/{id} [put]
func Update(creditorSvc *creditorsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid creditor ID", err, "Creditor ID must be a valid UUID", fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[UpdateCreditorRequest](c)
		if input == nil {
			return err // error response already written
		}
		cr, err := creditorSvc.Update(c.Context(), id, dto.CreditorUpdate{
			Name:     input.Name,
			Document: input.Document,
		})
		if err != nil {
			log.Errorf("Failed to update creditor: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to update creditor", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Creditor updated", cr)
	}
}

// Delete returns a handler deleting a creditor.
// @Summary Delete a creditor
// @Tags creditors
// @Param id path string true "Creditor ID"
// @Success 204 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /creditors/{id} [delete]
func Delete(creditorSvc *creditorsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid creditor ID", err, "Creditor ID must be a valid UUID", fiber.StatusBadRequest)
		}
		if err := creditorSvc.Delete(c.Context(), id); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to delete creditor", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
