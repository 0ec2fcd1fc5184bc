// Package account exposes the account REST endpoints.
package account

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"

	"github.com/mfcarvalho/bookkeep/pkg/dto"
	accountsvc "github.com/mfcarvalho/bookkeep/pkg/service/account"
	"github.com/mfcarvalho/bookkeep/webapi/common"
)

// Routes registers the account endpoints:
//   - GET    /accounts              : List accounts, newest first.
//   - POST   /accounts              : Create an account.
//   - GET    /accounts/:id          : Retrieve an account.
//   - PUT    /accounts/:id          : Partially update an account.
//   - DELETE /accounts/:id          : Delete an account.
//   - POST   /accounts/:id/deposit  : Deposit into an account.
func Routes(app *fiber.App, accountSvc *accountsvc.Service) {
	app.Get("/accounts", List(accountSvc))
	app.Post("/accounts", Create(accountSvc))
	app.Get("/accounts/:id", Get(accountSvc))
	app.Put("/accounts/:id", Update(accountSvc))
	app.Delete("/accounts/:id", Delete(accountSvc))
	app.Post("/accounts/:id/deposit", Deposit(accountSvc))
}

// List returns a handler listing all accounts.
// @Summary List accounts
// @Tags accounts
// @Produce json
// @Success 200 {object} common.Response
// @Router /accounts [get]
func List(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accounts, err := accountSvc.List(c.Context())
		if err != nil {
			log.Errorf("Failed to list accounts: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to list accounts", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Accounts listed", accounts)
	}
}

// Create returns a handler creating a new account.
// @Summary Create an account
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body CreateAccountRequest true "Account details"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Router /accounts [post]
func Create(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateAccountRequest](c)
		if input == nil {
			return err // error response already written
		}
		a, err := accountSvc.Create(c.Context(), dto.AccountCreate{
			Number:         input.Number,
			Name:           input.Name,
			InitialBalance: input.InitialBalance,
		})
		if err != nil {
			log.Errorf("Failed to create account: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to create account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Account created", a)
	}
}

// Get returns a handler retrieving an account by id.
// @Summary Get account by ID
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /accounts/{id} [get]
func Get(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account ID", err, "Account ID must be a valid UUID", fiber.StatusBadRequest)
		}
		a, err := accountSvc.Get(c.Context(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to get account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account found", a)
	}
}

// Update returns a handler applying a partial account update. Setting
// initial_balance also resets current_balance to the same value.
// @Summary Update an account
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param request body UpdateAccountRequest true "Fields to update"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /accounts/{id} [put]
func Update(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account ID", err, "Account ID must be a valid UUID", fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[UpdateAccountRequest](c)
		if input == nil {
			return err // error response already written
		}
		a, err := accountSvc.Update(c.Context(), id, dto.AccountUpdate{
			Number:         input.Number,
			Name:           input.Name,
			InitialBalance: input.InitialBalance,
			CurrentBalance: input.CurrentBalance,
		})
		if err != nil {
			log.Errorf("Failed to update account: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to update account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account updated", a)
	}
}

// Delete returns a handler deleting an account.
// @Summary Delete an account
// @Tags accounts
// @Param id path string true "Account ID"
// @Success 204 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /accounts/{id} [delete]
func Delete(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account ID", err, "Account ID must be a valid UUID", fiber.StatusBadRequest)
		}
		if err := accountSvc.Delete(c.Context(), id); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to delete account", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// Deposit returns a handler crediting an account balance.
// @Summary Deposit into an account
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param request body DepositRequest true "Deposit details"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /accounts/{id}/deposit [post]
func Deposit(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account ID", err, "Account ID must be a valid UUID", fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[DepositRequest](c)
		if input == nil {
			return err // error response already written
		}
		a, err := accountSvc.Deposit(c.Context(), id, input.Amount)
		if err != nil {
			log.Errorf("Failed to deposit: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to deposit", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Deposit successful", a)
	}
}
