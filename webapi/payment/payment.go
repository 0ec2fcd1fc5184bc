// Package payment exposes the payment REST endpoints.
package payment

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"

	"github.com/mfcarvalho/bookkeep/pkg/dto"
	paymentsvc "github.com/mfcarvalho/bookkeep/pkg/service/payment"
	"github.com/mfcarvalho/bookkeep/webapi/common"
)

// Routes registers the payment endpoints:
//   - GET    /payments     : List payments, newest first.
//   - POST   /payments     : Create a payment (debits the account).
//   - GET    /payments/:id : Retrieve a payment.
//   - DELETE /payments/:id : Delete a payment record.
func Routes(app *fiber.App, paymentSvc *paymentsvc.Service) {
	app.Get("/payments", List(paymentSvc))
	app.Post("/payments", Create(paymentSvc))
	app.Get("/payments/:id", Get(paymentSvc))
	app.Delete("/payments/:id", Delete(paymentSvc))
}

// List returns a handler listing all payments.
// @Summary List payments
// @Tags payments
// @Produce json
// @Success 200 {object} common.Response
// @Router /payments [get]
func List(paymentSvc *paymentsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		payments, err := paymentSvc.List(c.Context())
		if err != nil {
			log.Errorf("Failed to list payments: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to list payments", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Payments listed", payments)
	}
}

// Create returns a handler creating a payment. Tax and net amounts are
// derived from the gross figures when supplied; the paying account is
// debited by the effective amount in the same transaction.
// @Summary Create a payment
// @Tags payments
// @Accept json
// @Produce json
// @Param request body CreatePaymentRequest true "Payment details"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Failure 422 {object} common.ProblemDetails
// @Router /payments [post]
func Create(paymentSvc *paymentsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreatePaymentRequest](c)
		if input == nil {
			return err // error response already written
		}
		paymentDate, err := time.Parse("2006-01-02", input.PaymentDate)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid payment date", err, fiber.StatusBadRequest)
		}
		p, err := paymentSvc.Create(c.Context(), dto.PaymentCreate{
			AccountID:   input.AccountID,
			CreditorID:  input.CreditorID,
			Amount:      input.Amount,
			GrossAmount: input.GrossAmount,
			TaxRate:     input.TaxRate,
			PaymentDate: paymentDate,
			Status:      input.Status,
		})
		if err != nil {
			log.Errorf("Failed to create payment: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to create payment", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Payment created", p)
	}
}

// Get returns a handler retrieving a payment by id.
// @Summary Get payment by ID
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /payments/{id} [get]
func Get(paymentSvc *paymentsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid payment ID", err, "Payment ID must be a valid UUID", fiber.StatusBadRequest)
		}
		p, err := paymentSvc.Get(c.Context(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to get payment", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Payment found", p)
	}
}

// Delete returns a handler removing a payment record. The account
// balance is not restored.
// @Summary Delete a payment
// @Tags payments
// @Param id path string true "Payment ID"
// @Success 204 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /payments/{id} [delete]
func Delete(paymentSvc *paymentsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid payment ID", err, "Payment ID must be a valid UUID", fiber.StatusBadRequest)
		}
		if err := paymentSvc.Delete(c.Context(), id); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to delete payment", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
