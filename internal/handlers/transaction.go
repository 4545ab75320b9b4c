package handlers

import (
	"errors"
	"log"
	"strconv"

	"walletledger/internal/services/transaction"
	"walletledger/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// TransactionHandler translates HTTP requests into transaction service calls.
type TransactionHandler struct {
	service transaction.Service
}

func NewTransactionHandler(service transaction.Service) *TransactionHandler {
	return &TransactionHandler{service: service}
}

// CreateTransaction handles POST /transactions.
func (h *TransactionHandler) CreateTransaction(c *fiber.Ctx) error {
	var req transaction.CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	tx, err := h.service.Create(c.UserContext(), req)
	if err != nil {
		var ve *transaction.ValidationError
		if errors.As(err, &ve) {
			return response.ValidationError(c, "Invalid or missing fields", ve.Fields)
		}
		log.Printf("create transaction error: %v", err)
		return response.ServerError(c, "Failed to create transaction")
	}

	return c.Status(fiber.StatusCreated).JSON(tx)
}

// GetUserTransactions handles GET /transactions/:user_id.
func (h *TransactionHandler) GetUserTransactions(c *fiber.Ctx) error {
	userID := c.Params("user_id")

	transactions, err := h.service.List(c.UserContext(), userID)
	if err != nil {
		log.Printf("list transactions error: %v", err)
		return response.ServerError(c, "Failed to retrieve transactions")
	}

	return c.JSON(transactions)
}

// DeleteTransaction handles DELETE /transactions/:id. Ownership is not
// checked; see the service contract.
func (h *TransactionHandler) DeleteTransaction(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "Invalid transaction id")
	}

	if err := h.service.Delete(c.UserContext(), uint(id)); err != nil {
		if errors.Is(err, transaction.ErrTransactionNotFound) {
			return response.NotFound(c, "Transaction not found")
		}
		log.Printf("delete transaction error: %v", err)
		return response.ServerError(c, "Failed to delete transaction")
	}

	return c.JSON(fiber.Map{
		"message": "Transaction deleted succesfully",
	})
}

// GetSummary handles GET /transactions/summary/:user_id.
func (h *TransactionHandler) GetSummary(c *fiber.Ctx) error {
	userID := c.Params("user_id")

	summary, err := h.service.Summary(c.UserContext(), userID)
	if err != nil {
		log.Printf("summary error: %v", err)
		return response.ServerError(c, "Failed to compute summary")
	}

	return c.JSON(summary)
}
