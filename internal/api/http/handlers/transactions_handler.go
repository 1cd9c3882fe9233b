package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/mock-bank-api/internal/api/dto"
	"github.com/spec-kit/mock-bank-api/internal/service"
)

// TransactionsHandler exposes the transaction resource.
type TransactionsHandler struct {
	transactions *service.TransactionService
}

// NewTransactionsHandler constructs handler.
func NewTransactionsHandler(transactions *service.TransactionService) *TransactionsHandler {
	return &TransactionsHandler{transactions: transactions}
}

// Create handles POST /api/transactions.
func (h *TransactionsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTransactionRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	tx, err := h.transactions.Create(c.UserContext(), req, c.Get(dto.IdempotencyKeyHeader))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewTransactionResponse(tx))
}

// ListByUser handles GET /api/transactions/:userId.
func (h *TransactionsHandler) ListByUser(c *fiber.Ctx) error {
	txs, err := h.transactions.ListByUser(c.UserContext(), c.Params("userId"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewTransactionListResponse(txs))
}
