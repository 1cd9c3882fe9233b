package dto

import (
	"encoding/json"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/spec-kit/mock-bank-api/internal/domain"
)

// IdempotencyKeyHeader names the optional client-supplied key on transaction creation.
const IdempotencyKeyHeader = "Idempotency-Key"

// CreateTransactionRequest is the raw body of POST /api/transactions. Amount stays raw so an
// absent field (nil) can be told apart from an explicit null.
type CreateTransactionRequest struct {
	UserID      ldvalue.Value   `json:"userId"`
	Amount      json.RawMessage `json:"amount"`
	Type        ldvalue.Value   `json:"type"`
	RecipientID ldvalue.Value   `json:"recipientId"`
}

// TransactionResponse is the flat transaction representation returned by the API.
type TransactionResponse struct {
	ID          string                 `json:"id"`
	UserID      string                 `json:"userId"`
	Amount      float64                `json:"amount"`
	Type        domain.TransactionType `json:"type"`
	RecipientID *string                `json:"recipientId,omitempty"`
}

// NewTransactionResponse maps a domain transaction.
func NewTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		UserID:      t.UserID,
		Amount:      t.Amount,
		Type:        t.Type,
		RecipientID: t.RecipientID,
	}
}

// NewTransactionListResponse maps a list, never returning nil so it encodes as [].
func NewTransactionListResponse(txs []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for i := range txs {
		out = append(out, NewTransactionResponse(&txs[i]))
	}
	return out
}
