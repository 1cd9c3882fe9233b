package events

import (
	"time"

	"github.com/spec-kit/mock-bank-api/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserCreated        EventType = "user_created"
	EventUserUpdated        EventType = "user_updated"
	EventUserDeleted        EventType = "user_deleted"
	EventTransactionCreated EventType = "transaction_created"
	EventStoreReset         EventType = "store_reset"
)

// AllEventTypes lists every event the services publish.
var AllEventTypes = []EventType{
	EventUserCreated,
	EventUserUpdated,
	EventUserDeleted,
	EventTransactionCreated,
	EventStoreReset,
}

// Event represents a domain event emitted by services after a mutation has been applied.
type Event struct {
	Type       EventType   `json:"type"`
	ResourceID string      `json:"resource_id,omitempty"`
	Timestamp  time.Time   `json:"timestamp"`
	Payload    interface{} `json:"payload,omitempty"`
}

// StoreResetPayload carries the collection sizes cleared by a reset.
type StoreResetPayload struct {
	Users           int `json:"users"`
	Transactions    int `json:"transactions"`
	IdempotencyKeys int `json:"idempotency_keys"`
}

// UserChangedPayload payload.
type UserChangedPayload struct {
	Email       string             `json:"email"`
	AccountType domain.AccountType `json:"account_type"`
}

// TransactionCreatedPayload payload.
type TransactionCreatedPayload struct {
	UserID      string                 `json:"user_id"`
	Amount      float64                `json:"amount"`
	Type        domain.TransactionType `json:"type"`
	RecipientID *string                `json:"recipient_id,omitempty"`
}
