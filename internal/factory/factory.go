// Package factory builds request payloads for the contract suite. Payloads are valid by
// default; tests override fields to produce invalid ones.
package factory

import (
	"math"
	"strings"
	"sync"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/spec-kit/mock-bank-api/internal/domain"
)

// UserPayload is the body of a create-user call.
type UserPayload struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	AccountType string `json:"accountType"`
}

// TransactionPayload is the body of a create-transaction call.
type TransactionPayload struct {
	UserID      string  `json:"userId"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	RecipientID string  `json:"recipientId,omitempty"`
}

// Factory generates payloads from a faker. It is safe for concurrent use.
type Factory struct {
	mu    sync.Mutex
	faker *gofakeit.Faker
}

// New returns a factory. A zero seed draws a random one.
func New(seed int64) *Factory {
	return &Factory{faker: gofakeit.New(seed)}
}

// User builds a user payload and applies the overrides in order.
func (f *Factory) User(overrides ...func(*UserPayload)) UserPayload {
	f.mu.Lock()
	p := UserPayload{
		Name:        f.faker.Name(),
		Email:       strings.ToLower(f.faker.Email()),
		AccountType: f.faker.RandomString([]string{string(domain.AccountTypeBasic), string(domain.AccountTypePremium)}),
	}
	f.mu.Unlock()

	for _, o := range overrides {
		o(&p)
	}
	return p
}

// Transaction builds a transaction payload for userID and applies the overrides in order.
func (f *Factory) Transaction(userID string, overrides ...func(*TransactionPayload)) TransactionPayload {
	f.mu.Lock()
	p := TransactionPayload{
		UserID: userID,
		Amount: math.Round(f.faker.Float64Range(1, 1000)*100) / 100,
		Type: f.faker.RandomString([]string{
			string(domain.TransactionTypeTransfer),
			string(domain.TransactionTypeDeposit),
			string(domain.TransactionTypeWithdrawal),
		}),
		RecipientID: "u-" + f.faker.UUID(),
	}
	f.mu.Unlock()

	for _, o := range overrides {
		o(&p)
	}
	return p
}
