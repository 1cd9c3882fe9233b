package factory

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/mock-bank-api/internal/domain"
)

func TestUserPayloadIsValid(t *testing.T) {
	f := New(42)
	for i := 0; i < 20; i++ {
		u := f.User()
		assert.NotEmpty(t, u.Name)
		assert.Contains(t, u.Email, "@")
		assert.Equal(t, strings.ToLower(u.Email), u.Email)
		assert.True(t, domain.AccountType(u.AccountType).Valid(), u.AccountType)
	}
}

func TestUserOverrides(t *testing.T) {
	u := New(1).User(func(p *UserPayload) { p.Email = "not-an-email" })
	assert.Equal(t, "not-an-email", u.Email)
}

func TestTransactionPayloadIsValid(t *testing.T) {
	f := New(7)
	for i := 0; i < 20; i++ {
		tx := f.Transaction("u-1")
		assert.Equal(t, "u-1", tx.UserID)
		assert.GreaterOrEqual(t, tx.Amount, 1.0)
		assert.LessOrEqual(t, tx.Amount, 1000.0)
		assert.True(t, domain.TransactionType(tx.Type).Valid(), tx.Type)
		assert.NotEqual(t, tx.UserID, tx.RecipientID)
	}
}

func TestTransactionOverrides(t *testing.T) {
	tx := New(3).Transaction("u-1", func(p *TransactionPayload) {
		p.Amount = -10
		p.Type = "invalid-type"
	})
	assert.Equal(t, -10.0, tx.Amount)
	assert.Equal(t, "invalid-type", tx.Type)
}

func TestSameSeedSamePayloads(t *testing.T) {
	assert.Equal(t, New(99).User(), New(99).User())
}
