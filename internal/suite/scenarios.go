package suite

import (
	"context"
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/mock-bank-api/internal/factory"
)

// RunSuite runs every API scenario against the server behind deps.Client.
func RunSuite(ctx context.Context, deps Dependencies, filter Filter, testLogger TestLogger) Results {
	return Run(ctx, deps, filter, testLogger, func(t *Context) {
		t.Run("Users API", usersAPI)
		t.Run("Users API validation", usersValidation)
		t.Run("Transactions API validation", transactionsValidation)
		t.Run("Lifecycle", lifecycle)
	})
}

func createUser(t *Context, payload factory.UserPayload) map[string]any {
	return ExpectJSON(t, t.Call(http.MethodPost, "/api/users", payload), http.StatusCreated)
}

func usersAPI(t *Context) {
	t.Run("create and fetch user", func(t *Context) {
		t.Reset()
		created := createUser(t, t.Factory().User())
		fetched := ExpectJSON(t, t.Call(http.MethodGet, "/api/users/"+idOf(t, created), nil), http.StatusOK)
		assert.Equal(t, created, fetched)
	})

	t.Run("bad email", func(t *Context) {
		t.Reset()
		payload := t.Factory().User(func(u *factory.UserPayload) { u.Email = "not-an-email" })
		ExpectStatus(t, t.Call(http.MethodPost, "/api/users", payload), http.StatusBadRequest)
	})

	t.Run("missing token", func(t *Context) {
		t.Reset()
		ExpectStatus(t, t.CallAnonymous(http.MethodPost, "/api/users", t.Factory().User()), http.StatusUnauthorized)
	})

	t.Run("update name", func(t *Context) {
		t.Reset()
		user := createUser(t, t.Factory().User())
		updated := ExpectJSON(t,
			t.Call(http.MethodPut, "/api/users/"+idOf(t, user), map[string]any{"name": "Updated Name"}),
			http.StatusOK)
		assert.Equal(t, "Updated Name", updated["name"])
		assert.Equal(t, user["email"], updated["email"])
		assert.Equal(t, user["accountType"], updated["accountType"])
	})

	t.Run("delete then fetch", func(t *Context) {
		t.Reset()
		user := createUser(t, t.Factory().User())
		ExpectStatus(t, t.Call(http.MethodDelete, "/api/users/"+idOf(t, user), nil), http.StatusNoContent)
		ExpectStatus(t, t.Call(http.MethodGet, "/api/users/"+idOf(t, user), nil), http.StatusNotFound)
	})

	t.Run("negative amount", func(t *Context) {
		t.Reset()
		user := createUser(t, t.Factory().User())
		payload := t.Factory().Transaction(idOf(t, user), func(p *factory.TransactionPayload) { p.Amount = -10 })
		ExpectStatus(t, t.Call(http.MethodPost, "/api/transactions", payload), http.StatusBadRequest)
	})

	t.Run("self transfer", func(t *Context) {
		t.Reset()
		user := createUser(t, t.Factory().User())
		payload := t.Factory().Transaction(idOf(t, user), func(p *factory.TransactionPayload) {
			p.Type = "transfer"
			p.RecipientID = p.UserID
		})
		ExpectStatus(t, t.Call(http.MethodPost, "/api/transactions", payload), http.StatusBadRequest)
	})
}

func usersValidation(t *Context) {
	t.Run("duplicate email", func(t *Context) {
		t.Reset()
		payload := t.Factory().User()
		createUser(t, payload)
		ExpectStatus(t, t.Call(http.MethodPost, "/api/users", payload), http.StatusConflict)
	})

	t.Run("invalid accountType", func(t *Context) {
		t.Reset()
		payload := t.Factory().User(func(u *factory.UserPayload) { u.AccountType = "gold" })
		ExpectStatus(t, t.Call(http.MethodPost, "/api/users", payload), http.StatusBadRequest)
	})

	t.Run("missing required fields", func(t *Context) {
		t.Reset()
		ExpectStatus(t, t.Call(http.MethodPost, "/api/users", map[string]any{"name": "John"}), http.StatusBadRequest)
	})

	t.Run("unknown user", func(t *Context) {
		t.Reset()
		ExpectStatus(t, t.Call(http.MethodGet, "/api/users/u-does-not-exist", nil), http.StatusNotFound)
	})
}

func transactionsValidation(t *Context) {
	t.Run("invalid type", func(t *Context) {
		t.Reset()
		user := createUser(t, t.Factory().User())
		payload := t.Factory().Transaction(idOf(t, user), func(p *factory.TransactionPayload) { p.Type = "invalid-type" })
		ExpectStatus(t, t.Call(http.MethodPost, "/api/transactions", payload), http.StatusBadRequest)
	})

	t.Run("missing required fields", func(t *Context) {
		t.Reset()
		ExpectStatus(t, t.Call(http.MethodPost, "/api/transactions", map[string]any{"amount": 100}), http.StatusBadRequest)
	})

	t.Run("unknown user", func(t *Context) {
		t.Reset()
		payload := t.Factory().Transaction("u-does-not-exist", func(p *factory.TransactionPayload) {
			p.Amount = 100
			p.Type = "deposit"
		})
		ExpectStatus(t, t.Call(http.MethodPost, "/api/transactions", payload), http.StatusNotFound)
	})
}

func lifecycle(t *Context) {
	t.Run("reset clears users", func(t *Context) {
		t.Reset()
		user := createUser(t, t.Factory().User())
		t.Reset()
		ExpectStatus(t, t.Call(http.MethodGet, "/api/users/"+idOf(t, user), nil), http.StatusNotFound)
	})

	t.Run("transactions listed in creation order", func(t *Context) {
		t.Reset()
		user := createUser(t, t.Factory().User())
		var ids []string
		for _, amount := range []float64{10, 20} {
			payload := t.Factory().Transaction(idOf(t, user), func(p *factory.TransactionPayload) {
				p.Amount = amount
				p.Type = "deposit"
			})
			ids = append(ids, idOf(t, ExpectJSON(t, t.Call(http.MethodPost, "/api/transactions", payload), http.StatusCreated)))
		}

		res := t.Call(http.MethodGet, "/api/transactions/"+idOf(t, user), nil)
		ExpectStatus(t, res, http.StatusOK)
		var listed []map[string]any
		require.NoError(t, res.JSON(&listed))
		require.Len(t, listed, 2)
		assert.Equal(t, ids[0], listed[0]["id"])
		assert.Equal(t, ids[1], listed[1]["id"])
	})
}
