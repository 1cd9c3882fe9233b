package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/mock-bank-api/internal/domain"
)

func newTestStore(t *testing.T) (*Store, UserRepository, TransactionRepository) {
	t.Helper()
	store := NewStore(NewSequenceGenerator())
	return store, NewUserRepository(store), NewTransactionRepository(store)
}

func createUser(t *testing.T, users UserRepository, email string) domain.User {
	t.Helper()
	u := domain.User{Name: "Ann", Email: email, AccountType: domain.AccountTypeBasic}
	require.NoError(t, users.Create(context.Background(), &u))
	return u
}

func TestUserRepository_CreateAssignsPrefixedIDs(t *testing.T) {
	_, users, _ := newTestStore(t)

	first := createUser(t, users, "a@x.com")
	second := createUser(t, users, "b@x.com")

	assert.Equal(t, "u-1", first.ID)
	assert.Equal(t, "u-2", second.ID)
}

func TestUserRepository_CreateRejectsDuplicateEmail(t *testing.T) {
	_, users, _ := newTestStore(t)
	createUser(t, users, "a@x.com")

	u := domain.User{Name: "Other", Email: "a@x.com", AccountType: domain.AccountTypePremium}
	err := users.Create(context.Background(), &u)

	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.Empty(t, u.ID)
}

func TestUserRepository_GetReturnsCopy(t *testing.T) {
	_, users, _ := newTestStore(t)
	ctx := context.Background()
	u := createUser(t, users, "a@x.com")

	got, err := users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	got.Name = "mutated"

	again, err := users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", again.Name)
}

func TestUserRepository_UpdateMovesEmailIndex(t *testing.T) {
	_, users, _ := newTestStore(t)
	ctx := context.Background()
	u := createUser(t, users, "old@x.com")

	u.Email = "new@x.com"
	require.NoError(t, users.Update(ctx, &u))

	_, err := users.GetByEmail(ctx, "old@x.com")
	assert.ErrorIs(t, err, ErrNotFound)
	byEmail, err := users.GetByEmail(ctx, "new@x.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	// the freed address can be claimed again
	createUser(t, users, "old@x.com")
}

func TestUserRepository_UpdateUnknown(t *testing.T) {
	_, users, _ := newTestStore(t)
	err := users.Update(context.Background(), &domain.User{ID: "u-404", Email: "a@x.com"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepository_Delete(t *testing.T) {
	_, users, _ := newTestStore(t)
	ctx := context.Background()
	u := createUser(t, users, "a@x.com")

	require.NoError(t, users.Delete(ctx, u.ID))
	_, err := users.GetByID(ctx, u.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, users.Delete(ctx, u.ID), ErrNotFound)
}

func TestTransactionRepository_ListByUserKeepsCreationOrder(t *testing.T) {
	_, users, txs := newTestStore(t)
	ctx := context.Background()
	ann := createUser(t, users, "ann@x.com")
	bob := createUser(t, users, "bob@x.com")

	for _, tx := range []domain.Transaction{
		{UserID: ann.ID, Amount: 1, Type: domain.TransactionTypeDeposit},
		{UserID: bob.ID, Amount: 2, Type: domain.TransactionTypeDeposit},
		{UserID: ann.ID, Amount: 3, Type: domain.TransactionTypeTransfer, RecipientID: &bob.ID},
	} {
		tx := tx
		require.NoError(t, txs.Create(ctx, &tx))
	}

	list, err := txs.ListByUser(ctx, ann.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "t-3", list[0].ID)
	assert.Equal(t, 1.0, list[0].Amount)
	assert.Equal(t, "t-5", list[1].ID)
	require.NotNil(t, list[1].RecipientID)
	assert.Equal(t, bob.ID, *list[1].RecipientID)
}

func TestTransactionRepository_ListUnknownUserIsEmpty(t *testing.T) {
	_, _, txs := newTestStore(t)
	list, err := txs.ListByUser(context.Background(), "u-nobody")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestTransactionsSurviveUserDeletion(t *testing.T) {
	_, users, txs := newTestStore(t)
	ctx := context.Background()
	ann := createUser(t, users, "ann@x.com")
	tx := domain.Transaction{UserID: ann.ID, Amount: 10, Type: domain.TransactionTypeDeposit}
	require.NoError(t, txs.Create(ctx, &tx))

	require.NoError(t, users.Delete(ctx, ann.ID))

	list, err := txs.ListByUser(ctx, ann.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestStore_ResetClearsEverything(t *testing.T) {
	store, users, txs := newTestStore(t)
	ctx := context.Background()
	ann := createUser(t, users, "ann@x.com")
	tx := domain.Transaction{UserID: ann.ID, Amount: 10, Type: domain.TransactionTypeDeposit}
	require.NoError(t, txs.Create(ctx, &tx))
	require.NoError(t, txs.RecordIdempotencyKey(ctx, "key-1", tx.ID))
	assert.Equal(t, Counts{Users: 1, Transactions: 1, IdempotencyKeys: 1}, store.Counts())

	store.Reset()
	store.Reset()

	assert.Equal(t, Counts{}, store.Counts())
	_, err := users.GetByID(ctx, ann.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	list, err := txs.ListByUser(ctx, ann.ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	// ids keep counting after a reset
	next := createUser(t, users, "ann@x.com")
	assert.Equal(t, "u-3", next.ID)
}

func TestRecordIdempotencyKeyIgnoresEmptyKey(t *testing.T) {
	store, _, txs := newTestStore(t)
	require.NoError(t, txs.RecordIdempotencyKey(context.Background(), "", "t-1"))
	assert.Zero(t, store.Counts().IdempotencyKeys)
}

type fixedGenerator struct {
	ids []string
}

func (g *fixedGenerator) NewID() string {
	id := g.ids[0]
	g.ids = g.ids[1:]
	return id
}

func TestStore_SkipsCollidingIDs(t *testing.T) {
	store := NewStore(&fixedGenerator{ids: []string{"a", "a", "b"}})
	users := NewUserRepository(store)

	first := createUser(t, users, "a@x.com")
	second := createUser(t, users, "b@x.com")

	assert.Equal(t, "u-a", first.ID)
	assert.Equal(t, "u-b", second.ID)
}

func TestUUIDGeneratorIsUnique(t *testing.T) {
	gen := UUIDGenerator{}
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := gen.NewID()
		assert.False(t, seen[id])
		seen[id] = true
	}
}
