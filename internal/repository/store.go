package repository

import (
	"errors"

	"github.com/spec-kit/mock-bank-api/internal/domain"
)

const (
	userIDPrefix        = "u-"
	transactionIDPrefix = "t-"
)

var (
	// ErrNotFound is returned when no record matches the requested id.
	ErrNotFound = errors.New("repository: record not found")
	// ErrDuplicateEmail is returned when a write would give two users the same email.
	ErrDuplicateEmail = errors.New("repository: duplicate email")
)

// Store owns every user and transaction record held by the mock API. It is not safe for
// concurrent use; callers serialize access.
type Store struct {
	ids IDGenerator

	users  map[string]domain.User
	emails map[string]string

	transactions   map[string]domain.Transaction
	txByUser       map[string][]string
	idempotencyKey map[string]string
}

// Counts summarizes the store contents.
type Counts struct {
	Users           int `json:"users"`
	Transactions    int `json:"transactions"`
	IdempotencyKeys int `json:"idempotencyKeys"`
}

// NewStore builds an empty store. A nil generator falls back to UUIDGenerator.
func NewStore(ids IDGenerator) *Store {
	if ids == nil {
		ids = UUIDGenerator{}
	}
	s := &Store{ids: ids}
	s.Reset()
	return s
}

// Reset drops all records. The id generator keeps its position.
func (s *Store) Reset() {
	s.users = make(map[string]domain.User)
	s.emails = make(map[string]string)
	s.transactions = make(map[string]domain.Transaction)
	s.txByUser = make(map[string][]string)
	s.idempotencyKey = make(map[string]string)
}

// Counts reports how many records are stored.
func (s *Store) Counts() Counts {
	return Counts{
		Users:           len(s.users),
		Transactions:    len(s.transactions),
		IdempotencyKeys: len(s.idempotencyKey),
	}
}

func (s *Store) newID(prefix string, taken func(string) bool) string {
	for {
		id := prefix + s.ids.NewID()
		if !taken(id) {
			return id
		}
	}
}
