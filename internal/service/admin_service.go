package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/mock-bank-api/internal/events"
	"github.com/spec-kit/mock-bank-api/internal/repository"
)

// AdminService exposes store-wide operations used by test setup.
type AdminService struct {
	store      *repository.Store
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAdminService constructs the service.
func NewAdminService(store *repository.Store, dispatcher events.Dispatcher, logger *zap.Logger) *AdminService {
	return &AdminService{store: store, dispatcher: dispatcher, logger: logger}
}

// Reset clears all users, transactions and recorded idempotency keys.
func (s *AdminService) Reset(ctx context.Context) {
	before := s.store.Counts()
	s.store.Reset()

	if s.dispatcher == nil {
		return
	}
	err := s.dispatcher.Publish(ctx, events.Event{
		Type:      events.EventStoreReset,
		Timestamp: time.Now().UTC(),
		Payload: events.StoreResetPayload{
			Users:           before.Users,
			Transactions:    before.Transactions,
			IdempotencyKeys: before.IdempotencyKeys,
		},
	})
	if err != nil {
		s.logger.Warn("event handler failed", zap.String("event", string(events.EventStoreReset)), zap.Error(err))
	}
}

// Counts reports the current store size.
func (s *AdminService) Counts() repository.Counts {
	return s.store.Counts()
}
