package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/mock-bank-api/internal/api/dto"
	"github.com/spec-kit/mock-bank-api/internal/domain"
	"github.com/spec-kit/mock-bank-api/internal/events"
	"github.com/spec-kit/mock-bank-api/internal/repository"
)

// TransactionService records money movements for existing users.
type TransactionService struct {
	users        repository.UserRepository
	transactions repository.TransactionRepository
	dispatcher   events.Dispatcher
	logger       *zap.Logger
}

// TransactionDependencies bundles repositories for the transaction service.
type TransactionDependencies struct {
	UserRepo        repository.UserRepository
	TransactionRepo repository.TransactionRepository
	Dispatcher      events.Dispatcher
	Logger          *zap.Logger
}

// NewTransactionService constructs the service.
func NewTransactionService(deps TransactionDependencies) *TransactionService {
	return &TransactionService{
		users:        deps.UserRepo,
		transactions: deps.TransactionRepo,
		dispatcher:   deps.Dispatcher,
		logger:       deps.Logger,
	}
}

// Create validates the body and stores the transaction. A non-empty idempotency key is
// remembered but does not deduplicate requests.
func (s *TransactionService) Create(ctx context.Context, req dto.CreateTransactionRequest, idempotencyKey string) (*domain.Transaction, error) {
	input, err := ValidateTransactionCreate(req, func(id string) bool {
		_, err := s.users.GetByID(ctx, id)
		return err == nil
	})
	if err != nil {
		return nil, err
	}

	tx := &domain.Transaction{
		UserID:      input.UserID,
		Amount:      input.Amount,
		Type:        input.Type,
		RecipientID: input.RecipientID,
	}
	if err := s.transactions.Create(ctx, tx); err != nil {
		return nil, mapRepositoryError(err)
	}
	if err := s.transactions.RecordIdempotencyKey(ctx, idempotencyKey, tx.ID); err != nil {
		return nil, mapRepositoryError(err)
	}

	if s.dispatcher != nil {
		err := s.dispatcher.Publish(ctx, events.Event{
			Type:       events.EventTransactionCreated,
			ResourceID: tx.ID,
			Timestamp:  time.Now().UTC(),
			Payload: events.TransactionCreatedPayload{
				UserID:      tx.UserID,
				Amount:      tx.Amount,
				Type:        tx.Type,
				RecipientID: tx.RecipientID,
			},
		})
		if err != nil {
			s.logger.Warn("event handler failed", zap.String("event", string(events.EventTransactionCreated)), zap.Error(err))
		}
	}
	return tx, nil
}

// ListByUser returns every transaction owned by userID. Unknown users yield an empty list.
func (s *TransactionService) ListByUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	txs, err := s.transactions.ListByUser(ctx, userID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return txs, nil
}
