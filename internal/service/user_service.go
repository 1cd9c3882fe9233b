package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/mock-bank-api/internal/api/dto"
	"github.com/spec-kit/mock-bank-api/internal/domain"
	"github.com/spec-kit/mock-bank-api/internal/events"
	"github.com/spec-kit/mock-bank-api/internal/repository"
	apperrors "github.com/spec-kit/mock-bank-api/pkg/util"
)

// UserService coordinates the user lifecycle.
type UserService struct {
	users      repository.UserRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewUserService constructs the service.
func NewUserService(users repository.UserRepository, dispatcher events.Dispatcher, logger *zap.Logger) *UserService {
	return &UserService{users: users, dispatcher: dispatcher, logger: logger}
}

// Create validates the body and stores a new user.
func (s *UserService) Create(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	input, err := ValidateUserCreate(req, s.emailLookup(ctx))
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:        input.Name,
		Email:       input.Email,
		AccountType: input.AccountType,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, mapRepositoryError(err)
	}

	s.publish(ctx, events.EventUserCreated, user)
	return user, nil
}

// Get returns the user with the given id.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return user, nil
}

// Update merges the supplied fields over the stored user.
func (s *UserService) Update(ctx context.Context, id string, req dto.UpdateUserRequest) (*domain.User, error) {
	current, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	patch, err := ValidateUserUpdate(id, req, s.emailLookup(ctx))
	if err != nil {
		return nil, err
	}

	updated := patch.Apply(*current)
	if err := s.users.Update(ctx, &updated); err != nil {
		return nil, mapRepositoryError(err)
	}

	s.publish(ctx, events.EventUserUpdated, &updated)
	return &updated, nil
}

// Delete removes the user. Transactions that reference it are kept.
func (s *UserService) Delete(ctx context.Context, id string) error {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	s.publish(ctx, events.EventUserDeleted, user)
	return nil
}

func (s *UserService) emailLookup(ctx context.Context) EmailLookup {
	return func(email, exceptID string) bool {
		owner, err := s.users.GetByEmail(ctx, email)
		return err == nil && owner.ID != exceptID
	}
}

func (s *UserService) publish(ctx context.Context, eventType events.EventType, user *domain.User) {
	if s.dispatcher == nil {
		return
	}
	err := s.dispatcher.Publish(ctx, events.Event{
		Type:       eventType,
		ResourceID: user.ID,
		Timestamp:  time.Now().UTC(),
		Payload: events.UserChangedPayload{
			Email:       user.Email,
			AccountType: user.AccountType,
		},
	})
	if err != nil {
		s.logger.Warn("event handler failed", zap.String("event", string(eventType)), zap.Error(err))
	}
}

func mapRepositoryError(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, repository.ErrDuplicateEmail):
		return ErrEmailExists
	default:
		return apperrors.NewInternalError(err)
	}
}
