package dto

import (
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/spec-kit/mock-bank-api/internal/domain"
)

// CreateUserRequest is the raw body of POST /api/users. Fields stay loosely typed until the
// validation step turns them into a domain value.
type CreateUserRequest struct {
	Name        ldvalue.Value `json:"name"`
	Email       ldvalue.Value `json:"email"`
	AccountType ldvalue.Value `json:"accountType"`
}

// UpdateUserRequest is the raw body of PUT /api/users/:id.
type UpdateUserRequest struct {
	Name        ldvalue.Value `json:"name"`
	Email       ldvalue.Value `json:"email"`
	AccountType ldvalue.Value `json:"accountType"`
}

// UserResponse is the flat user representation returned by the API.
type UserResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Email       string             `json:"email"`
	AccountType domain.AccountType `json:"accountType"`
}

// NewUserResponse maps a domain user.
func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		AccountType: u.AccountType,
	}
}
