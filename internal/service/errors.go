package service

import (
	apperrors "github.com/spec-kit/mock-bank-api/pkg/util"
)

// Errors reported by the mock API. The messages are part of the public contract.
var (
	ErrMissingFields          = apperrors.NewMalformedInput("missing required fields", nil)
	ErrEmailInvalid           = apperrors.NewMalformedInput("email invalid", nil)
	ErrInvalidAccountType     = apperrors.NewMalformedInput("invalid accountType", nil)
	ErrEmailExists            = apperrors.NewConflict("email exists", nil)
	ErrNotFound               = apperrors.NewNotFound("not found", nil)
	ErrUserNotFound           = apperrors.NewNotFound("user not found", nil)
	ErrAmountNotPositive      = apperrors.NewBusinessRuleViolation("amount must be > 0", nil)
	ErrInvalidTransactionType = apperrors.NewMalformedInput("invalid transaction type", nil)
	ErrRecipientRequired      = apperrors.NewMalformedInput("recipient required", nil)
	ErrSelfTransfer           = apperrors.NewBusinessRuleViolation("cannot transfer to self", nil)
)
