package service

import (
	"strings"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/spec-kit/mock-bank-api/internal/api/dto"
	"github.com/spec-kit/mock-bank-api/internal/domain"
)

// EmailLookup reports whether email belongs to a stored user other than exceptID.
type EmailLookup func(email, exceptID string) bool

// UserLookup reports whether a user with the given id is stored.
type UserLookup func(id string) bool

// UserCreateInput is a create-user body that passed every check.
type UserCreateInput struct {
	Name        string
	Email       string
	AccountType domain.AccountType
}

// TransactionCreateInput is a create-transaction body that passed every check.
type TransactionCreateInput struct {
	UserID      string
	Amount      float64
	Type        domain.TransactionType
	RecipientID *string
}

// ValidateUserCreate runs the create-user checks in contract order and stops at the first
// failure.
func ValidateUserCreate(req dto.CreateUserRequest, emailTaken EmailLookup) (UserCreateInput, error) {
	if !dto.Truthy(req.Name) || !dto.Truthy(req.Email) || !dto.Truthy(req.AccountType) {
		return UserCreateInput{}, ErrMissingFields
	}
	name, ok := dto.AsString(req.Name)
	if !ok {
		return UserCreateInput{}, ErrMissingFields
	}
	email, err := parseEmail(req.Email)
	if err != nil {
		return UserCreateInput{}, err
	}
	accountType, err := parseAccountType(req.AccountType)
	if err != nil {
		return UserCreateInput{}, err
	}
	if emailTaken(email, "") {
		return UserCreateInput{}, ErrEmailExists
	}
	return UserCreateInput{Name: name, Email: email, AccountType: accountType}, nil
}

// ValidateUserUpdate builds a patch for user id. Only truthy fields are applied; an email is
// checked for shape and then for uniqueness before the account type is looked at.
func ValidateUserUpdate(id string, req dto.UpdateUserRequest, emailTaken EmailLookup) (domain.UserPatch, error) {
	var patch domain.UserPatch

	if dto.Truthy(req.Email) {
		email, err := parseEmail(req.Email)
		if err != nil {
			return domain.UserPatch{}, err
		}
		if emailTaken(email, id) {
			return domain.UserPatch{}, ErrEmailExists
		}
		patch.Email = &email
	}
	if dto.Truthy(req.AccountType) {
		accountType, err := parseAccountType(req.AccountType)
		if err != nil {
			return domain.UserPatch{}, err
		}
		patch.AccountType = &accountType
	}
	if name, ok := dto.AsString(req.Name); ok && name != "" {
		patch.Name = &name
	}
	return patch, nil
}

// ValidateTransactionCreate runs the create-transaction checks in contract order. The owner
// lookup sits between the presence check and the field checks.
func ValidateTransactionCreate(req dto.CreateTransactionRequest, userExists UserLookup) (TransactionCreateInput, error) {
	if !dto.Truthy(req.UserID) || len(req.Amount) == 0 || !dto.Truthy(req.Type) {
		return TransactionCreateInput{}, ErrMissingFields
	}
	userID, ok := dto.AsString(req.UserID)
	if !ok || !userExists(userID) {
		return TransactionCreateInput{}, ErrUserNotFound
	}
	amount := ldvalue.Parse(req.Amount)
	if amount.Type() != ldvalue.NumberType || amount.Float64Value() <= 0 {
		return TransactionCreateInput{}, ErrAmountNotPositive
	}
	txType := domain.TransactionType("")
	if s, ok := dto.AsString(req.Type); ok {
		txType = domain.TransactionType(s)
	}
	if !txType.Valid() {
		return TransactionCreateInput{}, ErrInvalidTransactionType
	}

	var recipientID *string
	if !req.RecipientID.IsNull() {
		s := scalarString(req.RecipientID)
		recipientID = &s
	}
	if txType == domain.TransactionTypeTransfer {
		if !dto.Truthy(req.RecipientID) {
			return TransactionCreateInput{}, ErrRecipientRequired
		}
		if *recipientID == userID {
			return TransactionCreateInput{}, ErrSelfTransfer
		}
	}

	return TransactionCreateInput{
		UserID:      userID,
		Amount:      amount.Float64Value(),
		Type:        txType,
		RecipientID: recipientID,
	}, nil
}

func parseEmail(v ldvalue.Value) (string, error) {
	email, ok := dto.AsString(v)
	if !ok || !strings.Contains(email, "@") {
		return "", ErrEmailInvalid
	}
	return email, nil
}

func parseAccountType(v ldvalue.Value) (domain.AccountType, error) {
	s, _ := dto.AsString(v)
	accountType := domain.AccountType(s)
	if !accountType.Valid() {
		return "", ErrInvalidAccountType
	}
	return accountType, nil
}

// scalarString renders non-string recipient ids the way they appear in JSON so that they can
// never equal a string user id.
func scalarString(v ldvalue.Value) string {
	if s, ok := dto.AsString(v); ok {
		return s
	}
	return v.JSONString()
}
