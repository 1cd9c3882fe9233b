package domain

// AccountType is the plan a user is subscribed to.
type AccountType string

const (
	AccountTypeBasic   AccountType = "basic"
	AccountTypePremium AccountType = "premium"
)

// Valid reports whether the account type is one the API accepts.
func (a AccountType) Valid() bool {
	switch a {
	case AccountTypeBasic, AccountTypePremium:
		return true
	}
	return false
}

// User is the domain model for a mock bank customer.
type User struct {
	ID          string
	Name        string
	Email       string
	AccountType AccountType
}

// UserPatch carries the fields of a partial update. Nil fields are left untouched.
type UserPatch struct {
	Name        *string
	Email       *string
	AccountType *AccountType
}

// Apply merges the patch over u and returns the result.
func (p UserPatch) Apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.AccountType != nil {
		u.AccountType = *p.AccountType
	}
	return u
}
