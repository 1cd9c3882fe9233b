package domain

// TransactionType enumerates supported money movements.
type TransactionType string

const (
	TransactionTypeTransfer   TransactionType = "transfer"
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
)

// Valid reports whether the transaction type is supported.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeTransfer, TransactionTypeDeposit, TransactionTypeWithdrawal:
		return true
	}
	return false
}

// Transaction is an immutable record of a money movement for a user. RecipientID is nil when
// the request carried none.
type Transaction struct {
	ID          string
	UserID      string
	Amount      float64
	Type        TransactionType
	RecipientID *string
}
