package models

import "time"

type TransactionType string

const (
	TransactionTypeLevy        TransactionType = "levy"
	TransactionTypeRent        TransactionType = "rent"
	TransactionTypeMaintenance TransactionType = "maintenance"
	TransactionTypeDeposit     TransactionType = "deposit"
	TransactionTypeRefund      TransactionType = "refund"
)

type TransactionCategoryType string

const (
	TransactionCategoryIncome  TransactionCategoryType = "income"
	TransactionCategoryExpense TransactionCategoryType = "expense"
)

type TransactionStatusType string

const (
	TransactionStatusPending   TransactionStatusType = "pending"
	TransactionStatusCompleted TransactionStatusType = "completed"
	TransactionStatusFailed    TransactionStatusType = "failed"
)

type Transaction struct {
	ID            string                  `json:"id"`
	PropertyID    *string                 `json:"propertyId"`
	UnitID        *string                 `json:"unitId"`
	Type          TransactionType         `json:"type"`
	Category      TransactionCategoryType `json:"category"`
	Amount        string                  `json:"amount"`
	Description   string                  `json:"description"`
	PaymentMethod *string                 `json:"paymentMethod"`
	Reference     *string                 `json:"reference"`
	Status        TransactionStatusType   `json:"status"`
	DueDate       *time.Time              `json:"dueDate"`
	PaidDate      *time.Time              `json:"paidDate"`
	CreatedAt     time.Time               `json:"createdAt"`
}

func (t Transaction) GetID() string { return t.ID }

func (t *Transaction) ApplyDefaults() {
	if t.Status == "" {
		t.Status = TransactionStatusPending
	}
}

// IsRealizedIncome reports whether the transaction counts towards revenue.
func (t Transaction) IsRealizedIncome() bool {
	return t.Category == TransactionCategoryIncome && t.Status == TransactionStatusCompleted
}
