package transaction

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Types string

const (
	TypeExpense Types = "expense"
	TypeIncome  Types = "income"
)

func (t Types) IsValid() bool {
	switch t {
	case TypeExpense, TypeIncome:
		return true
	}
	return false
}

type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

type Transaction struct {
	ID            ulid.ULID  `gorm:"type:varchar(26);primaryKey" json:"_id"`
	UserID        int        `gorm:"index:idx_transactions_user_id;index:idx_transactions_user_date,priority:1;not null" json:"userid"`
	Type          Types      `gorm:"type:varchar(10);not null;index:idx_transactions_type" json:"type"`
	Category      string     `gorm:"type:varchar(30);not null;index:idx_transactions_category" json:"category"`
	Sum           float64    `gorm:"type:decimal(15,2);not null" json:"sum"`
	Description   string     `gorm:"type:varchar(255);not null" json:"description"`
	CreatedAt     time.Time  `gorm:"index:idx_transactions_user_date,priority:2;not null" json:"created_at"`
	Currency      string     `gorm:"type:varchar(3);default:'ILS'" json:"currency"`
	PaymentMethod string     `gorm:"type:varchar(20)" json:"payment_method,omitempty"`
	Tags          []string   `gorm:"serializer:json" json:"tags,omitempty"`
	Recurring     Recurring  `gorm:"embedded;embeddedPrefix:recurring_" json:"recurring"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

type Recurring struct {
	Enabled   bool       `json:"enabled"`
	Frequency Frequency  `gorm:"type:varchar(10)" json:"frequency,omitempty"`
	NextDate  *time.Time `json:"next_date,omitempty"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// Category vocabularies are fixed per transaction type.
var (
	ExpenseCategories = []string{"food", "health", "housing", "sports", "education"}
	IncomeCategories  = []string{"salary", "freelance", "investment", "business", "gift", "other"}
)

var (
	Currencies     = []string{"ILS", "USD", "EUR"}
	PaymentMethods = []string{"credit_card", "cash", "bit", "check"}
)

func CategoriesFor(t Types) []string {
	if t == TypeIncome {
		return IncomeCategories
	}
	return ExpenseCategories
}

func IsValidCategory(t Types, category string) bool {
	for _, c := range CategoriesFor(t) {
		if c == category {
			return true
		}
	}
	return false
}

func IsValidCurrency(currency string) bool {
	for _, c := range Currencies {
		if c == currency {
			return true
		}
	}
	return false
}

func IsValidPaymentMethod(method string) bool {
	for _, m := range PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}
