package budget

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Types string

const (
	TypeTotal    Types = "total"
	TypeCategory Types = "category"
)

func (t Types) IsValid() bool {
	switch t {
	case TypeTotal, TypeCategory:
		return true
	}
	return false
}

type Budget struct {
	ID        ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"_id"`
	UserID    int       `gorm:"index:idx_budgets_user_period,priority:1;not null" json:"userid"`
	Year      int       `gorm:"index:idx_budgets_user_period,priority:2;not null" json:"year"`
	Month     int       `gorm:"index:idx_budgets_user_period,priority:3;not null" json:"month"`
	Type      Types     `gorm:"type:varchar(10);not null" json:"type"`
	Category  string    `gorm:"type:varchar(30)" json:"category,omitempty"`
	Amount    float64   `gorm:"type:decimal(15,2);not null" json:"amount"`
	Currency  string    `gorm:"type:varchar(3);default:'ILS'" json:"currency"`
	CreatedAt time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Budget) TableName() string {
	return "budgets"
}

// Status compares one budget row against actual spending for its period.
type Status struct {
	Budget    *Budget `json:"budget"`
	Spent     float64 `json:"spent"`
	Remaining float64 `json:"remaining"`
	Exceeded  bool    `json:"exceeded"`
}

type PeriodStatus struct {
	UserID   int      `json:"userid"`
	Year     int      `json:"year"`
	Month    int      `json:"month"`
	Budgets  []Status `json:"budgets"`
	Total    float64  `json:"total_expenses"`
}
