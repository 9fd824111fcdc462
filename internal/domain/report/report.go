package report

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/datatypes"
)

// Report is a cached monthly report row. Rows exist only for periods that
// had fully elapsed when first requested, are keyed uniquely by
// (userid, year, month) and are never updated after insertion.
type Report struct {
	ID      ulid.ULID      `gorm:"type:varchar(26);primaryKey" json:"_id"`
	UserID  int            `gorm:"uniqueIndex:idx_reports_user_period,priority:1;not null" json:"userid"`
	Year    int            `gorm:"uniqueIndex:idx_reports_user_period,priority:2;not null" json:"year"`
	Month   int            `gorm:"uniqueIndex:idx_reports_user_period,priority:3;not null" json:"month"`
	Data    datatypes.JSON `gorm:"not null" json:"data"`
	SavedAt time.Time      `gorm:"not null" json:"saved_at"`
}

func (Report) TableName() string {
	return "reports"
}

// Entry is a single transaction line inside a category bucket. Day is the
// 1-based day of month extracted from the transaction date.
type Entry struct {
	Sum         float64 `json:"sum"`
	Description string  `json:"description"`
	Day         int     `json:"day"`
}

// CategoryGroup is one bucket of the report body. It marshals as a
// single-key object ({"food": [...]}) so the enclosing array keeps the
// vocabulary order while producing the original wire shape.
type CategoryGroup struct {
	Category string
	Entries  []Entry
}

func (g CategoryGroup) MarshalJSON() ([]byte, error) {
	entries := g.Entries
	if entries == nil {
		entries = []Entry{}
	}
	return json.Marshal(map[string][]Entry{g.Category: entries})
}

func (g *CategoryGroup) UnmarshalJSON(data []byte) error {
	raw := make(map[string][]Entry, 1)
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 1 {
		return fmt.Errorf("category group must contain exactly one category, got %d", len(raw))
	}
	for category, entries := range raw {
		g.Category = category
		g.Entries = entries
	}
	return nil
}

// Summary totals the period. Balance is income minus expenses.
type Summary struct {
	TotalIncome   float64 `json:"total_income"`
	TotalExpenses float64 `json:"total_expenses"`
	Balance       float64 `json:"balance"`
}

// Data is the computed report body, the value stored in the cache row and
// returned to callers.
type Data struct {
	UserID   int             `json:"userid"`
	Year     int             `json:"year"`
	Month    int             `json:"month"`
	Expenses []CategoryGroup `json:"expenses,omitempty"`
	Costs    []CategoryGroup `json:"costs,omitempty"`
	Income   []CategoryGroup `json:"income,omitempty"`
	Summary  *Summary        `json:"summary,omitempty"`
}

// Variant parameterizes the generator. The original deployment ran several
// near-identical report services that disagreed on vocabulary order, on
// income tracking and on output key naming; a variant captures one such
// shape and is selected once at assembly time.
type Variant struct {
	ExpenseCategories []string
	IncomeCategories  []string
	// IncludeIncome adds the income buckets and the summary block.
	IncludeIncome bool
	// EmitExpensesKey mirrors the expense buckets under the legacy
	// "expenses" key next to "costs".
	EmitExpensesKey bool
}

var (
	// BasicVariant is the costs-only report shape.
	BasicVariant = Variant{
		ExpenseCategories: []string{"food", "health", "housing", "sports", "education"},
	}

	// ExtendedVariant tracks income and totals and keeps the legacy
	// "expenses" alias alongside "costs".
	ExtendedVariant = Variant{
		ExpenseCategories: []string{"food", "education", "health", "housing", "sports"},
		IncomeCategories:  []string{"salary", "freelance", "investment", "business", "gift", "other"},
		IncludeIncome:     true,
		EmitExpensesKey:   true,
	}
)
