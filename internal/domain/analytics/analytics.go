package analytics

type Summary struct {
	UserID                int     `json:"userid"`
	TotalIncome           float64 `json:"total_income"`
	TotalExpenses         float64 `json:"total_expenses"`
	Balance               float64 `json:"balance"`
	TransactionCount      int     `json:"transaction_count"`
	IncomeCount           int     `json:"income_count"`
	ExpenseCount          int     `json:"expense_count"`
	AverageIncomePerTx    float64 `json:"average_income_per_transaction"`
	AverageExpensePerTx   float64 `json:"average_expense_per_transaction"`
}

type MonthTrend struct {
	Month    int     `json:"month"`
	Year     int     `json:"year"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Balance  float64 `json:"balance"`
}

type Trends struct {
	UserID int          `json:"userid"`
	Year   int          `json:"year"`
	Trends []MonthTrend `json:"trends"`
}

type CategoryBreakdown struct {
	Category   string  `json:"category"`
	Sum        float64 `json:"sum"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type Categories struct {
	UserID    int                 `json:"userid"`
	Total     float64             `json:"total"`
	Breakdown []CategoryBreakdown `json:"breakdown"`
}
