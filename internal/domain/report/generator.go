package report

import (
	"context"
	"time"

	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/transaction"
)

// Generator aggregates a user's transactions for one calendar month into a
// category-complete report body. It holds no mutable state and never
// writes to any store.
type Generator struct {
	Transactions TransactionReader
	Variant      Variant
}

func NewGenerator(transactions TransactionReader, variant Variant) *Generator {
	return &Generator{Transactions: transactions, Variant: variant}
}

// MonthWindow returns the inclusive bounds [first day 00:00:00, last day
// 23:59:59] of (year, month) in server local time.
func MonthWindow(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	end := time.Date(year, time.Month(month+1), 0, 23, 59, 59, 0, time.Local)
	return start, end
}

// Generate computes the report for (userID, year, month). Every category
// of the variant's vocabulary appears exactly once, in vocabulary order,
// even when it holds no entries.
func (g *Generator) Generate(ctx context.Context, userID, year, month int) (*Data, error) {
	start, end := MonthWindow(year, month)

	transactions, err := g.Transactions.GetInWindow(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	var expenses, incomes []*transaction.Transaction
	for _, tx := range transactions {
		switch tx.Type {
		case transaction.TypeExpense:
			expenses = append(expenses, tx)
		case transaction.TypeIncome:
			incomes = append(incomes, tx)
		}
	}

	data := &Data{
		UserID: userID,
		Year:   year,
		Month:  month,
		Costs:  bucketize(g.Variant.ExpenseCategories, expenses),
	}

	if g.Variant.EmitExpensesKey {
		data.Expenses = data.Costs
	}

	if g.Variant.IncludeIncome {
		data.Income = bucketize(g.Variant.IncomeCategories, incomes)

		var totalExpenses, totalIncome float64
		for _, e := range expenses {
			totalExpenses += e.Sum
		}
		for _, i := range incomes {
			totalIncome += i.Sum
		}
		data.Summary = &Summary{
			TotalIncome:   totalIncome,
			TotalExpenses: totalExpenses,
			Balance:       totalIncome - totalExpenses,
		}
	}

	return data, nil
}

func bucketize(categories []string, transactions []*transaction.Transaction) []CategoryGroup {
	groups := make([]CategoryGroup, 0, len(categories))
	for _, category := range categories {
		entries := make([]Entry, 0)
		for _, tx := range transactions {
			if tx.Category != category {
				continue
			}
			entries = append(entries, Entry{
				Sum:         tx.Sum,
				Description: tx.Description,
				Day:         tx.CreatedAt.Day(),
			})
		}
		groups = append(groups, CategoryGroup{Category: category, Entries: entries})
	}
	return groups
}
