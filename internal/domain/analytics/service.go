package analytics

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/report"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/shared"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/transaction"
	appErrors "github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/errors"
)

// Reader is the slice of the transaction store the aggregations consume.
type Reader interface {
	GetByUser(ctx context.Context, userID int) ([]*transaction.Transaction, error)
}

type Service struct {
	Transactions Reader
	Windowed     report.TransactionReader
	UserChecker  *shared.UserCheckerService
}

func NewService(transactions Reader, windowed report.TransactionReader, userChecker *shared.UserCheckerService) *Service {
	return &Service{Transactions: transactions, Windowed: windowed, UserChecker: userChecker}
}

func (s *Service) Summary(ctx context.Context, userID int) (*Summary, error) {
	if err := s.UserChecker.EnsureUserExists(ctx, userID); err != nil {
		return nil, err
	}

	transactions, err := s.Transactions.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := &Summary{UserID: userID}
	for _, tx := range transactions {
		summary.TransactionCount++
		if tx.Type == transaction.TypeIncome {
			summary.IncomeCount++
			summary.TotalIncome += tx.Sum
		} else {
			summary.ExpenseCount++
			summary.TotalExpenses += tx.Sum
		}
	}
	summary.Balance = summary.TotalIncome - summary.TotalExpenses
	if summary.IncomeCount > 0 {
		summary.AverageIncomePerTx = round2(summary.TotalIncome / float64(summary.IncomeCount))
	}
	if summary.ExpenseCount > 0 {
		summary.AverageExpensePerTx = round2(summary.TotalExpenses / float64(summary.ExpenseCount))
	}

	return summary, nil
}

// Trends aggregates income and expenses per calendar month of the year.
// All 12 months are present, zero-filled when empty.
func (s *Service) Trends(ctx context.Context, userID, year int) (*Trends, error) {
	if err := s.UserChecker.EnsureUserExists(ctx, userID); err != nil {
		return nil, err
	}

	start, _ := report.MonthWindow(year, 1)
	_, end := report.MonthWindow(year, 12)

	transactions, err := s.Windowed.GetInWindow(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	months := make([]MonthTrend, 12)
	for i := range months {
		months[i] = MonthTrend{Month: i + 1, Year: year}
	}
	for _, tx := range transactions {
		m := int(tx.CreatedAt.Month()) - 1
		if tx.Type == transaction.TypeIncome {
			months[m].Income += tx.Sum
		} else {
			months[m].Expenses += tx.Sum
		}
	}
	for i := range months {
		months[i].Balance = months[i].Income - months[i].Expenses
	}

	return &Trends{UserID: userID, Year: year, Trends: months}, nil
}

// Categories breaks sums down per category, optionally filtered by type
// and period. Only categories with activity appear, largest first.
func (s *Service) Categories(ctx context.Context, userID int, txType transaction.Types, year, month int) (*Categories, error) {
	if err := s.UserChecker.EnsureUserExists(ctx, userID); err != nil {
		return nil, err
	}
	if txType != "" {
		txType = transaction.Types(strings.ToLower(string(txType)))
		if !txType.IsValid() {
			return nil, appErrors.NewValidationError("type", "type must be either 'income' or 'expense'")
		}
	}

	var transactions []*transaction.Transaction
	var err error
	if year != 0 && month != 0 {
		if month < 1 || month > 12 {
			return nil, appErrors.NewValidationError("month", "month must be between 1 and 12")
		}
		start, end := report.MonthWindow(year, month)
		transactions, err = s.Windowed.GetInWindow(ctx, userID, start, end)
	} else {
		transactions, err = s.Transactions.GetByUser(ctx, userID)
	}
	if err != nil {
		return nil, err
	}

	type bucket struct {
		sum   float64
		count int
	}
	buckets := make(map[string]*bucket)
	var total float64
	for _, tx := range transactions {
		if txType != "" && tx.Type != txType {
			continue
		}
		b, ok := buckets[tx.Category]
		if !ok {
			b = &bucket{}
			buckets[tx.Category] = b
		}
		b.sum += tx.Sum
		b.count++
		total += tx.Sum
	}

	breakdown := make([]CategoryBreakdown, 0, len(buckets))
	for category, b := range buckets {
		percentage := 0.0
		if total > 0 {
			percentage = round2((b.sum / total) * 100)
		}
		breakdown = append(breakdown, CategoryBreakdown{
			Category:   category,
			Sum:        b.sum,
			Count:      b.count,
			Percentage: percentage,
		})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Sum != breakdown[j].Sum {
			return breakdown[i].Sum > breakdown[j].Sum
		}
		return breakdown[i].Category < breakdown[j].Category
	})

	return &Categories{UserID: userID, Total: total, Breakdown: breakdown}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
