package report

import (
	"context"
	"errors"
	"time"

	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/transaction"
)

// ErrDuplicateReport is returned by Insert when another writer already
// cached the same (userid, year, month). Losing that race is harmless; the
// coordinator swallows it and returns its locally computed data.
var ErrDuplicateReport = errors.New("report already cached for period")

// Repository is the cache store contract. Find returns (nil, nil) on miss.
type Repository interface {
	Find(ctx context.Context, userID, year, month int) (*Report, error)
	Insert(ctx context.Context, r *Report) error
}

// TransactionReader is the read-only slice of the transaction store the
// generator needs.
type TransactionReader interface {
	GetInWindow(ctx context.Context, userID int, from, to time.Time) ([]*transaction.Transaction, error)
}
