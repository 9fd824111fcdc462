package transaction

import (
	"context"
	"time"

	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Filters struct {
	UserID   int
	Type     Types
	Category string
	Year     int
	Month    int
}

type Repository interface {
	Create(ctx context.Context, tx *Transaction) error
	Update(ctx context.Context, tx *Transaction) error
	Delete(ctx context.Context, id ulid.ULID) error
	GetByID(ctx context.Context, id ulid.ULID) (*Transaction, error)
	GetAll(ctx context.Context, filters Filters, pagination *pkg.PaginationParams) ([]*Transaction, int64, error)
	GetByUser(ctx context.Context, userID int) ([]*Transaction, error)
	GetInWindow(ctx context.Context, userID int, from, to time.Time) ([]*Transaction, error)
	GetDueRecurring(ctx context.Context, now time.Time) ([]*Transaction, error)
	SumByUserAndType(ctx context.Context, userID int, txType Types) (float64, error)
}
