package budget

import (
	"context"

	"github.com/oklog/ulid/v2"
)

type Filters struct {
	UserID   int
	Year     int
	Month    int
	Type     Types
	Category string
}

type Repository interface {
	Create(ctx context.Context, b *Budget) error
	Update(ctx context.Context, b *Budget) error
	Delete(ctx context.Context, id ulid.ULID) error
	GetByID(ctx context.Context, id ulid.ULID) (*Budget, error)
	GetAll(ctx context.Context, filters Filters) ([]*Budget, error)
}
