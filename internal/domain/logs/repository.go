package logs

import "context"

type Filters struct {
	Level    string
	Endpoint string
	Limit    int
}

type Repository interface {
	Insert(ctx context.Context, e *Entry) error
	Recent(ctx context.Context, filters Filters) ([]*Entry, error)
}
