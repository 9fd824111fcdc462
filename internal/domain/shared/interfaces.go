package shared

import "context"

// UserGetter is the minimal contract services need to verify user existence.
type UserGetter interface {
	Exists(ctx context.Context, userID int) error
}
