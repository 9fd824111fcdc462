package logs

import (
	"context"

	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/logger"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/pkg"
)

const defaultLimit = 1000

type Service struct {
	Repository Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repository: repo}
}

// Record persists a log entry. Failures are logged and swallowed: request
// logging must never break the request being logged.
func (s *Service) Record(ctx context.Context, e *Entry) {
	e.ID = pkg.GenerateULID()
	if e.Level == "" {
		e.Level = "info"
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = pkg.SetTimestamps()
	}

	if err := s.Repository.Insert(ctx, e); err != nil {
		logger.Warn().Err(err).Str("endpoint", e.Endpoint).Msg("Failed to persist request log")
	}
}

func (s *Service) Recent(ctx context.Context, filters Filters) ([]*Entry, error) {
	if filters.Limit <= 0 || filters.Limit > defaultLimit {
		filters.Limit = defaultLimit
	}
	return s.Repository.Recent(ctx, filters)
}
