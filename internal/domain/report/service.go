package report

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/shared"
	appErrors "github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/errors"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/logger"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/pkg"
)

// Service owns the caching policy: past months are computed at most once
// and served from the reports store afterwards; the current month is
// always recomputed and never cached. Months that have not yet elapsed
// are also computed fresh without caching, so a not-yet-final period can
// never be frozen by the write-once cache.
type Service struct {
	Cache       Repository
	Generator   *Generator
	UserChecker *shared.UserCheckerService
	Clock       Clock
}

func NewService(cache Repository, generator *Generator, userChecker *shared.UserCheckerService, clock Clock) *Service {
	if clock == nil {
		clock = SystemClock()
	}
	return &Service{
		Cache:       cache,
		Generator:   generator,
		UserChecker: userChecker,
		Clock:       clock,
	}
}

func (s *Service) GetReport(ctx context.Context, userID, year, month int) (*Data, error) {
	if month < 1 || month > 12 {
		return nil, appErrors.NewValidationError("month", "Month must be between 1 and 12")
	}

	if err := s.UserChecker.EnsureUserExists(ctx, userID); err != nil {
		return nil, err
	}

	if !s.isPastMonth(year, month) {
		// Current or not-yet-elapsed month: compute fresh, never touch
		// the cache.
		logger.Info().
			Int("userid", userID).
			Int("year", year).
			Int("month", month).
			Msg("Generating on-the-fly report")
		return s.Generator.Generate(ctx, userID, year, month)
	}

	cached, err := s.Cache.Find(ctx, userID, year, month)
	if err != nil {
		return nil, err
	}
	if cached != nil {
		logger.Info().
			Int("userid", userID).
			Int("year", year).
			Int("month", month).
			Msg("Returning cached report")
		var data Data
		if err := json.Unmarshal(cached.Data, &data); err != nil {
			return nil, appErrors.ErrInternalServer.WithError(err)
		}
		return &data, nil
	}

	logger.Info().
		Int("userid", userID).
		Int("year", year).
		Int("month", month).
		Msg("Generating and caching report")

	data, err := s.Generator.Generate(ctx, userID, year, month)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(data)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}

	row := &Report{
		ID:      pkg.GenerateULID(),
		UserID:  userID,
		Year:    year,
		Month:   month,
		Data:    body,
		SavedAt: s.Clock.Now(),
	}

	if err := s.Cache.Insert(ctx, row); err != nil {
		if errors.Is(err, ErrDuplicateReport) {
			// A concurrent request already cached this period. The data
			// computed here is just as correct, so return it.
			logger.Info().
				Int("userid", userID).
				Int("year", year).
				Int("month", month).
				Msg("Report cache insert lost race, returning computed data")
			return data, nil
		}
		return nil, err
	}

	return data, nil
}

// isPastMonth reports whether (year, month) lies strictly before the
// clock's current calendar month.
func (s *Service) isPastMonth(year, month int) bool {
	now := s.Clock.Now()
	if year != now.Year() {
		return year < now.Year()
	}
	return month < int(now.Month())
}
