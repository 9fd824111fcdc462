package goal

import (
	"context"
	"strings"

	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/shared"
	appErrors "github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/errors"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/logger"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Service struct {
	Repository  Repository
	UserChecker *shared.UserCheckerService
}

func NewService(repo Repository, userChecker *shared.UserCheckerService) *Service {
	return &Service{Repository: repo, UserChecker: userChecker}
}

func (s *Service) Create(ctx context.Context, g *Goal) error {
	g.Title = strings.TrimSpace(g.Title)
	if g.Title == "" {
		return appErrors.NewValidationError("title", "title is required")
	}
	if g.TargetAmount <= 0 {
		return appErrors.NewValidationError("target_amount", "target_amount must be a positive number")
	}
	if g.CurrentAmount < 0 {
		return appErrors.NewValidationError("current_amount", "current_amount cannot be negative")
	}

	if g.Status == "" {
		g.Status = StatusActive
	}
	g.Status = Status(strings.ToLower(string(g.Status)))
	if !g.Status.IsValid() {
		return appErrors.NewValidationError("status", "status must be one of: active, completed, cancelled")
	}

	if g.Currency == "" {
		g.Currency = "ILS"
	}
	g.Category = strings.ToLower(g.Category)

	if err := s.UserChecker.EnsureUserExists(ctx, g.UserID); err != nil {
		return err
	}

	g.ID = pkg.GenerateULID()
	if err := s.Repository.Create(ctx, g); err != nil {
		return err
	}

	logger.Info().
		Str("goal_id", g.ID.String()).
		Int("userid", g.UserID).
		Msg("Goal created")
	return nil
}

func (s *Service) GetByUser(ctx context.Context, userID int, status Status) ([]*Goal, error) {
	if err := s.UserChecker.EnsureUserExists(ctx, userID); err != nil {
		return nil, err
	}
	if status != "" {
		status = Status(strings.ToLower(string(status)))
		if !status.IsValid() {
			return nil, appErrors.NewValidationError("status", "status must be one of: active, completed, cancelled")
		}
	}
	return s.Repository.GetByUser(ctx, userID, status)
}

func (s *Service) GetByID(ctx context.Context, id ulid.ULID) (*Goal, error) {
	return s.Repository.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id ulid.ULID) error {
	if _, err := s.Repository.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.Repository.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Str("goal_id", id.String()).Msg("Goal deleted")
	return nil
}

// Contribute adds to a goal's saved amount, marking it completed when the
// target is reached.
func (s *Service) Contribute(ctx context.Context, id ulid.ULID, amount float64) (*Goal, error) {
	if amount <= 0 {
		return nil, appErrors.NewValidationError("amount", "amount must be a positive number")
	}

	g, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g.Status != StatusActive {
		return nil, appErrors.NewValidationError("status", "can only contribute to an active goal")
	}

	g.CurrentAmount += amount
	if g.CurrentAmount >= g.TargetAmount {
		g.Status = StatusCompleted
	}
	g.UpdatedAt = pkg.SetTimestamps()

	if err := s.Repository.Update(ctx, g); err != nil {
		return nil, err
	}

	logger.Info().
		Str("goal_id", g.ID.String()).
		Float64("amount", amount).
		Str("status", string(g.Status)).
		Msg("Goal contribution recorded")
	return g, nil
}

func (s *Service) Progress(ctx context.Context, id ulid.ULID) (*Progress, error) {
	g, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	percentage := 0.0
	if g.TargetAmount > 0 {
		percentage = (g.CurrentAmount / g.TargetAmount) * 100
		if percentage > 100 {
			percentage = 100
		}
	}
	remaining := g.TargetAmount - g.CurrentAmount
	if remaining < 0 {
		remaining = 0
	}

	return &Progress{
		GoalID:     g.ID,
		Percentage: percentage,
		Remaining:  remaining,
		Completed:  g.Status == StatusCompleted,
	}, nil
}
