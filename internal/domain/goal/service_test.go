package goal_test

import (
	"context"
	"testing"

	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/goal"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/shared"
	appErrors "github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/errors"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type fakeGoalRepository struct {
	createFn  func(ctx context.Context, g *goal.Goal) error
	updateFn  func(ctx context.Context, g *goal.Goal) error
	getByIDFn func(ctx context.Context, id ulid.ULID) (*goal.Goal, error)
}

func (f *fakeGoalRepository) Create(ctx context.Context, g *goal.Goal) error {
	if f.createFn != nil {
		return f.createFn(ctx, g)
	}
	return nil
}

func (f *fakeGoalRepository) Update(ctx context.Context, g *goal.Goal) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, g)
	}
	return nil
}

func (f *fakeGoalRepository) Delete(ctx context.Context, id ulid.ULID) error { return nil }

func (f *fakeGoalRepository) GetByID(ctx context.Context, id ulid.ULID) (*goal.Goal, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, appErrors.ErrGoalNotFound
}

func (f *fakeGoalRepository) GetByUser(ctx context.Context, userID int, status goal.Status) ([]*goal.Goal, error) {
	return nil, nil
}

type fakeUserGetter struct{}

func (fakeUserGetter) Exists(ctx context.Context, userID int) error { return nil }

func newService(repo *fakeGoalRepository) *goal.Service {
	return goal.NewService(repo, shared.NewUserCheckerService(fakeUserGetter{}))
}

func TestContributeCompletesGoalAtTarget(t *testing.T) {
	t.Parallel()

	goalID := pkg.GenerateULID()
	stored := &goal.Goal{
		ID:            goalID,
		UserID:        1,
		Title:         "Vacation",
		TargetAmount:  5000,
		CurrentAmount: 4800,
		Status:        goal.StatusActive,
	}

	var updated *goal.Goal
	repo := &fakeGoalRepository{
		getByIDFn: func(ctx context.Context, id ulid.ULID) (*goal.Goal, error) {
			copy := *stored
			return &copy, nil
		},
		updateFn: func(ctx context.Context, g *goal.Goal) error {
			updated = g
			return nil
		},
	}
	svc := newService(repo)

	g, err := svc.Contribute(context.Background(), goalID, 300)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.CurrentAmount != 5100 {
		t.Fatalf("current_amount = %v, want 5100", g.CurrentAmount)
	}
	if g.Status != goal.StatusCompleted {
		t.Fatalf("status = %s, want completed", g.Status)
	}
	if updated == nil {
		t.Fatal("expected the goal to be persisted")
	}
}

func TestContributeRejectsInactiveGoal(t *testing.T) {
	t.Parallel()

	repo := &fakeGoalRepository{
		getByIDFn: func(ctx context.Context, id ulid.ULID) (*goal.Goal, error) {
			return &goal.Goal{ID: id, Status: goal.StatusCancelled, TargetAmount: 100}, nil
		},
	}
	svc := newService(repo)

	_, err := svc.Contribute(context.Background(), pkg.GenerateULID(), 50)
	if err == nil {
		t.Fatal("expected error")
	}
	appErr, _ := appErrors.AsAppError(err)
	if appErr == nil || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestProgress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		current        float64
		target         float64
		status         goal.Status
		wantPercentage float64
		wantRemaining  float64
		wantCompleted  bool
	}{
		{
			name:           "halfway",
			current:        2500,
			target:         5000,
			status:         goal.StatusActive,
			wantPercentage: 50,
			wantRemaining:  2500,
		},
		{
			name:           "overshoot capped",
			current:        5600,
			target:         5000,
			status:         goal.StatusCompleted,
			wantPercentage: 100,
			wantRemaining:  0,
			wantCompleted:  true,
		},
		{
			name:           "untouched",
			current:        0,
			target:         5000,
			status:         goal.StatusActive,
			wantPercentage: 0,
			wantRemaining:  5000,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			goalID := pkg.GenerateULID()
			repo := &fakeGoalRepository{
				getByIDFn: func(ctx context.Context, id ulid.ULID) (*goal.Goal, error) {
					return &goal.Goal{
						ID:            goalID,
						CurrentAmount: tt.current,
						TargetAmount:  tt.target,
						Status:        tt.status,
					}, nil
				},
			}
			svc := newService(repo)

			progress, err := svc.Progress(context.Background(), goalID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if progress.Percentage != tt.wantPercentage {
				t.Fatalf("percentage = %v, want %v", progress.Percentage, tt.wantPercentage)
			}
			if progress.Remaining != tt.wantRemaining {
				t.Fatalf("remaining = %v, want %v", progress.Remaining, tt.wantRemaining)
			}
			if progress.Completed != tt.wantCompleted {
				t.Fatalf("completed = %v, want %v", progress.Completed, tt.wantCompleted)
			}
		})
	}
}
