package user

import (
	"context"
	"regexp"
	"strings"

	appErrors "github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/errors"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/pkg"
)

var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

type Service struct {
	Repository Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repository: repo}
}

func (s *Service) Create(ctx context.Context, u *User) error {
	if u.ID <= 0 {
		return appErrors.NewValidationError("id", "id must be a positive number")
	}
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if !emailPattern.MatchString(u.Email) {
		return appErrors.NewValidationError("email", "must be a valid email address")
	}
	u.FirstName = strings.TrimSpace(u.FirstName)
	u.LastName = strings.TrimSpace(u.LastName)

	if existing, err := s.Repository.GetByID(ctx, u.ID); err == nil && existing != nil {
		return appErrors.NewConflictError("User")
	}

	now := pkg.SetTimestamps()
	u.CreatedAt = now
	u.UpdatedAt = now

	return s.Repository.Create(ctx, u)
}

func (s *Service) GetByID(ctx context.Context, id int) (*User, error) {
	return s.Repository.GetByID(ctx, id)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*User, error) {
	return s.Repository.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}

func (s *Service) List(ctx context.Context) ([]*User, error) {
	return s.Repository.List(ctx)
}

func (s *Service) Update(ctx context.Context, u *User) error {
	u.UpdatedAt = pkg.SetTimestamps()
	return s.Repository.Update(ctx, u)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.Repository.Delete(ctx, id)
}

// Exists reports whether the user id is registered. The zero return is a
// nil error; callers translate a miss into their own not-found error.
func (s *Service) Exists(ctx context.Context, id int) error {
	_, err := s.Repository.GetByID(ctx, id)
	return err
}

// UserServiceAdapter narrows *Service to the shared.UserGetter contract.
type UserServiceAdapter struct {
	service *Service
}

func NewUserServiceAdapter(service *Service) *UserServiceAdapter {
	return &UserServiceAdapter{service: service}
}

func (a *UserServiceAdapter) Exists(ctx context.Context, id int) error {
	return a.service.Exists(ctx, id)
}
