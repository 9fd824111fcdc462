package shared

import (
	"context"

	appErrors "github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/errors"
)

type UserCheckerService struct {
	userService UserGetter
}

func NewUserCheckerService(userService UserGetter) *UserCheckerService {
	return &UserCheckerService{userService: userService}
}

func (s *UserCheckerService) EnsureUserExists(ctx context.Context, userID int) error {
	if s.userService == nil {
		return appErrors.ErrInternalServer
	}

	if err := s.userService.Exists(ctx, userID); err != nil {
		return appErrors.ErrUserNotFound.WithError(err)
	}

	return nil
}
