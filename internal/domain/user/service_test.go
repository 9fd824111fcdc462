package user_test

import (
	"context"
	"testing"

	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/user"
	appErrors "github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/errors"
)

type fakeUserRepository struct {
	createFn  func(ctx context.Context, u *user.User) error
	getByIDFn func(ctx context.Context, id int) (*user.User, error)
}

func (f *fakeUserRepository) Create(ctx context.Context, u *user.User) error {
	if f.createFn != nil {
		return f.createFn(ctx, u)
	}
	return nil
}

func (f *fakeUserRepository) Update(ctx context.Context, u *user.User) error { return nil }
func (f *fakeUserRepository) Delete(ctx context.Context, id int) error       { return nil }

func (f *fakeUserRepository) GetByID(ctx context.Context, id int) (*user.User, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, appErrors.ErrUserNotFound
}

func (f *fakeUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, appErrors.ErrUserNotFound
}

func (f *fakeUserRepository) List(ctx context.Context) ([]*user.User, error) { return nil, nil }

func TestCreateValidations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		user *user.User
	}{
		{
			name: "zero id",
			user: &user.User{ID: 0, Email: "a@b.co"},
		},
		{
			name: "negative id",
			user: &user.User{ID: -3, Email: "a@b.co"},
		},
		{
			name: "malformed email",
			user: &user.User{ID: 1, Email: "not-an-email"},
		},
		{
			name: "email without tld",
			user: &user.User{ID: 1, Email: "a@b"},
		},
	}

	ctx := context.Background()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			svc := user.NewService(&fakeUserRepository{})

			err := svc.Create(ctx, tt.user)
			if err == nil {
				t.Fatal("expected error")
			}
			appErr, ok := appErrors.AsAppError(err)
			if !ok || appErr.Code != "VALIDATION_ERROR" {
				t.Fatalf("expected VALIDATION_ERROR, got %v", err)
			}
		})
	}
}

func TestCreateRejectsDuplicateID(t *testing.T) {
	t.Parallel()

	repo := &fakeUserRepository{
		getByIDFn: func(ctx context.Context, id int) (*user.User, error) {
			return &user.User{ID: id}, nil
		},
		createFn: func(ctx context.Context, u *user.User) error {
			t.Fatal("duplicate user must not be persisted")
			return nil
		},
	}
	svc := user.NewService(repo)

	err := svc.Create(context.Background(), &user.User{ID: 123123, Email: "a@b.co"})
	if err == nil {
		t.Fatal("expected error")
	}
	appErr, _ := appErrors.AsAppError(err)
	if appErr == nil || appErr.Code != "CONFLICT" {
		t.Fatalf("expected CONFLICT, got %v", err)
	}
}

func TestCreateNormalizesEmail(t *testing.T) {
	t.Parallel()

	var created *user.User
	repo := &fakeUserRepository{
		createFn: func(ctx context.Context, u *user.User) error {
			created = u
			return nil
		},
	}
	svc := user.NewService(repo)

	err := svc.Create(context.Background(), &user.User{
		ID:        123123,
		FirstName: " Moshe ",
		LastName:  " Israeli ",
		Email:     "  Moshe@Example.COM  ",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Email != "moshe@example.com" {
		t.Fatalf("email not normalized: %q", created.Email)
	}
	if created.FirstName != "Moshe" || created.LastName != "Israeli" {
		t.Fatalf("names not trimmed: %q %q", created.FirstName, created.LastName)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatal("expected timestamps to be set")
	}
}
