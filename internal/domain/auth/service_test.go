package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/auth"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/user"
	appErrors "github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepository struct {
	createFn     func(ctx context.Context, u *user.User) error
	getByIDFn    func(ctx context.Context, id int) (*user.User, error)
	getByEmailFn func(ctx context.Context, email string) (*user.User, error)
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
	if f.getByEmailFn != nil {
		return f.getByEmailFn(ctx, email)
	}
	return nil, appErrors.ErrUserNotFound
}

func (f *fakeUserRepository) List(ctx context.Context) ([]*user.User, error) { return nil, nil }

func newAuthService(repo *fakeUserRepository) *auth.Service {
	return auth.NewService(user.NewService(repo), "test-secret", time.Hour)
}

func TestRegisterIssuesVerifiableToken(t *testing.T) {
	t.Parallel()

	var created *user.User
	repo := &fakeUserRepository{
		createFn: func(ctx context.Context, u *user.User) error {
			created = u
			return nil
		},
	}
	svc := newAuthService(repo)

	u := &user.User{ID: 123123, FirstName: "Moshe", LastName: "Israeli", Email: "moshe@example.com"}
	token, err := svc.Register(context.Background(), u, "strongpass")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil {
		t.Fatal("expected the user to be persisted")
	}
	if created.Password == "strongpass" {
		t.Fatal("password must be stored hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("strongpass")); err != nil {
		t.Fatalf("stored hash does not match the password: %v", err)
	}

	claims, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("token must verify: %v", err)
	}
	if claims.UserID != 123123 {
		t.Fatalf("claims.UserID = %d, want 123123", claims.UserID)
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	t.Parallel()

	svc := newAuthService(&fakeUserRepository{})

	u := &user.User{ID: 1, Email: "a@b.co"}
	_, err := svc.Register(context.Background(), u, "abc")
	if err == nil {
		t.Fatal("expected error")
	}
	appErr, _ := appErrors.AsAppError(err)
	if appErr == nil || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	t.Parallel()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.DefaultCost)
	known := &user.User{ID: 1, Email: "a@b.co", Password: string(hashed)}

	repo := &fakeUserRepository{
		getByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			if email == known.Email {
				return known, nil
			}
			return nil, appErrors.ErrUserNotFound
		},
	}
	svc := newAuthService(repo)

	_, _, missingErr := svc.Login(context.Background(), "nobody@b.co", "whatever")
	_, _, wrongPassErr := svc.Login(context.Background(), "a@b.co", "wrong")

	for _, err := range []error{missingErr, wrongPassErr} {
		if err == nil {
			t.Fatal("expected error")
		}
		appErr, _ := appErrors.AsAppError(err)
		if appErr == nil || appErr.Code != "UNAUTHORIZED" {
			t.Fatalf("expected UNAUTHORIZED, got %v", err)
		}
		if appErr.Message != appErrors.ErrInvalidCredentials.Message {
			t.Fatalf("login failures must share one message, got %q", appErr.Message)
		}
	}

	u, token, err := svc.Login(context.Background(), "a@b.co", "correct")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ID != 1 || token == "" {
		t.Fatalf("unexpected login result: %+v, %q", u, token)
	}
}

func TestVerifyTokenRejectsForgedSecret(t *testing.T) {
	t.Parallel()

	issuer := newAuthService(&fakeUserRepository{})
	verifier := auth.NewService(user.NewService(&fakeUserRepository{}), "other-secret", time.Hour)

	u := &user.User{ID: 5, Email: "a@b.co"}
	token, err := issuer.Register(context.Background(), u, "strongpass")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := verifier.VerifyToken(token); err == nil {
		t.Fatal("token signed with a different secret must not verify")
	}
}
