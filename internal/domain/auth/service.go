package auth

import (
	"context"
	"time"

	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/domain/user"
	appErrors "github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/errors"
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/logger"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	Users     *user.Service
	Secret    string
	ExpiresIn time.Duration
}

func NewService(users *user.Service, secret string, expiresIn time.Duration) *Service {
	return &Service{Users: users, Secret: secret, ExpiresIn: expiresIn}
}

type Claims struct {
	UserID int    `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Register creates the user with a hashed password and issues a token.
func (s *Service) Register(ctx context.Context, u *user.User, password string) (string, error) {
	if len(password) < 6 {
		return "", appErrors.NewValidationError("password", "password must be at least 6 characters")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", appErrors.ErrInternalServer.WithError(err)
	}
	u.Password = string(hashed)

	if err := s.Users.Create(ctx, u); err != nil {
		return "", err
	}

	logger.Info().Int("userid", u.ID).Msg("User registered")
	return s.issueToken(u)
}

// Login verifies credentials and issues a token. Missing users and wrong
// passwords are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (*user.User, string, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", appErrors.ErrInvalidCredentials
	}

	if u.Password == "" {
		return nil, "", appErrors.ErrInvalidCredentials.WithMessage("User account not set up for authentication")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, "", appErrors.ErrInvalidCredentials
	}

	token, err := s.issueToken(u)
	if err != nil {
		return nil, "", err
	}

	logger.Info().Int("userid", u.ID).Msg("User logged in")
	return u, token, nil
}

func (s *Service) issueToken(u *user.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: u.ID,
		Email:  u.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ExpiresIn)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.Secret))
	if err != nil {
		return "", appErrors.ErrInternalServer.WithError(err)
	}
	return signed, nil
}

// VerifyToken parses and validates a bearer token, returning its claims.
func (s *Service) VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, appErrors.ErrUnauthorized
		}
		return []byte(s.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, appErrors.ErrUnauthorized.WithError(err)
	}
	return claims, nil
}
