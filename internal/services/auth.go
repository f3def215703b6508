package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbilibin2017/covid19-portal/internal/logger"
	"github.com/sbilibin2017/covid19-portal/internal/models"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

var (
	ErrUserDoesNotExist = errors.New("username does not exist")
	ErrInvalidPassword  = errors.New("invalid password")
)

// UserReader looks up stored credentials.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// JWTGenerator issues access tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, username string) (string, error)
}

// AuthService checks credentials and issues tokens.
type AuthService struct {
	reader UserReader
	jwt    JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		jwt:    jwt,
	}
}

// Login authenticates a user and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	log := logger.FromContext(ctx)

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		log.Infow("login for unknown user", "username", username)
		return "", ErrUserDoesNotExist
	}

	ok, err := verifyPassword(password, user.PasswordHash)
	if err != nil {
		log.Errorw("stored password hash is unusable", "username", username, "err", err)
		return "", err
	}
	if !ok {
		log.Infow("invalid password", "username", username)
		return "", ErrInvalidPassword
	}

	token, err := svc.jwt.Generate(ctx, user.Username)
	if err != nil {
		log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

// verifyPassword compares password with a bcrypt hash.
// A mismatch is (false, nil); any other failure means the stored hash is broken.
func verifyPassword(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("compare password hash: %w", err)
	}
}
