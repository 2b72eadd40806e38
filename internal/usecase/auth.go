package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/polkiloo/zoopark/internal/domain/errors"
	"github.com/polkiloo/zoopark/internal/domain/model"
	"github.com/polkiloo/zoopark/internal/domain/repository"
	pkgAuth "github.com/polkiloo/zoopark/internal/pkg/auth"
)

// AuthUseCase handles keeper account lifecycle and session tokens.
type AuthUseCase struct {
	users    repository.UserRepository
	hasher   pkgAuth.PasswordHasher
	sessions pkgAuth.SessionCodec
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, codec pkgAuth.SessionCodec) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, sessions: codec}
}

// Register creates a new user. Registration does not log the user in;
// the caller is expected to send them to the login page.
func (u *AuthUseCase) Register(ctx context.Context, username, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, domainErrors.ErrMissingFields
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	usr, err := u.users.Create(ctx, username, hash)
	if err != nil {
		return nil, err
	}

	return usr, nil
}

// Authenticate validates credentials and returns a session token. Unknown
// user and wrong password collapse into the same error so usernames
// cannot be enumerated.
func (u *AuthUseCase) Authenticate(ctx context.Context, username, password string) (*model.User, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.sessions.Issue(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseSession extracts the user ID from a session token.
func (u *AuthUseCase) ParseSession(token string) (int64, error) {
	if token == "" {
		return 0, pkgAuth.ErrInvalidSession
	}
	return u.sessions.Parse(token)
}

// GetByID fetches a user by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}
