package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/mvoskres/postroom/internal/entities"
)

// Field error messages surfaced by Register and Login. Login failure
// messages stay deliberately terse; they must not reveal more than the
// field label already does.
const (
	msgUsernameTaken   = "username already taken"
	msgUnknownUsername = "that username does not exist"
	msgWrongPassword   = "incorrect password"
)

// Service orchestrates the authentication flow. It holds no mutable state
// and is safe for arbitrary concurrency as long as its collaborators honor
// their contracts.
type Service struct {
	users    UserStore
	sessions SessionManager
	hasher   PasswordHasher
}

// NewService creates an authentication service on top of the given
// collaborators.
func NewService(users UserStore, sessions SessionManager, hasher PasswordHasher) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		hasher:   hasher,
	}
}

// Register creates an account and logs the caller in under the returned
// session token. Validation and business-rule failures come back inside the
// Result; anything else (hasher, store or session failure) is returned as
// an error for the transport layer to turn into a generic failure response.
// Validation runs before any hashing or store access, and a conflicting
// registration leaves no user row and no session binding.
func (s *Service) Register(ctx context.Context, creds Credentials, token string) (Result, string, error) {
	if errs := ValidateCredentials(creds); len(errs) > 0 {
		return Result{Errors: errs}, token, nil
	}

	hash, err := s.hasher.Hash(creds.Password)
	if err != nil {
		return Result{}, token, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.users.Insert(ctx, creds.Username, hash)
	if err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			return errorResult("username", msgUsernameTaken), token, nil
		}
		return Result{}, token, fmt.Errorf("failed to insert user: %w", err)
	}

	token, err = s.sessions.SetUserID(ctx, token, user.ID)
	if err != nil {
		return Result{}, token, fmt.Errorf("failed to bind session: %w", err)
	}

	return Result{User: user}, token, nil
}

// Login verifies credentials and binds the caller's session to the user.
// The same validation rules as Register apply before any store access.
func (s *Service) Login(ctx context.Context, creds Credentials, token string) (Result, string, error) {
	if errs := ValidateCredentials(creds); len(errs) > 0 {
		return Result{Errors: errs}, token, nil
	}

	user, err := s.users.GetByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return errorResult("username", msgUnknownUsername), token, nil
		}
		return Result{}, token, fmt.Errorf("failed to look up user: %w", err)
	}

	if !s.hasher.Verify(user.PasswordHash, creds.Password) {
		return errorResult("password", msgWrongPassword), token, nil
	}

	token, err = s.sessions.SetUserID(ctx, token, user.ID)
	if err != nil {
		return Result{}, token, fmt.Errorf("failed to bind session: %w", err)
	}

	return Result{User: user}, token, nil
}

// Me resolves the caller's session token to a user. An unbound token, or a
// binding whose user no longer exists, degrades to anonymous (nil, nil)
// rather than an error; the store is not touched for unbound tokens.
func (s *Service) Me(ctx context.Context, token string) (*entities.User, error) {
	userID, err := s.sessions.GetUserID(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if userID == 0 {
		return nil, nil
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	return user, nil
}
