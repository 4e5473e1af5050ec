package auth

import (
	"context"
	"errors"

	"github.com/mvoskres/postroom/internal/entities"
)

var (
	// ErrUsernameTaken is returned by UserStore.Insert when the username
	// already belongs to another account.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrUserNotFound is returned by UserStore lookups when no matching
	// user exists.
	ErrUserNotFound = errors.New("user not found")
)

// UserStore is the persistence boundary for user records.
//
// Insert must be atomic with respect to the username uniqueness check: of
// two concurrent inserts with the same username exactly one succeeds and
// the other sees ErrUsernameTaken, with no partial writes visible to
// concurrent readers.
type UserStore interface {
	Insert(ctx context.Context, username, passwordHash string) (*entities.User, error)
	GetByUsername(ctx context.Context, username string) (*entities.User, error)
	GetByID(ctx context.Context, id uint) (*entities.User, error)
}

// SessionManager binds opaque caller-held session tokens to user ids. The
// core never mints or parses tokens itself.
//
// SetUserID overwrites any previous binding and returns the token the
// binding now lives under: the input token whenever it already named a live
// session, a freshly minted one otherwise. The transport layer is
// responsible for handing the returned token back to the caller.
// GetUserID returns 0 for tokens with no binding.
type SessionManager interface {
	SetUserID(ctx context.Context, token string, userID uint) (string, error)
	GetUserID(ctx context.Context, token string) (uint, error)
}
