// Package auth implements the authentication core of postroom: credential
// validation, password hashing, registration with duplicate-username
// conflict detection, login, and current-user lookup via session tokens.
//
// The package owns no storage. User records come through the UserStore
// interface and the caller's authenticated state lives behind the
// SessionManager interface, both implemented elsewhere (see
// internal/database/users and internal/session). This keeps the flow free
// of process-wide state and runnable against in-memory fakes in tests.
package auth
