package auth

import "github.com/mvoskres/postroom/internal/entities"

// Credentials is the transient username/password pair supplied by a caller.
// The plaintext password is discarded as soon as it has been hashed or
// verified; nothing here is ever persisted.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// FieldError describes a single validation or business-rule failure,
// attributed to the input field it concerns.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result is the outcome of Register or Login: either a user or a non-empty
// list of field errors, never both.
type Result struct {
	User   *entities.User `json:"user,omitempty"`
	Errors []FieldError   `json:"errors,omitempty"`
}

// OK reports whether the result carries a user.
func (r Result) OK() bool {
	return r.User != nil
}

func errorResult(field, message string) Result {
	return Result{Errors: []FieldError{{Field: field, Message: message}}}
}
