package auth

// Field error messages for credential validation. The password-length
// failure is reported under the "username" field: clients grew to depend on
// the historical pairing, so it stays until the response shape is versioned.
const (
	msgUsernameTooShort = "length must be greater than 2"
	msgPasswordTooShort = "length must be greater than 3"
)

// ValidateCredentials checks the shape of a username/password pair. Both
// rules are evaluated unconditionally and failures are returned in rule
// order, username first. An empty slice means the credentials are
// well-formed. Pure; no store or hasher involvement.
func ValidateCredentials(c Credentials) []FieldError {
	var errs []FieldError
	if len(c.Username) <= 2 {
		errs = append(errs, FieldError{Field: "username", Message: msgUsernameTooShort})
	}
	if len(c.Password) <= 3 {
		errs = append(errs, FieldError{Field: "username", Message: msgPasswordTooShort})
	}
	return errs
}
