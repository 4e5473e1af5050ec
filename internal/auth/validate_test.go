package auth

import (
	"reflect"
	"testing"
)

func TestValidateCredentials(t *testing.T) {
	tests := []struct {
		name  string
		creds Credentials
		want  []FieldError
	}{
		{
			name:  "valid credentials",
			creds: Credentials{Username: "alice", Password: "secret1"},
			want:  nil,
		},
		{
			name:  "username too short",
			creds: Credentials{Username: "al", Password: "secret1"},
			want: []FieldError{
				{Field: "username", Message: "length must be greater than 2"},
			},
		},
		{
			name:  "password too short",
			creds: Credentials{Username: "alice", Password: "pw"},
			want: []FieldError{
				// The password rule reports under the username field;
				// pinned behavior, see the constant docs in validate.go.
				{Field: "username", Message: "length must be greater than 3"},
			},
		},
		{
			name:  "both too short, username rule first",
			creds: Credentials{Username: "al", Password: "pw"},
			want: []FieldError{
				{Field: "username", Message: "length must be greater than 2"},
				{Field: "username", Message: "length must be greater than 3"},
			},
		},
		{
			name:  "boundary username of three chars passes",
			creds: Credentials{Username: "abc", Password: "abcd"},
			want:  nil,
		},
		{
			name:  "empty everything",
			creds: Credentials{},
			want: []FieldError{
				{Field: "username", Message: "length must be greater than 2"},
				{Field: "username", Message: "length must be greater than 3"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateCredentials(tt.creds)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ValidateCredentials() = %v, want %v", got, tt.want)
			}
		})
	}
}
