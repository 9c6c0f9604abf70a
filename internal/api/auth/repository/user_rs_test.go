package authRepository

import (
	"errors"
	"testing"

	"github.com/lib/pq"
)

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"email key", &pq.Error{Code: "23505", Constraint: "users_email_key"}, true},
		{"other constraint", &pq.Error{Code: "23505", Constraint: "users_pkey"}, false},
		{"other code", &pq.Error{Code: "23503", Constraint: "users_email_key"}, false},
		{"plain error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isUniqueViolation(tt.err, "users_email_key"); got != tt.want {
				t.Errorf("isUniqueViolation() = %v, want %v", got, tt.want)
			}
		})
	}
}
