package service

import (
	"context"
	"errors"
	"testing"

	"github.com/TSC-Home/svelte-grow-todo/internal/domain"
)

// Credential validation happens before any storage call, so a service
// with no repositories behind it is enough here.
func TestSignUpMissingCredentials(t *testing.T) {
	s := &AuthService{}

	cases := []struct{ email, password string }{
		{"", ""},
		{"a@x.com", ""},
		{"", "secret1"},
	}
	for _, tc := range cases {
		_, _, err := s.SignUp(context.Background(), tc.email, tc.password, "")
		if !errors.Is(err, domain.ErrMissingCredentials) {
			t.Fatalf("signup(%q, %q): expected ErrMissingCredentials, got %v", tc.email, tc.password, err)
		}
	}
}

func TestSignInMissingCredentials(t *testing.T) {
	s := &AuthService{}

	_, _, err := s.SignIn(context.Background(), "", "secret1")
	if !errors.Is(err, domain.ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
}
