package client

import (
	"errors"
	"testing"
)

func TestAPIPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		segments []string
		expected string
	}{
		{"no segments", nil, "/api/v3"},
		{"plain segments", []string{"teams", "all"}, "/api/v3/teams/all"},
		{"slash in identifier", []string{"users", "a/b", "get"}, "/api/v3/users/a%2Fb/get"},
		{"space in identifier", []string{"users", "a b"}, "/api/v3/users/a%20b"},
		{"dot segments escaped", []string{"teams", "../etc"}, "/api/v3/teams/..%2Fetc"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := apiPath(tt.segments...); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestCheckPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"relative path", "/api/v3/users/me", false},
		{"built path", apiPath("teams", "t1", "channels") + "/", false},
		{"absolute URL rejected", "https://evil.example.com/api", true},
		{"scheme-relative rejected", "//evil.example.com/api", true},
		{"control character rejected", "/api/v3/\x7f", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := checkPath(tt.path)

			if !tt.wantErr {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}

			var parseErr *URIParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("expected URIParseError, got %v", err)
			}

			if parseErr.Path != tt.path {
				t.Errorf("expected error to carry path %q, got %q", tt.path, parseErr.Path)
			}
		})
	}
}
