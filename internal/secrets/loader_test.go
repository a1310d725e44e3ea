package secrets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validToken = "6f0a8f2c-3f5e-4b1a-9a4e-2f0f2d7c9b11"

func writeSecret(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "secret")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write secret: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     func(t *testing.T) Source
		want    string
		wantErr string
	}{
		{
			name: "inline value is trimmed",
			src:  func(*testing.T) Source { return Source{Name: "token", Value: "  abc \n"} },
			want: "abc",
		},
		{
			name: "file takes precedence over value",
			src: func(t *testing.T) Source {
				return Source{Name: "token", Value: "inline", File: writeSecret(t, "from-file\n")}
			},
			want: "from-file",
		},
		{
			name:    "empty file",
			src:     func(t *testing.T) Source { return Source{Name: "token", File: writeSecret(t, " \n")} },
			wantErr: "is empty",
		},
		{
			name:    "missing file",
			src:     func(t *testing.T) Source { return Source{Name: "token", File: filepath.Join(t.TempDir(), "nope")} },
			wantErr: "reading token from file",
		},
		{
			name:    "nothing configured uses default name",
			src:     func(*testing.T) Source { return Source{} },
			wantErr: "secret is not configured",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Load(tt.src(t))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestLoadToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "valid", value: validToken},
		{name: "valid with whitespace", value: " " + validToken + "\n"},
		{name: "malformed", value: "not-a-token", wantErr: true},
		{name: "nil uuid", value: "00000000-0000-0000-0000-000000000000", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			token, err := LoadToken(Source{Name: "tinder token", Value: tt.value})
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got token %s", token)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if token.String() != validToken {
				t.Fatalf("expected %s, got %s", validToken, token)
			}
		})
	}
}
