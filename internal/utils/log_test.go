package utils

import "testing"

func TestTruncateForLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		limit  int
		expect string
	}{
		{
			name:   "returns empty when limit non-positive",
			input:  "Coffee, mountains and bad puns",
			limit:  0,
			expect: "",
		},
		{
			name:   "short bio is kept",
			input:  "Coffee",
			limit:  10,
			expect: "Coffee",
		},
		{
			name:   "long bio is cut",
			input:  "Coffee, mountains and bad puns",
			limit:  6,
			expect: "Coffee...",
		},
		{
			name:   "counts runes, not bytes",
			input:  "Привет, мир",
			limit:  6,
			expect: "Привет...",
		},
		{
			name:   "trims surrounding whitespace",
			input:  "\n  hiking  \n",
			limit:  4,
			expect: "hiki...",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TruncateForLog(tt.input, tt.limit); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}
