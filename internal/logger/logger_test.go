package logger

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
			input:  "hello world",
			limit:  0,
			expect: "",
		},
		{
			name:   "shorter than limit",
			input:  "hello",
			limit:  10,
			expect: "hello",
		},
		{
			name:   "truncates and adds ellipsis",
			input:  "hello world",
			limit:  5,
			expect: "hello...",
		},
		{
			name:   "trims surrounding whitespace",
			input:  "  spaced  ",
			limit:  5,
			expect: "space...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TruncateForLog(tt.input, tt.limit); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestNew(t *testing.T) {
	for _, json := range []bool{true, false} {
		logger, err := New(json, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if logger == nil {
			t.Fatalf("expected a logger")
		}
	}
}

func TestEncoderConfig(t *testing.T) {
	t.Parallel()

	cfg := encoderConfig(false)
	if cfg.MessageKey != "event" {
		t.Fatalf("expected lines keyed by event, got %q", cfg.MessageKey)
	}
	if cfg.CallerKey != "" {
		t.Fatalf("caller key must be off outside debug, got %q", cfg.CallerKey)
	}

	if cfg := encoderConfig(true); cfg.CallerKey != "caller" {
		t.Fatalf("expected caller key at debug level, got %q", cfg.CallerKey)
	}
}
