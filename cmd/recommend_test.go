package cmd

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestAIUnavailableMessage(t *testing.T) {
	_, err := newAIScorer(context.Background(), &AIConfig{Provider: "openai", Gemini: &GeminiConfig{}}, zap.NewNop())
	if err == nil {
		t.Fatalf("expected an error for an unsupported provider")
	}

	msg := aiUnavailableMessage(err)
	if !strings.Contains(msg, "unsupported ai provider: openai") {
		t.Fatalf("message must carry the actual failure, got %q", msg)
	}
	if !strings.Contains(msg, "showing rule-based matches instead") {
		t.Fatalf("message must announce the rule-based fallback, got %q", msg)
	}
}

func TestNewAIScorerErrors(t *testing.T) {
	ctx := context.Background()

	if _, err := newAIScorer(ctx, nil, zap.NewNop()); err == nil {
		t.Fatalf("expected an error without a gemini config")
	}

	_, err := newAIScorer(ctx, &AIConfig{Gemini: &GeminiConfig{}}, zap.NewNop())
	if err == nil || !strings.Contains(err.Error(), "gemini api key") {
		t.Fatalf("expected a key resolution error, got %v", err)
	}
}
