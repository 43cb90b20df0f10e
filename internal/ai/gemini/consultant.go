package gemini

import (
	"context"
	"errors"
	"strings"

	_ "embed"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/carwise/carwise/internal/ai"
	"github.com/carwise/carwise/internal/logger"
)

//go:embed consultant_prompt.md
var consultantPersona string

const (
	consultantTemperature     float32 = 0.7
	consultantMaxOutputTokens int32   = 400

	// Only the last maxHistoryTurns turns are sent with each request; older
	// turns fall off to keep the context bounded.
	maxHistoryTurns = 10
)

type streamGenerator interface {
	GenerateStream(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (<-chan string, error)
	Model() string
}

// Consultant is the conversational car-advice assistant. It holds no scoring
// logic; it is a persona-pinned pass-through to the completion API with a
// bounded in-memory conversation history. Not safe for concurrent use; one
// consultant serves one chat session.
type Consultant struct {
	generator streamGenerator
	logger    *zap.Logger
	history   []ai.Turn
	session   string
}

// NewConsultant creates a consultant with a fresh session id and empty history.
func NewConsultant(generator streamGenerator, log *zap.Logger) *Consultant {
	if log == nil {
		log = zap.NewNop()
	}

	session := uuid.NewString()
	return &Consultant{
		generator: generator,
		logger:    log.With(zap.String(logger.FieldSession, session)),
		session:   session,
	}
}

// Session returns the chat session id.
func (c *Consultant) Session() string {
	return c.session
}

// History returns a copy of the retained conversation turns.
func (c *Consultant) History() []ai.Turn {
	out := make([]ai.Turn, len(c.history))
	copy(out, c.history)
	return out
}

// Ask sends the message with the retained history and streams the reply. The
// returned channel delivers incremental chunks and is closed when the reply
// is complete; the joined text is then part of the history. When the call
// cannot start, an error is returned and the caller shows its apology text.
func (c *Consultant) Ask(ctx context.Context, message string) (<-chan string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, errors.New("message must not be empty")
	}

	recent := c.history
	if len(recent) > maxHistoryTurns {
		recent = recent[len(recent)-maxHistoryTurns:]
	}

	contents := make([]*genai.Content, 0, len(recent)+1)
	for _, turn := range recent {
		role := genai.Role(genai.RoleUser)
		if turn.Role == "model" {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Text, role))
	}
	contents = append(contents, genai.NewContentFromText(message, genai.RoleUser))

	cfg := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr(consultantTemperature),
		MaxOutputTokens:   consultantMaxOutputTokens,
		SystemInstruction: genai.NewContentFromText(consultantPersona, genai.RoleUser),
	}

	stream, err := c.generator.GenerateStream(ctx, contents, cfg)
	if err != nil {
		c.logger.Warn("consultant call failed", zap.Error(err))
		return nil, err
	}

	c.logger.Debug("consultant turn started",
		zap.Int("history_turns", len(recent)),
		zap.Int("message_length", len(message)),
	)

	out := make(chan string)
	go func() {
		defer close(out)

		var reply strings.Builder
		for chunk := range stream {
			reply.WriteString(chunk)
			select {
			case out <- chunk:
			case <-ctx.Done():
				return
			}
		}

		// The joined text is the durable result; record the exchange only
		// once the stream has completed.
		c.history = append(c.history,
			ai.Turn{Role: "user", Text: message},
			ai.Turn{Role: "model", Text: reply.String()},
		)
	}()

	return out, nil
}
