package gemini

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"strings"

	"google.golang.org/genai"
)

const (
	// Provider is the provider name used in configuration and log fields.
	Provider = "gemini"

	defaultModel = "gemini-2.5-flash"
)

// Generator wraps the Google GenAI client to provide simple prompt-based
// interactions, including incremental streaming.
type Generator struct {
	client    *genai.Client
	modelName string
}

// NewGenerator creates a new Generator configured for the Gemini API backend.
func NewGenerator(ctx context.Context, apiKey, model string) (*Generator, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}

	return &Generator{client: client, modelName: model}, nil
}

// GenerateContent sends the prompt to Gemini and returns the joined textual response.
func (g *Generator) GenerateContent(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error) {
	if g == nil || g.client == nil {
		return "", errors.New("gemini generator is not initialized")
	}

	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", errors.New("prompt must not be empty")
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	output := strings.TrimSpace(joinParts(resp))
	if output == "" {
		return "", errors.New("gemini api returned empty response")
	}

	return output, nil
}

// GenerateStream sends the conversation to Gemini and returns a channel of
// incremental text chunks. The channel is closed when the model finishes or
// the stream breaks; an error is returned only when the stream cannot be
// opened at all.
func (g *Generator) GenerateStream(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (<-chan string, error) {
	if g == nil || g.client == nil {
		return nil, errors.New("gemini generator is not initialized")
	}
	if len(contents) == 0 {
		return nil, errors.New("conversation must not be empty")
	}

	stream := g.client.Models.GenerateContentStream(ctx, g.modelName, contents, config)
	next, stop := iter.Pull2(stream)

	// Pull the first response synchronously so a refused call surfaces as an
	// error instead of an empty stream.
	resp, err, ok := next()
	if err != nil {
		stop()
		return nil, fmt.Errorf("generate content stream: %w", err)
	}

	chunks := make(chan string)
	go func() {
		defer close(chunks)
		defer stop()

		for ok {
			if text := joinParts(resp); text != "" {
				select {
				case chunks <- text:
				case <-ctx.Done():
					return
				}
			}

			resp, err, ok = next()
			if err != nil {
				return
			}
		}
	}()

	return chunks, nil
}

func (g *Generator) Model() string {
	if g == nil {
		return ""
	}
	return g.modelName
}

func joinParts(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil || part.Text == "" {
				continue
			}
			builder.WriteString(part.Text)
		}
	}
	return builder.String()
}
