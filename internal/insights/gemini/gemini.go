// Package gemini contains insights.Generator implementation backed by Gemini models.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/cadencehq/cadence/internal/insights"
)

// DefaultModel ...
const DefaultModel = "gemini-2.0-flash"

// ErrEmptyResponse is returned when model returned no candidates.
var ErrEmptyResponse = errors.New("empty response")

type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

type generator struct {
	m     contentGenerator
	model string
}

// New returns new instance of Gemini generator.
func New(ctx context.Context, apiKey, model string) (insights.Generator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return newGenerator(client.Models, model), nil
}

func newGenerator(m contentGenerator, model string) generator {
	if model == "" {
		model = DefaultModel
	}

	return generator{
		m:     m,
		model: model,
	}
}

func (g generator) Model() string {
	return g.model
}

func (g generator) Generate(ctx context.Context, r insights.Request) (*insights.Response, error) {
	temperature := r.Temperature

	resp, err := g.m.GenerateContent(ctx, g.model, genai.Text(r.Prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		Temperature:      &temperature,
		MaxOutputTokens:  r.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, ErrEmptyResponse
	}

	var text strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if p != nil {
			text.WriteString(p.Text)
		}
	}

	out := insights.Response{
		Text: text.String(),
	}

	if u := resp.UsageMetadata; u != nil {
		out.Usage = insights.Usage{
			PromptTokens:     int64(u.PromptTokenCount),
			CompletionTokens: int64(u.CandidatesTokenCount),
			TotalTokens:      int64(u.TotalTokenCount),
		}
	}

	return &out, nil
}
