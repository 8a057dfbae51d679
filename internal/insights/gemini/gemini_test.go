package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/cadencehq/cadence/internal/insights"
)

type fakeModels struct {
	model  string
	config *genai.GenerateContentConfig
	prompt string

	resp *genai.GenerateContentResponse
	err  error
}

func (f *fakeModels) GenerateContent(
	_ context.Context,
	model string,
	contents []*genai.Content,
	config *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {
	f.model = model
	f.config = config
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.prompt = contents[0].Parts[0].Text
	}

	return f.resp, f.err
}

func TestGenerator_Generate(t *testing.T) {
	f := &fakeModels{
		resp: &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: []*genai.Part{{Text: `{"a":`}, {Text: `1}`}}}},
			},
			UsageMetadata: &genai.GenerateContentResponseUsageMetadata{
				PromptTokenCount:     12,
				CandidatesTokenCount: 3,
				TotalTokenCount:      15,
			},
		},
	}

	g := newGenerator(f, "")
	assert.Equal(t, DefaultModel, g.Model())

	resp, err := g.Generate(context.Background(), insights.Request{Prompt: "prompt", Temperature: 0.3, MaxTokens: 1500})
	require.NoError(t, err)

	assert.Equal(t, `{"a":1}`, resp.Text)
	assert.Equal(t, insights.Usage{PromptTokens: 12, CompletionTokens: 3, TotalTokens: 15}, resp.Usage)

	assert.Equal(t, DefaultModel, f.model)
	assert.Equal(t, "prompt", f.prompt)
	require.NotNil(t, f.config)
	assert.Equal(t, "application/json", f.config.ResponseMIMEType)
	require.NotNil(t, f.config.Temperature)
	assert.InDelta(t, 0.3, *f.config.Temperature, 1e-6)
	assert.EqualValues(t, 1500, f.config.MaxOutputTokens)
}

func TestGenerator_Generate_Errors(t *testing.T) {
	tt := []struct {
		name     string
		resp     *genai.GenerateContentResponse
		err      error
		expected error
	}{
		{
			name:     "api error",
			err:      context.DeadlineExceeded,
			expected: context.DeadlineExceeded,
		},
		{
			name:     "no candidates",
			resp:     &genai.GenerateContentResponse{},
			expected: ErrEmptyResponse,
		},
		{
			name:     "no content",
			resp:     &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}},
			expected: ErrEmptyResponse,
		},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			g := newGenerator(&fakeModels{resp: tc.resp, err: tc.err}, "gemini-1.5-pro")

			_, err := g.Generate(context.Background(), insights.Request{Prompt: "prompt"})
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.expected))
		})
	}
}

func TestNew_NoKey(t *testing.T) {
	_, err := New(context.Background(), "", "")
	require.Error(t, err)
}
