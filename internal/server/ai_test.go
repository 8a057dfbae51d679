package server

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadencehq/cadence/internal/analytics"
	"github.com/cadencehq/cadence/internal/entities"
	"github.com/cadencehq/cadence/internal/insights"
	"github.com/cadencehq/cadence/internal/service"
	smock "github.com/cadencehq/cadence/internal/service/mock"
)

func Test_generateHeadlines(t *testing.T) {
	router, _, a := newTestRouter(t, Options{})

	a.EXPECT().GenerateHeadlines(gomock.Any(), insights.HeadlinesRequest{
		Content:  "We shipped dark mode",
		Platform: entities.TwitterPlatform,
		Tone:     entities.PlayfulTone,
		Count:    2,
	}).Return(&insights.HeadlinesResult{
		Headlines: []insights.Headline{
			{Text: "Lights out!", Score: 90, Reasoning: "punchy"},
			{Text: "Dark mode is here", Score: 80, Reasoning: "clear"},
		},
		Cached: true,
	}, nil)

	w := serve(router, http.MethodPost, "/api/ai/headlines", `{"content":"We shipped dark mode","platform":"twitter","tone":"playful","count":2}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `
{
	"success": true,
	"data": [
		{"text": "Lights out!", "score": 90, "reasoning": "punchy"},
		{"text": "Dark mode is here", "score": 80, "reasoning": "clear"}
	],
	"cached": true
}`, w.Body.String())
}

func Test_generateHeadlines_Invalid(t *testing.T) {
	tt := []struct {
		name string
		body string
		rsp  string
	}{
		{
			name: "count",
			body: `{"content":"c","count":11}`,
			rsp:  `{"success":false,"error":"Validation failed","details":[{"field":"count","message":"Count must be between 1 and 10"}]}`,
		},
		{
			name: "tone",
			body: `{"content":"c","tone":"sarcastic"}`,
			rsp:  `{"success":false,"error":"Validation failed","details":[{"field":"tone","message":"Invalid tone"}]}`,
		},
		{
			name: "content",
			body: `{"platform":"blog"}`,
			rsp:  `{"success":false,"error":"Validation failed","details":[{"field":"content","message":"Content is required"}]}`,
		},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			router, _, _ := newTestRouter(t, Options{})

			w := serve(router, http.MethodPost, "/api/ai/headlines", tc.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, tc.rsp, w.Body.String())
		})
	}
}

func Test_aiErrors(t *testing.T) {
	tt := []struct {
		name string
		err  error
		code int
	}{
		{name: "malformed", err: fmt.Errorf("%w: not json", insights.ErrMalformedResponse), code: http.StatusBadGateway},
		{name: "timeout", err: fmt.Errorf("failed to generate: %w", context.DeadlineExceeded), code: http.StatusGatewayTimeout},
		{name: "unknown", err: fmt.Errorf("quota exceeded"), code: http.StatusInternalServerError},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			router, _, a := newTestRouter(t, Options{})

			a.EXPECT().ClassifyTone(gomock.Any(), "content").Return(nil, tc.err)

			w := serve(router, http.MethodPost, "/api/ai/classify-tone", `{"content":"content"}`)

			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func Test_rewrite(t *testing.T) {
	router, _, a := newTestRouter(t, Options{})

	a.EXPECT().Rewrite(gomock.Any(), insights.RewriteRequest{
		Content:        "buy now",
		TargetTone:     entities.EducationalTone,
		ReferenceStyle: "short sentences",
	}).Return(&insights.RewriteResult{
		Rewritten:    "Here is why it matters.",
		Changes:      []string{"softened"},
		ToneAnalysis: insights.ToneAnalysis{Original: "urgent", Applied: "educational"},
	}, nil)

	w := serve(router, http.MethodPost, "/api/ai/rewrite", `{"content":"buy now","targetTone":"educational","referenceStyle":"short sentences"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `
{
	"success": true,
	"data": {
		"rewritten": "Here is why it matters.",
		"changes": ["softened"],
		"toneAnalysis": {"original": "urgent", "applied": "educational"}
	},
	"cached": false
}`, w.Body.String())
}

func Test_explainTiming(t *testing.T) {
	router, s, a := newTestRouter(t, Options{})

	slots := []analytics.Slot{{Rank: 1, Day: "Tuesday", DayIndex: 2, Hour: 9, HourFormatted: "9:00 AM", AvgEngagement: 8, PostCount: 4}}
	heatmap := &analytics.Heatmap{
		Data: []analytics.HeatmapCell{
			{Day: "Monday", Hour: 8, HourFormatted: "8:00 AM", AvgEngagement: 2},
			{Day: "Tuesday", Hour: 9, HourFormatted: "9:00 AM", AvgEngagement: 8},
		},
	}

	s.EXPECT().GetBestSlots(gomock.Any(), gomock.Any(), timingSlotsLimit).DoAndReturn(func(_ context.Context, f service.Filter, _ int) ([]analytics.Slot, error) {
		require.NotNil(t, f.Platform)
		assert.Equal(t, entities.LinkedInPlatform, *f.Platform)
		return slots, nil
	})
	s.EXPECT().GetHeatmap(gomock.Any(), gomock.Any()).Return(heatmap, nil)

	a.EXPECT().ExplainTiming(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r insights.TimingRequest) (*insights.TimingResult, error) {
		assert.Equal(t, slots, r.BestSlots)
		assert.Equal(t, []string{"Tuesday 9:00 AM: 8", "Monday 8:00 AM: 2"}, r.HeatmapSummary)
		assert.Equal(t, "linkedin", r.Platform)
		assert.Equal(t, "2024-01-01 - 2024-01-31", r.DateRange)

		return &insights.TimingResult{Summary: "Mornings win", ConfidenceLevel: "medium"}, nil
	})

	w := serve(router, http.MethodPost, "/api/ai/explain-timing", `{"startDate":"2024-01-01","endDate":"2024-01-31","platform":"linkedin"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"summary":"Mornings win"`)
}

func Test_getUsage(t *testing.T) {
	tt := []struct {
		name  string
		query string
		days  int
		code  int
	}{
		{name: "default", days: insights.DefaultUsageDays, code: http.StatusOK},
		{name: "custom", query: "?days=7", days: 7, code: http.StatusOK},
		{name: "invalid", query: "?days=week", code: http.StatusBadRequest},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			router, _, a := newTestRouter(t, Options{})

			if tc.code == http.StatusOK {
				a.EXPECT().UsageStats(gomock.Any(), tc.days).Return(&insights.UsageStats{Daily: []insights.DailyUsage{}}, nil)
			}

			w := serve(router, http.MethodGet, "/api/ai/usage"+tc.query, "")

			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func Test_aiRateLimit(t *testing.T) {
	router, _, a := newTestRouter(t, Options{AIRateLimit: 1, AIRateWindow: time.Minute})

	a.EXPECT().ClassifyTone(gomock.Any(), "c").Return(&insights.ToneResult{PrimaryTone: "neutral"}, nil)

	assert.Equal(t, http.StatusOK, serve(router, http.MethodPost, "/api/ai/classify-tone", `{"content":"c"}`).Code)

	w := serve(router, http.MethodPost, "/api/ai/classify-tone", `{"content":"c"}`)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Too many AI requests. Please wait a moment before trying again."}`, w.Body.String())
}

func Test_aiDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := chi.NewRouter()
	SetupRouter(smock.NewMockService(ctrl), nil, router, Options{})

	w := serve(router, http.MethodPost, "/api/ai/classify-tone", `{"content":"c"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
