package insights

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cadencehq/cadence/internal/analytics"
	"github.com/cadencehq/cadence/internal/entities"
)

var log = logrus.WithFields(logrus.Fields{
	"layer":   "insights",
	"package": "insights",
})

// TTLs defines how long answers of each operation are cached.
type TTLs struct {
	Headlines time.Duration
	Rewrite   time.Duration
	Timing    time.Duration
	Tone      time.Duration
}

// DefaultTTLs ...
var DefaultTTLs = TTLs{
	Headlines: time.Hour,
	Rewrite:   time.Hour,
	Timing:    24 * time.Hour,
	Tone:      24 * time.Hour,
}

// Pricing is a price in USD per 1000 tokens.
type Pricing struct {
	Input  float64
	Output float64
}

var (
	defaultPricing = Pricing{Input: 0.0005, Output: 0.0015}
	premiumPricing = Pricing{Input: 0.03, Output: 0.06}
)

// PricingFor returns pricing of the model.
func PricingFor(model string) Pricing {
	if strings.Contains(strings.ToLower(model), "pro") {
		return premiumPricing
	}
	return defaultPricing
}

// EstimateCost returns estimated cost of the usage in USD cents.
func EstimateCost(model string, u Usage) float64 {
	p := PricingFor(model)
	return (float64(u.PromptTokens)/1000*p.Input + float64(u.CompletionTokens)/1000*p.Output) * 100
}

// CacheKey returns cache key of the prompt executed within the context.
func CacheKey(prompt string, context interface{}) string {
	b, _ := json.Marshal(context)
	sum := sha256.Sum256([]byte(prompt + "::" + string(b)))
	return hex.EncodeToString(sum[:])
}

type assistant struct {
	g   Generator
	c   Cache
	u   UsageStorage
	ttl TTLs
	now func() time.Time
}

// New returns new instance of Assistant.
func New(g Generator, c Cache, u UsageStorage, ttl TTLs) Assistant {
	return assistant{
		g:   g,
		c:   c,
		u:   u,
		ttl: ttl,
		now: time.Now,
	}
}

type call struct {
	op      entities.Operation
	req     Request
	context interface{}
	ttl     time.Duration
}

// do executes the call through the cache and decodes model's answer into out.
func (a assistant) do(ctx context.Context, c call, out interface{}) (bool, error) {
	key := CacheKey(c.req.Prompt, c.context)

	e, err := a.c.Get(ctx, key)
	switch {
	case err == nil:
		if err := json.Unmarshal(e.Response, out); err == nil {
			a.track(ctx, c.op, e.Model, Usage{}, true)
			return true, nil
		}
		log.WithField("key", key).Warn("failed to decode cached response")
	case errors.Is(err, ErrCacheMiss):
	default:
		log.WithError(err).Warn("failed to get cached response")
	}

	resp, err := a.g.Generate(ctx, c.req)
	if err != nil {
		return false, fmt.Errorf("failed to generate: %w", err)
	}

	text := cleanJSON(resp.Text)
	if err := json.Unmarshal([]byte(text), out); err != nil {
		log.WithError(err).WithField("operation", c.op).Debug(resp.Text)
		return false, fmt.Errorf("%w: %s", ErrMalformedResponse, err)
	}

	if err := a.c.Set(ctx, key, &CacheEntry{
		Operation: c.op,
		Model:     a.g.Model(),
		Response:  json.RawMessage(text),
		Usage:     resp.Usage,
	}, c.ttl); err != nil {
		log.WithError(err).Warn("failed to cache response")
	}

	a.track(ctx, c.op, a.g.Model(), resp.Usage, false)

	return false, nil
}

func (a assistant) track(ctx context.Context, op entities.Operation, model string, u Usage, cached bool) {
	usage := &entities.AIUsage{
		Date:         a.now().UTC(),
		Operation:    op,
		Model:        model,
		RequestCount: 1,
	}

	if cached {
		usage.CacheHits = 1
	} else {
		usage.PromptTokens = u.PromptTokens
		usage.CompletionTokens = u.CompletionTokens
		usage.TotalTokens = u.TotalTokens
		usage.EstimatedCost = EstimateCost(model, u)
	}

	if err := a.u.TrackAIUsage(ctx, usage); err != nil {
		log.WithError(err).WithField("operation", op).Error("failed to track usage")
	}
}

func (a assistant) GenerateHeadlines(ctx context.Context, r HeadlinesRequest) (*HeadlinesResult, error) {
	if r.Platform == "" {
		r.Platform = "general"
	}
	if r.Tone == "" {
		r.Tone = entities.ProfessionalTone
	}
	if r.Count <= 0 {
		r.Count = DefaultHeadlinesCount
	}
	if r.Count > MaxHeadlinesCount {
		r.Count = MaxHeadlinesCount
	}
	if r.MaxLength <= 0 {
		r.MaxLength = DefaultHeadlineLength
	}

	var res HeadlinesResult
	cached, err := a.do(ctx, call{
		op: entities.HeadlinesOperation,
		req: Request{
			Prompt:      headlinesPrompt(r),
			Temperature: 0.7,
			MaxTokens:   1000,
		},
		context: map[string]interface{}{
			"platform":  r.Platform,
			"tone":      r.Tone,
			"count":     r.Count,
			"maxLength": r.MaxLength,
		},
		ttl: a.ttl.Headlines,
	}, &res)
	if err != nil {
		return nil, err
	}

	if len(res.Headlines) > r.Count {
		res.Headlines = res.Headlines[:r.Count]
	}
	res.Cached = cached

	return &res, nil
}

func (a assistant) Rewrite(ctx context.Context, r RewriteRequest) (*RewriteResult, error) {
	if r.TargetTone == "" {
		r.TargetTone = entities.ProfessionalTone
	}
	if r.Platform == "" {
		r.Platform = "general"
	}

	var res RewriteResult
	cached, err := a.do(ctx, call{
		op: entities.RewriteOperation,
		req: Request{
			Prompt:      rewritePrompt(r),
			Temperature: 0.6,
			MaxTokens:   2000,
		},
		context: map[string]interface{}{
			"targetTone":        r.TargetTone,
			"platform":          r.Platform,
			"hasReferenceStyle": r.ReferenceStyle != "",
		},
		ttl: a.ttl.Rewrite,
	}, &res)
	if err != nil {
		return nil, err
	}
	res.Cached = cached

	return &res, nil
}

func (a assistant) ExplainTiming(ctx context.Context, r TimingRequest) (*TimingResult, error) {
	if r.Platform == "" {
		r.Platform = "multiple platforms"
	}
	if r.DateRange == "" {
		r.DateRange = analytics.Range{}.String()
	}

	var res TimingResult
	cached, err := a.do(ctx, call{
		op: entities.TimingInsightOperation,
		req: Request{
			Prompt:      timingPrompt(r),
			Temperature: 0.3,
			MaxTokens:   1500,
		},
		context: r,
		ttl:     a.ttl.Timing,
	}, &res)
	if err != nil {
		return nil, err
	}
	res.Cached = cached

	return &res, nil
}

func (a assistant) ClassifyTone(ctx context.Context, content string) (*ToneResult, error) {
	var res ToneResult
	cached, err := a.do(ctx, call{
		op: entities.ToneClassificationOperation,
		req: Request{
			Prompt:      tonePrompt(content),
			Temperature: 0.2,
			MaxTokens:   500,
		},
		context: "",
		ttl:     a.ttl.Tone,
	}, &res)
	if err != nil {
		return nil, err
	}
	res.Cached = cached

	return &res, nil
}

func (a assistant) UsageStats(ctx context.Context, days int) (*UsageStats, error) {
	if days <= 0 {
		days = DefaultUsageDays
	}

	now := a.now().UTC()
	since := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -days)

	usage, err := a.u.GetAIUsage(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to get usage: %w", err)
	}

	var (
		s     UsageStats
		daily = make(map[string]*DailyUsage)
		cost  = make(map[string]float64)
	)
	s.Daily = []DailyUsage{}

	var order []string
	for _, v := range usage {
		s.Summary.TotalRequests += v.RequestCount
		s.Summary.TotalCacheHits += v.CacheHits
		s.Summary.TotalTokens += v.TotalTokens
		s.Summary.TotalCost += v.EstimatedCost

		date := v.Date.UTC().Format("2006-01-02")
		d, ok := daily[date]
		if !ok {
			d = &DailyUsage{Date: date}
			daily[date] = d
			order = append(order, date)
		}
		d.Requests += v.RequestCount
		d.Tokens += v.TotalTokens
		cost[date] += v.EstimatedCost
	}

	for _, date := range order {
		d := daily[date]
		d.CostUSD = formatUSD(cost[date])
		s.Daily = append(s.Daily, *d)
	}

	if s.Summary.TotalRequests > 0 {
		s.Summary.CacheHitRate = int(math.Round(float64(s.Summary.TotalCacheHits) / float64(s.Summary.TotalRequests) * 100))
	}
	s.Summary.TotalCostUSD = formatUSD(s.Summary.TotalCost)

	return &s, nil
}

// NewTimingRequest builds explain timing request from engine's output.
// Heatmap summary contains 10 most engaging buckets.
func NewTimingRequest(slots []analytics.Slot, h *analytics.Heatmap, platform *entities.Platform, r analytics.Range) TimingRequest {
	const summarySize = 10

	req := TimingRequest{
		BestSlots:      slots,
		HeatmapSummary: []string{},
		DateRange:      r.String(),
	}
	if req.BestSlots == nil {
		req.BestSlots = []analytics.Slot{}
	}
	if platform != nil {
		req.Platform = string(*platform)
	}

	if h != nil {
		cells := make([]analytics.HeatmapCell, len(h.Data))
		copy(cells, h.Data)
		sortCells(cells)

		if len(cells) > summarySize {
			cells = cells[:summarySize]
		}
		for _, c := range cells {
			req.HeatmapSummary = append(req.HeatmapSummary, fmt.Sprintf("%s %s: %v", c.Day, c.HourFormatted, c.AvgEngagement))
		}
	}

	return req
}

func formatUSD(cents float64) string {
	return fmt.Sprintf("%.4f", cents/100)
}

// cleanJSON strips markdown code fences models sometimes wrap json with.
func cleanJSON(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
