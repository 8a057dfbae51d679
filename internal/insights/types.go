package insights

import (
	"github.com/cadencehq/cadence/internal/analytics"
	"github.com/cadencehq/cadence/internal/entities"
)

const (
	// DefaultHeadlinesCount ...
	DefaultHeadlinesCount = 5
	// MaxHeadlinesCount ...
	MaxHeadlinesCount = 10
	// DefaultHeadlineLength ...
	DefaultHeadlineLength = 100
	// DefaultUsageDays ...
	DefaultUsageDays = 30
)

// HeadlinesRequest ...
type HeadlinesRequest struct {
	Content   string
	Platform  entities.Platform
	Tone      entities.Tone
	Count     int
	MaxLength int
}

// Headline ...
type Headline struct {
	Text      string `json:"text"`
	Score     int    `json:"score"`
	Reasoning string `json:"reasoning"`
}

// HeadlinesResult ...
type HeadlinesResult struct {
	Headlines []Headline `json:"headlines"`
	Cached    bool       `json:"-"`
}

// RewriteRequest ...
type RewriteRequest struct {
	Content        string
	TargetTone     entities.Tone
	ReferenceStyle string
	Platform       entities.Platform
}

// ToneAnalysis ...
type ToneAnalysis struct {
	Original string `json:"original"`
	Applied  string `json:"applied"`
}

// RewriteResult ...
type RewriteResult struct {
	Rewritten    string       `json:"rewritten"`
	Changes      []string     `json:"changes"`
	ToneAnalysis ToneAnalysis `json:"toneAnalysis"`
	Cached       bool         `json:"-"`
}

// TimingRequest contains analytics to be explained.
type TimingRequest struct {
	BestSlots      []analytics.Slot `json:"bestSlots"`
	HeatmapSummary []string         `json:"heatmapSummary"`
	Platform       string           `json:"platform"`
	DateRange      string           `json:"dateRange"`
}

// SlotExplanation ...
type SlotExplanation struct {
	Slot   string `json:"slot"`
	Reason string `json:"reason"`
}

// TimingResult ...
type TimingResult struct {
	Summary         string            `json:"summary"`
	Patterns        []string          `json:"patterns"`
	Explanations    []SlotExplanation `json:"explanations"`
	Recommendations []string          `json:"recommendations"`
	ConfidenceLevel string            `json:"confidenceLevel"`
	Cached          bool              `json:"-"`
}

// ToneResult ...
type ToneResult struct {
	PrimaryTone   string         `json:"primaryTone"`
	SecondaryTone *string        `json:"secondaryTone"`
	Confidence    int            `json:"confidence"`
	ToneBreakdown map[string]int `json:"toneBreakdown"`
	Reasoning     string         `json:"reasoning"`
	Cached        bool           `json:"-"`
}

// UsageSummary ...
type UsageSummary struct {
	TotalRequests  int64   `json:"totalRequests"`
	TotalCacheHits int64   `json:"totalCacheHits"`
	TotalTokens    int64   `json:"totalTokens"`
	TotalCost      float64 `json:"totalCost"`
	CacheHitRate   int     `json:"cacheHitRate"`
	TotalCostUSD   string  `json:"totalCostUSD"`
}

// DailyUsage ...
type DailyUsage struct {
	Date     string `json:"date"`
	Requests int64  `json:"requests"`
	Tokens   int64  `json:"tokens"`
	CostUSD  string `json:"costUSD"`
}

// UsageStats ...
type UsageStats struct {
	Summary UsageSummary `json:"summary"`
	Daily   []DailyUsage `json:"daily"`
}
