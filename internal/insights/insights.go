// Package insights contains AI assisted content operations.
package insights

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/cadencehq/cadence/internal/entities"
)

//go:generate mockgen -destination=./mock/insights.go -package=mock -source=insights.go

// ErrCacheMiss is returned by Cache when there is no live entry for the key.
var ErrCacheMiss = errors.New("cache miss")

// ErrMalformedResponse is returned when the model's answer is not a valid json document.
var ErrMalformedResponse = errors.New("malformed model response")

// Usage is a token usage of one model request.
type Usage struct {
	PromptTokens     int64 `json:"promptTokens"`
	CompletionTokens int64 `json:"completionTokens"`
	TotalTokens      int64 `json:"totalTokens"`
}

// Request ...
type Request struct {
	Prompt      string
	Temperature float32
	MaxTokens   int32
}

// Response ...
type Response struct {
	Text  string
	Usage Usage
}

// Generator produces json answers to prompts.
type Generator interface {
	Generate(ctx context.Context, r Request) (*Response, error)
	Model() string
}

// CacheEntry is a stored model answer.
type CacheEntry struct {
	Operation entities.Operation `json:"operation"`
	Model     string             `json:"model"`
	Response  json.RawMessage    `json:"response"`
	Usage     Usage              `json:"usage"`
	HitCount  int64              `json:"hitCount"`
}

// Cache stores model answers by prompt hash.
type Cache interface {
	// Get returns the entry and increments its hit counter.
	Get(ctx context.Context, key string) (*CacheEntry, error)
	Set(ctx context.Context, key string, e *CacheEntry, ttl time.Duration) error
}

// UsageStorage persists daily usage counters.
type UsageStorage interface {
	TrackAIUsage(ctx context.Context, u *entities.AIUsage) error
	GetAIUsage(ctx context.Context, since time.Time) ([]*entities.AIUsage, error)
}

// Assistant ...
type Assistant interface {
	GenerateHeadlines(ctx context.Context, r HeadlinesRequest) (*HeadlinesResult, error)
	Rewrite(ctx context.Context, r RewriteRequest) (*RewriteResult, error)
	ExplainTiming(ctx context.Context, r TimingRequest) (*TimingResult, error)
	ClassifyTone(ctx context.Context, content string) (*ToneResult, error)
	UsageStats(ctx context.Context, days int) (*UsageStats, error)
}
