// Package entities contains main entities of service.
package entities

import (
	"fmt"
	"strings"
	"time"
)

// Platform is a social network a piece of content is published to.
type Platform string

const (
	TwitterPlatform   Platform = "twitter"
	LinkedInPlatform  Platform = "linkedin"
	InstagramPlatform Platform = "instagram"
	FacebookPlatform  Platform = "facebook"
	BlogPlatform      Platform = "blog"
)

// Platforms lists all supported platforms.
func Platforms() []Platform {
	return []Platform{TwitterPlatform, LinkedInPlatform, InstagramPlatform, FacebookPlatform, BlogPlatform}
}

// ParsePlatform parses case-insensitive platform name.
func ParsePlatform(s string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("unknown platform %q", s)
	}

	return p, nil
}

// Valid ...
func (p Platform) Valid() bool {
	switch p {
	case TwitterPlatform, LinkedInPlatform, InstagramPlatform, FacebookPlatform, BlogPlatform:
		return true
	default:
		return false
	}
}

// Tone is a content tone label.
type Tone string

const (
	ProfessionalTone  Tone = "professional"
	EducationalTone   Tone = "educational"
	UrgentTone        Tone = "urgent"
	PlayfulTone       Tone = "playful"
	InspirationalTone Tone = "inspirational"
	NeutralTone       Tone = "neutral"
)

// ParseTone parses tone name, empty string is parsed as neutral tone.
func ParseTone(s string) (Tone, error) {
	if s == "" {
		return NeutralTone, nil
	}

	t := Tone(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown tone %q", s)
	}

	return t, nil
}

// Valid ...
func (t Tone) Valid() bool {
	switch t {
	case ProfessionalTone, EducationalTone, UrgentTone, PlayfulTone, InspirationalTone, NeutralTone:
		return true
	default:
		return false
	}
}

// Status is a lifecycle state of scheduled content.
type Status string

const (
	DraftStatus     Status = "draft"
	ScheduledStatus Status = "scheduled"
	PublishedStatus Status = "published"
	FailedStatus    Status = "failed"
)

// ParseStatus parses status name, empty string is parsed as draft.
func ParseStatus(s string) (Status, error) {
	if s == "" {
		return DraftStatus, nil
	}

	v := Status(strings.ToLower(strings.TrimSpace(s)))
	if !v.Valid() {
		return "", fmt.Errorf("unknown status %q", s)
	}

	return v, nil
}

// Valid ...
func (s Status) Valid() bool {
	switch s {
	case DraftStatus, ScheduledStatus, PublishedStatus, FailedStatus:
		return true
	default:
		return false
	}
}

// Metrics are raw interaction counters of a published post.
type Metrics struct {
	Likes       uint64
	Comments    uint64
	Shares      uint64
	Clicks      uint64
	Impressions uint64
}

// Engagements returns the sum of raw interactions.
func (m Metrics) Engagements() uint64 {
	return m.Likes + m.Comments + m.Shares + m.Clicks
}

// Post is a historical published item.
type Post struct {
	ID          string
	Content     string
	Headline    string
	Platform    Platform
	PublishedAt time.Time
	Metrics     Metrics
	Tags        []string
	Tone        Tone

	// EngagementScore and WeightedScore are derived by Score and never set directly.
	EngagementScore float64
	WeightedScore   float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Suggestion is an AI generated headline attached to scheduled content.
type Suggestion struct {
	Headline    string    `json:"headline"`
	Score       int       `json:"score"`
	Reasoning   string    `json:"reasoning"`
	Applied     bool      `json:"applied"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// TimingInsight is an AI explanation of the scheduled time.
type TimingInsight struct {
	Explanation     string    `json:"explanation"`
	ConfidenceScore int       `json:"confidenceScore"`
	GeneratedAt     time.Time `json:"generatedAt"`
}

// PublishResult is an outcome of publishing attempt.
type PublishResult struct {
	Success    bool      `json:"success"`
	Message    string    `json:"message"`
	ExternalID string    `json:"externalId,omitempty"`
	Platform   Platform  `json:"platform"`
	Timestamp  time.Time `json:"timestamp"`
}

// ScheduledContent is a piece of content waiting to be published.
type ScheduledContent struct {
	ID                  string
	Content             string
	Headline            string
	Platform            Platform
	ScheduledAt         time.Time
	PreviousScheduledAt *time.Time
	Status              Status
	Suggestions         []Suggestion
	TimingInsight       *TimingInsight
	PublishedAt         *time.Time
	PublishResult       *PublishResult
	Tags                []string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Title returns headline or shortened content.
func (c ScheduledContent) Title() string {
	if c.Headline != "" {
		return c.Headline
	}

	r := []rune(c.Content)
	if len(r) > 50 {
		r = r[:50]
	}

	return string(r) + "..."
}

// Operation is a type of AI request.
type Operation string

const (
	HeadlinesOperation          Operation = "headlines"
	RewriteOperation            Operation = "rewrite"
	TimingInsightOperation      Operation = "timing_insight"
	ToneClassificationOperation Operation = "tone_classification"
)

// AIUsage is a daily usage counter of an AI operation.
type AIUsage struct {
	Date             time.Time
	Operation        Operation
	Model            string
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
	RequestCount     int64
	CacheHits        int64
	EstimatedCost    float64 // in USD cents
}

// NormalizeTags lower-cases and trims tags, empty tags are dropped.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, v := range tags {
		if v = strings.ToLower(strings.TrimSpace(v)); v != "" {
			out = append(out, v)
		}
	}

	return out
}
