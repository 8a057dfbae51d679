package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"

	"github.com/cadencehq/cadence/internal/entities"
)

const (
	maxLimit              = 100
	defaultPostsLimit     = 20
	defaultScheduledLimit = 50
	defaultTopPostsLimit  = 10
	defaultBestSlotsLimit = 5

	maxContentLength  = 5000
	maxHeadlineLength = 500
)

// Response is a success envelope.
type Response struct {
	Success       bool           `json:"success"`
	Data          interface{}    `json:"data,omitempty"`
	Message       string         `json:"message,omitempty"`
	Cached        *bool          `json:"cached,omitempty"`
	Pagination    *Pagination    `json:"pagination,omitempty"`
	Summary       *BulkSummary   `json:"summary,omitempty"`
	PublishResult *PublishResult `json:"publishResult,omitempty"`
	Payload       interface{}    `json:"payload,omitempty"`
}

// Error is a failure envelope.
type Error struct {
	Success bool         `json:"success"`
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

// FieldError describes invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Pagination ...
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// BulkSummary ...
type BulkSummary struct {
	Total     int `json:"total"`
	Published int `json:"published"`
	Failed    int `json:"failed"`
}

// Metrics ...
type Metrics struct {
	Likes       uint64 `json:"likes"`
	Comments    uint64 `json:"comments"`
	Shares      uint64 `json:"shares"`
	Clicks      uint64 `json:"clicks"`
	Impressions uint64 `json:"impressions"`
}

// Post ...
type Post struct {
	ID              string            `json:"id"`
	Content         string            `json:"content"`
	Headline        string            `json:"headline,omitempty"`
	Platform        entities.Platform `json:"platform"`
	PublishedAt     time.Time         `json:"publishedAt"`
	Metrics         Metrics           `json:"metrics"`
	Tags            []string          `json:"tags"`
	Tone            entities.Tone     `json:"tone"`
	EngagementScore float64           `json:"engagementScore"`
	WeightedScore   float64           `json:"weightedScore"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

// PublishResult ...
type PublishResult struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message"`
	ExternalID *string           `json:"externalId"`
	Platform   entities.Platform `json:"platform"`
	Timestamp  time.Time         `json:"timestamp"`
}

// ScheduledContent ...
type ScheduledContent struct {
	ID                  string                  `json:"id"`
	Content             string                  `json:"content"`
	Headline            string                  `json:"headline,omitempty"`
	Platform            entities.Platform       `json:"platform"`
	ScheduledAt         time.Time               `json:"scheduledAt"`
	PreviousScheduledAt *time.Time              `json:"previousScheduledAt"`
	Status              entities.Status         `json:"status"`
	AISuggestions       []entities.Suggestion   `json:"aiSuggestions"`
	TimingInsight       *entities.TimingInsight `json:"timingInsight,omitempty"`
	PublishedAt         *time.Time              `json:"publishedAt"`
	PublishResult       *PublishResult          `json:"publishResult,omitempty"`
	Tags                []string                `json:"tags"`
	CreatedAt           time.Time               `json:"createdAt"`
	UpdatedAt           time.Time               `json:"updatedAt"`
}

// CalendarEvent is an event in FullCalendar format.
type CalendarEvent struct {
	ID              string            `json:"id"`
	Title           string            `json:"title"`
	Start           time.Time         `json:"start"`
	ExtendedProps   CalendarEventMeta `json:"extendedProps"`
	BackgroundColor string            `json:"backgroundColor"`
	BorderColor     string            `json:"borderColor"`
}

// CalendarEventMeta ...
type CalendarEventMeta struct {
	Content  string            `json:"content"`
	Platform entities.Platform `json:"platform"`
	Status   entities.Status   `json:"status"`
}

// BulkPublishItem ...
type BulkPublishItem struct {
	ID         string            `json:"id"`
	Success    bool              `json:"success"`
	Reason     string            `json:"reason,omitempty"`
	Message    string            `json:"message,omitempty"`
	ExternalID string            `json:"externalId,omitempty"`
	Platform   entities.Platform `json:"platform,omitempty"`
	Timestamp  *time.Time        `json:"timestamp,omitempty"`
}

// ImportPostsRequest ...
type ImportPostsRequest struct {
	Posts []ImportPost `json:"posts" validate:"dive"`
}

// ImportPost accepts metrics either nested or flat.
type ImportPost struct {
	Content     string   `json:"content" validate:"notblank,max=5000"`
	Headline    string   `json:"headline" validate:"max=500"`
	Platform    string   `json:"platform" validate:"required,platform"`
	PublishedAt string   `json:"publishedAt" validate:"required,isodate"`
	Metrics     *Metrics `json:"metrics"`
	Likes       uint64   `json:"likes"`
	Comments    uint64   `json:"comments"`
	Shares      uint64   `json:"shares"`
	Clicks      uint64   `json:"clicks"`
	Impressions uint64   `json:"impressions"`
	Tags        []string `json:"tags"`
	Tone        string   `json:"tone" validate:"omitempty,tone"`
}

// ImportPostsResponse ...
type ImportPostsResponse struct {
	Imported int `json:"imported"`
	Total    int `json:"total"`
}

// UpdatePostRequest ...
type UpdatePostRequest struct {
	Content     *string       `json:"content" validate:"omitnil,notblank,max=5000"`
	Headline    *string       `json:"headline" validate:"omitnil,max=500"`
	Platform    *string       `json:"platform" validate:"omitnil,platform"`
	PublishedAt *string       `json:"publishedAt" validate:"omitnil,isodate"`
	Metrics     *MetricsPatch `json:"metrics"`
	Tags        *[]string     `json:"tags"`
	Tone        *string       `json:"tone" validate:"omitnil,tone"`
}

// MetricsPatch ...
type MetricsPatch struct {
	Likes       *uint64 `json:"likes"`
	Comments    *uint64 `json:"comments"`
	Shares      *uint64 `json:"shares"`
	Clicks      *uint64 `json:"clicks"`
	Impressions *uint64 `json:"impressions" validate:"omitnil,min=1"`
}

// CreateScheduledRequest ...
type CreateScheduledRequest struct {
	Content     string   `json:"content" validate:"notblank,max=5000"`
	Headline    string   `json:"headline" validate:"max=500"`
	Platform    string   `json:"platform" validate:"required,platform"`
	ScheduledAt string   `json:"scheduledAt" validate:"required,isodate"`
	Status      string   `json:"status" validate:"omitempty,status"`
	Tags        []string `json:"tags"`
}

// UpdateScheduledRequest ...
type UpdateScheduledRequest struct {
	Content       *string                `json:"content" validate:"omitnil,notblank,max=5000"`
	Headline      *string                `json:"headline" validate:"omitnil,max=500"`
	Platform      *string                `json:"platform" validate:"omitnil,platform"`
	ScheduledAt   *string                `json:"scheduledAt" validate:"omitnil,isodate"`
	Status        *string                `json:"status" validate:"omitnil,status"`
	Tags          *[]string              `json:"tags"`
	AISuggestions *[]entities.Suggestion `json:"aiSuggestions"`
}

// ApplySuggestionRequest ...
type ApplySuggestionRequest struct {
	SuggestionIndex *int `json:"suggestionIndex"`
}

// BulkPublishRequest ...
type BulkPublishRequest struct {
	IDs []string `json:"ids"`
}

// WebhookRequest ...
type WebhookRequest struct {
	ID    string `json:"id" validate:"required"`
	Event string `json:"event"`
}

// WebhookPayload ...
type WebhookPayload struct {
	Event     string      `json:"event"`
	Timestamp time.Time   `json:"timestamp"`
	Data      WebhookData `json:"data"`
}

// WebhookData ...
type WebhookData struct {
	ID          string            `json:"id"`
	Content     string            `json:"content"`
	Headline    string            `json:"headline"`
	Platform    entities.Platform `json:"platform"`
	ScheduledAt time.Time         `json:"scheduledAt"`
	Status      entities.Status   `json:"status"`
	PublishedAt *time.Time        `json:"publishedAt"`
}

// ExportResponse ...
type ExportResponse struct {
	ExportedAt time.Time          `json:"exportedAt"`
	Count      int                `json:"count"`
	Data       []ScheduledContent `json:"data"`
}

// HeadlinesRequest ...
type HeadlinesRequest struct {
	Content   string `json:"content" validate:"notblank,max=5000"`
	Platform  string `json:"platform" validate:"omitempty,platform"`
	Tone      string `json:"tone" validate:"omitempty,tone"`
	Count     *int   `json:"count" validate:"omitnil,min=1,max=10"`
	MaxLength int    `json:"maxLength"`
}

// RewriteRequest ...
type RewriteRequest struct {
	Content        string `json:"content" validate:"notblank,max=5000"`
	TargetTone     string `json:"targetTone" validate:"omitempty,tone"`
	ReferenceStyle string `json:"referenceStyle"`
	Platform       string `json:"platform" validate:"omitempty,platform"`
}

// ExplainTimingRequest ...
type ExplainTimingRequest struct {
	StartDate string `json:"startDate" validate:"omitempty,isodate"`
	EndDate   string `json:"endDate" validate:"omitempty,isodate"`
	Platform  string `json:"platform" validate:"omitempty,platform"`
}

// ClassifyToneRequest ...
type ClassifyToneRequest struct {
	Content string `json:"content" validate:"notblank,max=5000"`
}

func writeOK(w http.ResponseWriter, status int, resp Response) {
	resp.Success = true
	writeJSON(w, status, resp)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, Error{Error: message})
}

func writeValidationError(w http.ResponseWriter, details []FieldError) {
	writeJSON(w, http.StatusBadRequest, Error{Error: "Validation failed", Details: details})
}

func writeInternalErrorf(ctx context.Context, w http.ResponseWriter, format string, args ...interface{}) {
	log.WithField("request_id", middleware.GetReqID(ctx)).Errorf(format, args...)
	writeError(w, http.StatusInternalServerError, "Internal server error")
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("failed to write response")
	}
}

func cached(v bool) *bool {
	return &v
}

func toAPIPost(p *entities.Post) Post {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}

	return Post{
		ID:          p.ID,
		Content:     p.Content,
		Headline:    p.Headline,
		Platform:    p.Platform,
		PublishedAt: p.PublishedAt,
		Metrics: Metrics{
			Likes:       p.Metrics.Likes,
			Comments:    p.Metrics.Comments,
			Shares:      p.Metrics.Shares,
			Clicks:      p.Metrics.Clicks,
			Impressions: p.Metrics.Impressions,
		},
		Tags:            tags,
		Tone:            p.Tone,
		EngagementScore: p.EngagementScore,
		WeightedScore:   p.WeightedScore,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func toAPIPosts(p []*entities.Post) []Post {
	out := make([]Post, len(p))
	for i, v := range p {
		out[i] = toAPIPost(v)
	}
	return out
}

func toAPIPublishResult(r *entities.PublishResult) *PublishResult {
	if r == nil {
		return nil
	}

	out := PublishResult{
		Success:   r.Success,
		Message:   r.Message,
		Platform:  r.Platform,
		Timestamp: r.Timestamp,
	}
	if r.ExternalID != "" {
		out.ExternalID = &r.ExternalID
	}

	return &out
}

func toAPIScheduled(c *entities.ScheduledContent) ScheduledContent {
	tags, suggestions := c.Tags, c.Suggestions
	if tags == nil {
		tags = []string{}
	}
	if suggestions == nil {
		suggestions = []entities.Suggestion{}
	}

	return ScheduledContent{
		ID:                  c.ID,
		Content:             c.Content,
		Headline:            c.Headline,
		Platform:            c.Platform,
		ScheduledAt:         c.ScheduledAt,
		PreviousScheduledAt: c.PreviousScheduledAt,
		Status:              c.Status,
		AISuggestions:       suggestions,
		TimingInsight:       c.TimingInsight,
		PublishedAt:         c.PublishedAt,
		PublishResult:       toAPIPublishResult(c.PublishResult),
		Tags:                tags,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

func toAPIScheduledList(c []*entities.ScheduledContent) []ScheduledContent {
	out := make([]ScheduledContent, len(c))
	for i, v := range c {
		out[i] = toAPIScheduled(v)
	}
	return out
}

func statusColor(s entities.Status) string {
	switch s {
	case entities.ScheduledStatus:
		return "#3B82F6"
	case entities.PublishedStatus:
		return "#10B981"
	case entities.FailedStatus:
		return "#EF4444"
	default:
		return "#6B7280"
	}
}

func toCalendarEvent(c *entities.ScheduledContent) CalendarEvent {
	color := statusColor(c.Status)

	return CalendarEvent{
		ID:    c.ID,
		Title: c.Title(),
		Start: c.ScheduledAt,
		ExtendedProps: CalendarEventMeta{
			Content:  c.Content,
			Platform: c.Platform,
			Status:   c.Status,
		},
		BackgroundColor: color,
		BorderColor:     color,
	}
}

func newPagination(page, limit, total int) *Pagination {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}

	return &Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: pages,
	}
}
