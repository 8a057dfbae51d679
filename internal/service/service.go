// Package service contains interface for service business-logic.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/cadencehq/cadence/internal/analytics"
	"github.com/cadencehq/cadence/internal/entities"
	"github.com/cadencehq/cadence/internal/storage"
)

//go:generate mockgen -destination=./mock/service.go -package=mock -source=service.go

var (
	// ErrAlreadyPublished is returned when publishing content which is already published.
	ErrAlreadyPublished = errors.New("content already published")
	// ErrNoPreviousSchedule is returned on undo when content was never rescheduled.
	ErrNoPreviousSchedule = errors.New("no previous schedule to restore")
	// ErrInvalidSuggestion is returned when suggestion index is out of range.
	ErrInvalidSuggestion = errors.New("invalid suggestion index")
)

// Filter selects posts analytics is computed over.
type Filter struct {
	analytics.Range
	Platform *entities.Platform
}

// PostPatch contains fields to be changed. Nil fields are left untouched.
type PostPatch struct {
	Content     *string
	Headline    *string
	Platform    *entities.Platform
	PublishedAt *time.Time
	Likes       *uint64
	Comments    *uint64
	Shares      *uint64
	Clicks      *uint64
	Impressions *uint64
	Tags        *[]string
	Tone        *entities.Tone
}

// ScheduledPatch contains fields to be changed. Nil fields are left untouched.
type ScheduledPatch struct {
	Content     *string
	Headline    *string
	Platform    *entities.Platform
	ScheduledAt *time.Time
	Status      *entities.Status
	Tags        *[]string
	Suggestions *[]entities.Suggestion
}

// BulkPublishResult is an outcome of publishing one item of a bulk request.
type BulkPublishResult struct {
	ID      string
	Success bool
	Reason  string
	Result  *entities.PublishResult
}

// Service ...
type Service interface {
	GetOverview(ctx context.Context, f Filter) (*analytics.Overview, error)
	GetHeatmap(ctx context.Context, f Filter) (*analytics.Heatmap, error)
	GetTimeSeries(ctx context.Context, f Filter, g analytics.Granularity) ([]analytics.Point, error)
	GetTopPosts(ctx context.Context, f Filter, limit int) ([]*entities.Post, error)
	GetBestSlots(ctx context.Context, f Filter, limit int) ([]analytics.Slot, error)
	GetPlatformBreakdown(ctx context.Context, f Filter) ([]analytics.PlatformStats, error)

	ImportPosts(ctx context.Context, posts []*entities.Post) (int, error)
	ListPosts(ctx context.Context, p *storage.ListPostsParams) ([]*entities.Post, int, error)
	GetPost(ctx context.Context, id string) (*entities.Post, error)
	UpdatePost(ctx context.Context, id string, patch *PostPatch) (*entities.Post, error)
	DeletePost(ctx context.Context, id string) error
	DeleteAllPosts(ctx context.Context) (int64, error)

	ListScheduled(ctx context.Context, p *storage.ListScheduledParams) ([]*entities.ScheduledContent, int, error)
	GetScheduled(ctx context.Context, id string) (*entities.ScheduledContent, error)
	CreateScheduled(ctx context.Context, c *entities.ScheduledContent) (*entities.ScheduledContent, error)
	UpdateScheduled(ctx context.Context, id string, patch *ScheduledPatch) (*entities.ScheduledContent, error)
	UndoReschedule(ctx context.Context, id string) (*entities.ScheduledContent, error)
	ApplySuggestion(ctx context.Context, id string, index int) (*entities.ScheduledContent, error)
	DeleteScheduled(ctx context.Context, id string) error

	Publish(ctx context.Context, id string) (*entities.ScheduledContent, error)
	BulkPublish(ctx context.Context, ids []string) ([]BulkPublishResult, error)
	PublishDue(ctx context.Context, now time.Time) (int, error)
}
