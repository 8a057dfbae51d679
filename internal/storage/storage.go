// Package storage contains a storage interface.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/cadencehq/cadence/internal/entities"
)

//go:generate mockgen -destination=./mock/storage.go -package=mock -source=storage.go

// ErrNotFound ...
var ErrNotFound = fmt.Errorf("not found")

// ErrAlreadyExists is returned when an item with the same id is already stored.
var ErrAlreadyExists = fmt.Errorf("already exists")

// Storage provides methods for interacting with database.
type Storage interface {
	InTx(ctx context.Context, f func(s Storage) error) error
	Ping(ctx context.Context) error

	// CreatePosts inserts posts in batches, run it within InTx to make it atomic.
	CreatePosts(ctx context.Context, p ...*entities.Post) error
	GetPost(ctx context.Context, id string) (*entities.Post, error)
	ListPosts(ctx context.Context, p *ListPostsParams) ([]*entities.Post, error)
	CountPosts(ctx context.Context, p *ListPostsParams) (int, error)
	UpdatePost(ctx context.Context, p *entities.Post) error
	DeletePost(ctx context.Context, id string) error
	DeleteAllPosts(ctx context.Context) (int64, error)

	CreateScheduled(ctx context.Context, c *entities.ScheduledContent) error
	GetScheduled(ctx context.Context, id string) (*entities.ScheduledContent, error)
	ListScheduled(ctx context.Context, p *ListScheduledParams) ([]*entities.ScheduledContent, error)
	CountScheduled(ctx context.Context, p *ListScheduledParams) (int, error)
	UpdateScheduled(ctx context.Context, c *entities.ScheduledContent) error
	DeleteScheduled(ctx context.Context, id string) error

	TrackAIUsage(ctx context.Context, u *entities.AIUsage) error
	GetAIUsage(ctx context.Context, since time.Time) ([]*entities.AIUsage, error)
}

// SortType ...
type SortType string

const (
	// PublishedAtSortType ...
	PublishedAtSortType SortType = "published_at"
	// EngagementSortType ...
	EngagementSortType SortType = "engagement_score"
	// WeightedSortType ...
	WeightedSortType SortType = "weighted_score"
	// ImpressionsSortType ...
	ImpressionsSortType SortType = "impressions"
)

// OrderType ...
type OrderType string

const (
	// AscendingOrder ...
	AscendingOrder OrderType = "asc"
	// DescendingOrder ...
	DescendingOrder OrderType = "desc"
)

// ListPostsParams ...
// Zero Limit means no limit.
type ListPostsParams struct {
	SortBy   SortType
	OrderBy  OrderType
	Limit    uint16
	Offset   uint32
	Platform *entities.Platform
	From     *time.Time
	To       *time.Time
}

// ListScheduledParams ...
// Zero Limit means no limit. Items are always sorted by scheduled_at ascending.
type ListScheduledParams struct {
	Limit    uint16
	Offset   uint32
	Status   *entities.Status
	Platform *entities.Platform
	From     *time.Time
	To       *time.Time
}
