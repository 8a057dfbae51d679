// Package impl is implementation of service interface.
package impl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/cadencehq/cadence/internal/analytics"
	"github.com/cadencehq/cadence/internal/entities"
	"github.com/cadencehq/cadence/internal/publisher"
	"github.com/cadencehq/cadence/internal/service"
	"github.com/cadencehq/cadence/internal/storage"
)

var log = logrus.WithField("layer", "service").WithField("package", "impl")

// service ...
type srv struct {
	s   storage.Storage
	p   publisher.Publisher
	now func() time.Time
}

// New creates new instance of service.
func New(s storage.Storage, p publisher.Publisher) service.Service {
	return srv{
		s:   s,
		p:   p,
		now: time.Now,
	}
}

func (s srv) posts(ctx context.Context, f service.Filter) ([]*entities.Post, error) {
	posts, err := s.s.ListPosts(ctx, &storage.ListPostsParams{
		Platform: f.Platform,
		From:     f.From,
		To:       f.To,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, nil
}

func (s srv) GetOverview(ctx context.Context, f service.Filter) (*analytics.Overview, error) {
	posts, err := s.posts(ctx, f)
	if err != nil {
		return nil, err
	}

	o := analytics.GetOverview(posts)
	return &o, nil
}

func (s srv) GetHeatmap(ctx context.Context, f service.Filter) (*analytics.Heatmap, error) {
	posts, err := s.posts(ctx, f)
	if err != nil {
		return nil, err
	}

	h := analytics.GetHeatmap(posts)
	return &h, nil
}

func (s srv) GetTimeSeries(ctx context.Context, f service.Filter, g analytics.Granularity) ([]analytics.Point, error) {
	posts, err := s.posts(ctx, f)
	if err != nil {
		return nil, err
	}

	return analytics.GetTimeSeries(posts, g), nil
}

func (s srv) GetTopPosts(ctx context.Context, f service.Filter, limit int) ([]*entities.Post, error) {
	if limit <= 0 {
		limit = analytics.DefaultTopPostsLimit
	}

	posts, err := s.s.ListPosts(ctx, &storage.ListPostsParams{
		SortBy:   storage.WeightedSortType,
		OrderBy:  storage.DescendingOrder,
		Limit:    uint16(limit),
		Platform: f.Platform,
		From:     f.From,
		To:       f.To,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return analytics.GetTopPosts(posts, limit), nil
}

func (s srv) GetBestSlots(ctx context.Context, f service.Filter, limit int) ([]analytics.Slot, error) {
	posts, err := s.posts(ctx, f)
	if err != nil {
		return nil, err
	}

	return analytics.GetBestSlots(posts, limit), nil
}

func (s srv) GetPlatformBreakdown(ctx context.Context, f service.Filter) ([]analytics.PlatformStats, error) {
	posts, err := s.posts(ctx, f)
	if err != nil {
		return nil, err
	}

	return analytics.GetPlatformBreakdown(posts), nil
}

func (s srv) ImportPosts(ctx context.Context, posts []*entities.Post) (int, error) {
	now := s.now().UTC()

	for _, p := range posts {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}

		if p.Tone == "" {
			p.Tone = entities.NeutralTone
		}

		p.Tags = entities.NormalizeTags(p.Tags)
		p.PublishedAt = p.PublishedAt.UTC()
		p.CreatedAt, p.UpdatedAt = now, now
		p.Rescore(now)
	}

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		return tx.CreatePosts(ctx, posts...)
	}); err != nil {
		return 0, fmt.Errorf("failed to create posts: %w", err)
	}

	return len(posts), nil
}

func (s srv) ListPosts(ctx context.Context, p *storage.ListPostsParams) ([]*entities.Post, int, error) {
	posts, err := s.s.ListPosts(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}

	total, err := s.s.CountPosts(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	return posts, total, nil
}

func (s srv) GetPost(ctx context.Context, id string) (*entities.Post, error) {
	p, err := s.s.GetPost(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return p, nil
}

func (s srv) UpdatePost(ctx context.Context, id string, patch *service.PostPatch) (*entities.Post, error) {
	var out *entities.Post

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		p, err := tx.GetPost(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get post: %w", err)
		}

		applyPostPatch(p, patch)

		now := s.now().UTC()
		p.UpdatedAt = now
		p.Rescore(now)

		if err := tx.UpdatePost(ctx, p); err != nil {
			return fmt.Errorf("failed to update post: %w", err)
		}

		out = p
		return nil
	}); err != nil {
		return nil, err
	}

	return out, nil
}

func applyPostPatch(p *entities.Post, patch *service.PostPatch) {
	if patch.Content != nil {
		p.Content = *patch.Content
	}
	if patch.Headline != nil {
		p.Headline = *patch.Headline
	}
	if patch.Platform != nil {
		p.Platform = *patch.Platform
	}
	if patch.PublishedAt != nil {
		p.PublishedAt = patch.PublishedAt.UTC()
	}
	if patch.Likes != nil {
		p.Metrics.Likes = *patch.Likes
	}
	if patch.Comments != nil {
		p.Metrics.Comments = *patch.Comments
	}
	if patch.Shares != nil {
		p.Metrics.Shares = *patch.Shares
	}
	if patch.Clicks != nil {
		p.Metrics.Clicks = *patch.Clicks
	}
	if patch.Impressions != nil {
		p.Metrics.Impressions = *patch.Impressions
	}
	if patch.Tags != nil {
		p.Tags = entities.NormalizeTags(*patch.Tags)
	}
	if patch.Tone != nil {
		p.Tone = *patch.Tone
	}
}

func (s srv) DeletePost(ctx context.Context, id string) error {
	if err := s.s.DeletePost(ctx, id); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	return nil
}

func (s srv) DeleteAllPosts(ctx context.Context) (int64, error) {
	c, err := s.s.DeleteAllPosts(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete posts: %w", err)
	}

	return c, nil
}

func (s srv) ListScheduled(ctx context.Context, p *storage.ListScheduledParams) ([]*entities.ScheduledContent, int, error) {
	items, err := s.s.ListScheduled(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list scheduled content: %w", err)
	}

	total, err := s.s.CountScheduled(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count scheduled content: %w", err)
	}

	return items, total, nil
}

func (s srv) GetScheduled(ctx context.Context, id string) (*entities.ScheduledContent, error) {
	c, err := s.s.GetScheduled(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get scheduled content: %w", err)
	}

	return c, nil
}

func (s srv) CreateScheduled(ctx context.Context, c *entities.ScheduledContent) (*entities.ScheduledContent, error) {
	now := s.now().UTC()

	if c.ID == "" {
		c.ID = uuid.NewString()
	}

	if c.Status == "" {
		c.Status = entities.DraftStatus
	}

	c.ScheduledAt = c.ScheduledAt.UTC()
	c.Tags = entities.NormalizeTags(c.Tags)
	c.CreatedAt, c.UpdatedAt = now, now

	if err := s.s.CreateScheduled(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to create scheduled content: %w", err)
	}

	return c, nil
}

// modifyScheduled loads content, applies f and saves the result in one transaction.
func (s srv) modifyScheduled(
	ctx context.Context, id string, f func(c *entities.ScheduledContent) error,
) (*entities.ScheduledContent, error) {
	var out *entities.ScheduledContent

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		c, err := tx.GetScheduled(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get scheduled content: %w", err)
		}

		if err := f(c); err != nil {
			return err
		}

		c.UpdatedAt = s.now().UTC()

		if err := tx.UpdateScheduled(ctx, c); err != nil {
			return fmt.Errorf("failed to update scheduled content: %w", err)
		}

		out = c
		return nil
	}); err != nil {
		return nil, err
	}

	return out, nil
}

func (s srv) UpdateScheduled(ctx context.Context, id string, patch *service.ScheduledPatch) (*entities.ScheduledContent, error) {
	return s.modifyScheduled(ctx, id, func(c *entities.ScheduledContent) error {
		if patch.ScheduledAt != nil && !patch.ScheduledAt.Equal(c.ScheduledAt) {
			prev := c.ScheduledAt
			c.PreviousScheduledAt = &prev
			c.ScheduledAt = patch.ScheduledAt.UTC()
		}

		if patch.Content != nil {
			c.Content = *patch.Content
		}
		if patch.Headline != nil {
			c.Headline = *patch.Headline
		}
		if patch.Platform != nil {
			c.Platform = *patch.Platform
		}
		if patch.Status != nil {
			c.Status = *patch.Status
		}
		if patch.Tags != nil {
			c.Tags = entities.NormalizeTags(*patch.Tags)
		}
		if patch.Suggestions != nil {
			c.Suggestions = *patch.Suggestions
		}

		return nil
	})
}

func (s srv) UndoReschedule(ctx context.Context, id string) (*entities.ScheduledContent, error) {
	return s.modifyScheduled(ctx, id, func(c *entities.ScheduledContent) error {
		if c.PreviousScheduledAt == nil {
			return service.ErrNoPreviousSchedule
		}

		current := c.ScheduledAt
		c.ScheduledAt = *c.PreviousScheduledAt
		c.PreviousScheduledAt = &current

		return nil
	})
}

func (s srv) ApplySuggestion(ctx context.Context, id string, index int) (*entities.ScheduledContent, error) {
	return s.modifyScheduled(ctx, id, func(c *entities.ScheduledContent) error {
		if index < 0 || index >= len(c.Suggestions) {
			return fmt.Errorf("%w: %d", service.ErrInvalidSuggestion, index)
		}

		c.Headline = c.Suggestions[index].Headline
		c.Suggestions[index].Applied = true

		return nil
	})
}

func (s srv) DeleteScheduled(ctx context.Context, id string) error {
	if err := s.s.DeleteScheduled(ctx, id); err != nil {
		return fmt.Errorf("failed to delete scheduled content: %w", err)
	}

	return nil
}

func (s srv) Publish(ctx context.Context, id string) (*entities.ScheduledContent, error) {
	return s.modifyScheduled(ctx, id, func(c *entities.ScheduledContent) error {
		if c.Status == entities.PublishedStatus {
			return service.ErrAlreadyPublished
		}

		res, err := s.p.Publish(ctx, c)
		if err != nil {
			return fmt.Errorf("failed to publish: %w", err)
		}

		c.PublishResult = res
		if res.Success {
			c.Status = entities.PublishedStatus
			publishedAt := res.Timestamp.UTC()
			c.PublishedAt = &publishedAt
		} else {
			c.Status = entities.FailedStatus
			c.PublishedAt = nil
		}

		return nil
	})
}

func (s srv) BulkPublish(ctx context.Context, ids []string) ([]service.BulkPublishResult, error) {
	out := make([]service.BulkPublishResult, 0, len(ids))

	for _, id := range ids {
		c, err := s.Publish(ctx, id)

		switch {
		case err == nil:
			out = append(out, service.BulkPublishResult{
				ID:      id,
				Success: c.PublishResult.Success,
				Result:  c.PublishResult,
			})
		case errors.Is(err, storage.ErrNotFound), errors.Is(err, service.ErrAlreadyPublished):
			out = append(out, service.BulkPublishResult{
				ID:     id,
				Reason: "Not found or already published",
			})
		case ctx.Err() != nil:
			return nil, fmt.Errorf("bulk publish interrupted: %w", ctx.Err())
		default:
			log.WithField("id", id).WithError(err).Error("failed to publish")
			out = append(out, service.BulkPublishResult{
				ID:     id,
				Reason: "Failed to publish",
			})
		}
	}

	return out, nil
}

func (s srv) PublishDue(ctx context.Context, now time.Time) (int, error) {
	status := entities.ScheduledStatus

	items, err := s.s.ListScheduled(ctx, &storage.ListScheduledParams{
		Status: &status,
		To:     &now,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to list due content: %w", err)
	}

	var published int
	for _, v := range items {
		c, err := s.Publish(ctx, v.ID)
		if err != nil {
			if ctx.Err() != nil {
				return published, fmt.Errorf("publishing interrupted: %w", ctx.Err())
			}

			log.WithField("id", v.ID).WithError(err).Error("failed to publish due content")
			continue
		}

		if c.Status == entities.PublishedStatus {
			published++
		}
	}

	return published, nil
}
