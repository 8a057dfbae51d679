// Package scheduler publishes due content on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/cadencehq/cadence/internal/publisher"
)

var log = logrus.WithField("layer", "publisher").WithField("package", "scheduler")

// DuePublisher publishes all scheduled content with scheduled time not after now.
type DuePublisher interface {
	PublishDue(ctx context.Context, now time.Time) (int, error)
}

// Stats ...
type Stats struct {
	Schedule      string    `json:"schedule"`
	LastRunAt     time.Time `json:"lastRunAt"`
	LastPublished int       `json:"lastPublished"`
	LastError     string    `json:"lastError,omitempty"`
}

type scheduler struct {
	schedule string
	p        DuePublisher
	now      func() time.Time

	mu    sync.Mutex
	stats Stats
}

// New creates a scheduler running p on schedule, schedule is a standard 5 fields cron expression.
func New(schedule string, p DuePublisher) (publisher.Scheduler, error) {
	if _, err := cron.ParseStandard(schedule); err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", schedule, err)
	}

	return &scheduler{
		schedule: schedule,
		p:        p,
		now:      time.Now,
		stats:    Stats{Schedule: schedule},
	}, nil
}

func (s *scheduler) Name() string {
	return "scheduler"
}

func (s *scheduler) Ping(_ context.Context) (interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stats.LastError != "" {
		return s.stats, fmt.Errorf("last run failed: %s", s.stats.LastError)
	}

	return s.stats, nil
}

func (s *scheduler) Run(ctx context.Context) error {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.PrintfLogger(log))))

	if _, err := c.AddFunc(s.schedule, func() { s.tick(ctx) }); err != nil {
		return fmt.Errorf("failed to schedule publishing: %w", err)
	}

	c.Start()
	log.WithField("schedule", s.schedule).Info("scheduler started")

	<-ctx.Done()

	<-c.Stop().Done()
	log.Info("scheduler stopped")

	return nil
}

func (s *scheduler) tick(ctx context.Context) {
	now := s.now().UTC()

	n, err := s.p.PublishDue(ctx, now)

	s.mu.Lock()
	s.stats.LastRunAt = now
	s.stats.LastPublished = n
	s.stats.LastError = ""
	if err != nil {
		s.stats.LastError = err.Error()
	}
	s.mu.Unlock()

	if err != nil {
		log.WithError(err).Error("failed to publish due content")
		return
	}

	if n > 0 {
		log.WithField("count", n).Info("due content published")
	}
}
