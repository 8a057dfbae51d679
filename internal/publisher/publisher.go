// Package publisher contains interfaces of content publishing.
package publisher

import (
	"context"

	"github.com/cadencehq/cadence/internal/entities"
	"github.com/cadencehq/cadence/internal/health"
)

//go:generate mockgen -destination=./mock/publisher.go -package=mock -source=publisher.go

// Publisher delivers content to the content's platform.
// A returned error means the attempt was not made, failed attempts are reported through PublishResult.
type Publisher interface {
	Publish(ctx context.Context, c *entities.ScheduledContent) (*entities.PublishResult, error)
}

// Scheduler periodically publishes content whose time has come.
type Scheduler interface {
	health.Pinger

	Run(ctx context.Context) error
}
