// Package simulated is a Publisher which imitates platform APIs.
package simulated

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cadencehq/cadence/internal/entities"
	"github.com/cadencehq/cadence/internal/publisher"
)

var log = logrus.WithField("layer", "publisher").WithField("package", "simulated")

const externalIDSuffixLength = 9

type simulated struct {
	delay       time.Duration
	successRate float64

	mu  sync.Mutex
	rnd *rand.Rand
	now func() time.Time
}

// New returns publisher which waits for delay and succeeds with successRate probability.
func New(delay time.Duration, successRate float64) publisher.Publisher {
	return &simulated{
		delay:       delay,
		successRate: successRate,
		rnd:         rand.New(rand.NewSource(time.Now().UnixNano())), // nolint:gosec
		now:         time.Now,
	}
}

func (s *simulated) Publish(ctx context.Context, c *entities.ScheduledContent) (*entities.PublishResult, error) {
	if s.delay > 0 {
		t := time.NewTimer(s.delay)
		defer t.Stop()

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("failed to publish: %w", ctx.Err())
		case <-t.C:
		}
	}

	s.mu.Lock()
	success := s.rnd.Float64() < s.successRate
	suffix := s.randomString(externalIDSuffixLength)
	s.mu.Unlock()

	now := s.now().UTC()

	res := entities.PublishResult{
		Success:   success,
		Platform:  c.Platform,
		Timestamp: now,
	}

	if success {
		res.Message = fmt.Sprintf("Successfully published to %s", c.Platform)
		res.ExternalID = fmt.Sprintf("ext_%d_%s", now.UnixMilli(), suffix)
	} else {
		res.Message = "Failed to connect to platform API"
	}

	log.WithField("id", c.ID).WithField("platform", c.Platform).WithField("success", success).Debug("publish simulated")

	return &res, nil
}

func (s *simulated) randomString(n int) string {
	b := make([]byte, 0, n)
	for len(b) < n {
		b = strconv.AppendInt(b, int64(s.rnd.Intn(36)), 36)
	}

	return string(b)
}
