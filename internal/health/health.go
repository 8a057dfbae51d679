// Package health contains code for health checks.
package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// nolint:gochecknoglobals
var (
	version = "dev"
	commit  = "undefined"
)

var log = logrus.WithField("package", "health")

// GetVersion returns service's version and commit.
func GetVersion() string {
	return fmt.Sprintf("%s-%s", version, commit)
}

// Pinger pings a dependency.
type Pinger interface {
	// Ping returns object with meta information and error.
	Ping(ctx context.Context) (interface{}, error)
	// Name returns name of pinger.
	Name() string
}

type subjectPinger struct {
	f func(ctx context.Context) error
	s string
}

func (p subjectPinger) Ping(ctx context.Context) (interface{}, error) {
	return nil, p.f(ctx)
}

func (p subjectPinger) Name() string {
	return p.s
}

// SubjectPinger wraps a plain ping function, e.g. (*sql.DB).PingContext.
func SubjectPinger(s string, f func(ctx context.Context) error) Pinger {
	return subjectPinger{
		f: f,
		s: s,
	}
}

// Response ...
type Response struct {
	Status    string                 `json:"status"`
	Version   string                 `json:"version"`
	Commit    string                 `json:"commit"`
	Timestamp time.Time              `json:"timestamp"`
	Meta      map[string]interface{} `json:"meta"`
	Errors    map[string]string      `json:"errors"`
}

// Handler pings all dependencies concurrently and responds with 503 if any of them failed.
func Handler(timeout time.Duration, p ...Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		var gr errgroup.Group

		var mu sync.Mutex
		resp := Response{
			Status:    "ok",
			Version:   version,
			Commit:    commit,
			Timestamp: time.Now().UTC(),
			Meta:      map[string]interface{}{},
			Errors:    map[string]string{},
		}

		for i := range p {
			v := p[i]
			gr.Go(func() error {
				m, err := v.Ping(ctx)

				mu.Lock()
				defer mu.Unlock()

				if m != nil {
					resp.Meta[v.Name()] = m
				}

				if err != nil {
					log.WithField("subject", v.Name()).WithError(err).Error("health check failed")
					resp.Errors[v.Name()] = err.Error()
				}

				return nil
			})
		}

		_ = gr.Wait()

		status := http.StatusOK
		if len(resp.Errors) > 0 {
			resp.Status = "unavailable"
			status = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			log.WithError(err).Error("failed to write health response")
		}
	}
}
