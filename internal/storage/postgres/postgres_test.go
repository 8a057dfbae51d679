//go:build integration
// +build integration

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	m "github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/cadencehq/cadence/internal/entities"
	"github.com/cadencehq/cadence/internal/storage"
)

var (
	db  *sql.DB
	ctx = context.Background()
	s   storage.Storage
)

func TestMain(m *testing.M) {
	shutdown := setup()

	s = New(db)

	code := m.Run()
	shutdown()
	os.Exit(code)
}

func setup() func() {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:12",
		Env:          map[string]string{"POSTGRES_PASSWORD": "root"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
	})
	if err != nil {
		logrus.WithError(err).Fatalf("failed to create container")
	}

	if err := c.Start(ctx); err != nil {
		logrus.WithError(err).Fatal("failed to start container")
	}

	host, err := c.Host(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("failed to get host")
	}

	port, err := c.MappedPort(ctx, "5432")
	if err != nil {
		logrus.WithError(err).Fatal("failed to map port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=postgres password=root sslmode=disable", host, port.Int())

	db, err = sql.Open("postgres", dsn)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open connection")
	}

	if err := db.Ping(); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	shutdownFn := func() {
		if c != nil {
			c.Terminate(ctx)
		}
	}

	migrate("postgres", "root", host, "postgres", port.Int())

	return shutdownFn
}

func migrate(username, password, hostname, dbname string, port int) {
	_, currFile, _, ok := runtime.Caller(0)
	if !ok {
		logrus.Fatal("failed to get current file location")
	}

	migrations := filepath.Join(currFile, "../../../../scripts/migrations/postgres/")

	migrator, err := m.New(
		fmt.Sprintf("file://%s", migrations),
		fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			username, password, hostname, port, dbname),
	)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create migrator")
	}
	defer migrator.Close()

	if err := migrator.Up(); err != nil {
		logrus.WithError(err).Fatal("failed to migrate")
	}
}

func cleanup(t *testing.T) {
	_, err := db.ExecContext(ctx, `DELETE FROM post`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `DELETE FROM scheduled_content`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `DELETE FROM ai_usage`)
	require.NoError(t, err)
}

func newPost(id string, platform entities.Platform, publishedAt time.Time) *entities.Post {
	p := &entities.Post{
		ID:          id,
		Content:     "content " + id,
		Platform:    platform,
		PublishedAt: publishedAt,
		Metrics:     entities.Metrics{Likes: 10, Comments: 2, Shares: 1, Clicks: 4, Impressions: 100},
		Tags:        []string{"go", "tips"},
		Tone:        entities.EducationalTone,
		CreatedAt:   publishedAt,
		UpdatedAt:   publishedAt,
	}
	p.Rescore(publishedAt)

	return p
}

func TestPg_Ping(t *testing.T) {
	require.NoError(t, s.Ping(ctx))
}

func TestPg_CreatePosts(t *testing.T) {
	defer cleanup(t)

	now := time.Now().UTC().Truncate(time.Second)
	expected := newPost("1", entities.TwitterPlatform, now)

	require.NoError(t, s.CreatePosts(ctx, expected, newPost("2", entities.BlogPlatform, now)))

	p, err := s.GetPost(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, expected, p)

	require.ErrorIs(t, s.CreatePosts(ctx, expected), storage.ErrAlreadyExists)
}

func TestPg_GetPost(t *testing.T) {
	defer cleanup(t)

	// GetPost tested in other tests

	_, err := s.GetPost(ctx, "1")
	require.Equal(t, storage.ErrNotFound, err)
}

func TestPg_ListPosts(t *testing.T) {
	defer cleanup(t)

	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	p1 := newPost("1", entities.TwitterPlatform, base)
	p2 := newPost("2", entities.LinkedInPlatform, base.Add(time.Hour))
	p3 := newPost("3", entities.TwitterPlatform, base.Add(2*time.Hour))
	p3.Metrics.Likes = 50
	p3.Rescore(base)

	require.NoError(t, s.CreatePosts(ctx, p3, p1, p2))

	twitter := entities.TwitterPlatform
	from := base.Add(time.Hour)

	tt := []struct {
		name     string
		p        storage.ListPostsParams
		expected []string
		count    int
	}{
		{
			name:     "default",
			p:        storage.ListPostsParams{},
			expected: []string{"1", "2", "3"},
			count:    3,
		},
		{
			name:     "platform",
			p:        storage.ListPostsParams{Platform: &twitter},
			expected: []string{"1", "3"},
			count:    2,
		},
		{
			name:     "from",
			p:        storage.ListPostsParams{From: &from},
			expected: []string{"2", "3"},
			count:    2,
		},
		{
			name:     "to",
			p:        storage.ListPostsParams{To: &from},
			expected: []string{"1", "2"},
			count:    2,
		},
		{
			name:     "sort by score",
			p:        storage.ListPostsParams{SortBy: storage.EngagementSortType, OrderBy: storage.DescendingOrder},
			expected: []string{"3", "2", "1"},
			count:    3,
		},
		{
			name:     "pagination",
			p:        storage.ListPostsParams{Limit: 1, Offset: 1},
			expected: []string{"2"},
			count:    3,
		},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			posts, err := s.ListPosts(ctx, &tc.p)
			require.NoError(t, err)

			ids := make([]string, len(posts))
			for i, v := range posts {
				ids[i] = v.ID
			}
			assert.Equal(t, tc.expected, ids)

			c, err := s.CountPosts(ctx, &tc.p)
			require.NoError(t, err)
			assert.Equal(t, tc.count, c)
		})
	}
}

func TestPg_UpdatePost(t *testing.T) {
	defer cleanup(t)

	now := time.Now().UTC().Truncate(time.Second)
	p := newPost("1", entities.TwitterPlatform, now)
	require.NoError(t, s.CreatePosts(ctx, p))

	p.Metrics.Likes = 100
	p.Tags = []string{"updated"}
	p.Rescore(now)
	require.NoError(t, s.UpdatePost(ctx, p))

	got, err := s.GetPost(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, p, got)

	require.Equal(t, storage.ErrNotFound, s.UpdatePost(ctx, newPost("2", entities.BlogPlatform, now)))
}

func TestPg_DeletePost(t *testing.T) {
	defer cleanup(t)

	now := time.Now().UTC()
	require.NoError(t, s.CreatePosts(ctx, newPost("1", entities.TwitterPlatform, now), newPost("2", entities.BlogPlatform, now)))

	require.NoError(t, s.DeletePost(ctx, "1"))
	require.Equal(t, storage.ErrNotFound, s.DeletePost(ctx, "1"))

	_, err := s.GetPost(ctx, "1")
	require.Equal(t, storage.ErrNotFound, err)

	c, err := s.DeleteAllPosts(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, c)
}

func TestPg_InTx(t *testing.T) {
	defer cleanup(t)

	now := time.Now().UTC()
	errRollback := errors.New("rollback")

	require.Equal(t, errRollback, s.InTx(ctx, func(tx storage.Storage) error {
		require.NoError(t, tx.CreatePosts(ctx, newPost("1", entities.TwitterPlatform, now)))
		return errRollback
	}))

	_, err := s.GetPost(ctx, "1")
	require.Equal(t, storage.ErrNotFound, err)

	require.NoError(t, s.InTx(ctx, func(tx storage.Storage) error {
		require.Equal(t, errBeginCalledWithinTx, tx.InTx(ctx, func(storage.Storage) error { return nil }))
		return tx.CreatePosts(ctx, newPost("1", entities.TwitterPlatform, now))
	}))

	_, err = s.GetPost(ctx, "1")
	require.NoError(t, err)
}

func TestPg_Scheduled(t *testing.T) {
	defer cleanup(t)

	now := time.Now().UTC().Truncate(time.Second)
	prev := now.Add(-time.Hour)

	c := &entities.ScheduledContent{
		ID:                  "1",
		Content:             "content",
		Headline:            "headline",
		Platform:            entities.LinkedInPlatform,
		ScheduledAt:         now.Add(time.Hour),
		PreviousScheduledAt: &prev,
		Status:              entities.ScheduledStatus,
		Suggestions: []entities.Suggestion{
			{Headline: "a", Score: 80, Reasoning: "short", GeneratedAt: now},
		},
		TimingInsight: &entities.TimingInsight{Explanation: "good time", ConfidenceScore: 70, GeneratedAt: now},
		Tags:          []string{"launch"},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	require.NoError(t, s.CreateScheduled(ctx, c))
	require.ErrorIs(t, s.CreateScheduled(ctx, c), storage.ErrAlreadyExists)

	got, err := s.GetScheduled(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, c, got)

	c.Status = entities.PublishedStatus
	c.PublishedAt = &now
	c.PublishResult = &entities.PublishResult{Success: true, Message: "ok", ExternalID: "ext_1", Platform: c.Platform, Timestamp: now}
	require.NoError(t, s.UpdateScheduled(ctx, c))

	got, err = s.GetScheduled(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, c, got)

	require.NoError(t, s.DeleteScheduled(ctx, "1"))
	require.Equal(t, storage.ErrNotFound, s.DeleteScheduled(ctx, "1"))
	require.Equal(t, storage.ErrNotFound, s.UpdateScheduled(ctx, c))

	_, err = s.GetScheduled(ctx, "1")
	require.Equal(t, storage.ErrNotFound, err)
}

func TestPg_ListScheduled(t *testing.T) {
	defer cleanup(t)

	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	for i, v := range []struct {
		at     time.Time
		status entities.Status
	}{
		{base.Add(2 * time.Hour), entities.ScheduledStatus},
		{base, entities.ScheduledStatus},
		{base.Add(time.Hour), entities.DraftStatus},
	} {
		require.NoError(t, s.CreateScheduled(ctx, &entities.ScheduledContent{
			ID:          fmt.Sprint(i + 1),
			Content:     "content",
			Platform:    entities.TwitterPlatform,
			ScheduledAt: v.at,
			Status:      v.status,
			CreatedAt:   base,
			UpdatedAt:   base,
		}))
	}

	items, err := s.ListScheduled(ctx, &storage.ListScheduledParams{})
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "2", items[0].ID)
	assert.Equal(t, "3", items[1].ID)
	assert.Equal(t, "1", items[2].ID)
	assert.Empty(t, items[0].Suggestions)
	assert.Nil(t, items[0].TimingInsight)
	assert.Nil(t, items[0].PublishResult)

	status := entities.ScheduledStatus
	to := base.Add(90 * time.Minute)
	p := storage.ListScheduledParams{Status: &status, To: &to}

	items, err = s.ListScheduled(ctx, &p)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "2", items[0].ID)

	c, err := s.CountScheduled(ctx, &storage.ListScheduledParams{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, 2, c)
}

func TestPg_AIUsage(t *testing.T) {
	defer cleanup(t)

	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, s.TrackAIUsage(ctx, &entities.AIUsage{
		Date:             day.Add(10 * time.Hour),
		Operation:        entities.HeadlinesOperation,
		Model:            "model",
		PromptTokens:     100,
		CompletionTokens: 50,
		TotalTokens:      150,
		RequestCount:     1,
		EstimatedCost:    0.0125,
	}))
	require.NoError(t, s.TrackAIUsage(ctx, &entities.AIUsage{
		Date:      day.Add(12 * time.Hour),
		Operation: entities.HeadlinesOperation,
		Model:     "model",
		CacheHits: 1,
	}))
	require.NoError(t, s.TrackAIUsage(ctx, &entities.AIUsage{
		Date:         day.Add(-24 * time.Hour),
		Operation:    entities.RewriteOperation,
		Model:        "model",
		RequestCount: 1,
	}))

	u, err := s.GetAIUsage(ctx, day)
	require.NoError(t, err)
	require.Len(t, u, 1)
	assert.Equal(t, &entities.AIUsage{
		Date:             day,
		Operation:        entities.HeadlinesOperation,
		Model:            "model",
		PromptTokens:     100,
		CompletionTokens: 50,
		TotalTokens:      150,
		RequestCount:     1,
		CacheHits:        1,
		EstimatedCost:    0.0125,
	}, u[0])

	u, err = s.GetAIUsage(ctx, day.Add(-24*time.Hour))
	require.NoError(t, err)
	require.Len(t, u, 2)
}
