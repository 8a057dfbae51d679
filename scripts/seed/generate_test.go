package main

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadencehq/cadence/internal/entities"
)

func Test_generate(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	posts := generate(rand.New(rand.NewSource(1)), 200, 30, now)
	require.Len(t, posts, 200)

	for _, p := range posts {
		assert.True(t, p.Platform.Valid())
		assert.True(t, p.Tone.Valid())
		assert.GreaterOrEqual(t, p.Metrics.Impressions, uint64(200))
		assert.False(t, p.PublishedAt.After(now.Add(24*time.Hour)))
		assert.True(t, p.PublishedAt.After(now.AddDate(0, 0, -31)))
	}

	again := generate(rand.New(rand.NewSource(1)), 200, 30, now)
	assert.Equal(t, posts, again)
}

func Test_readSamples(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posts.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{
			"content": "hello",
			"platform": "Twitter",
			"publishedAt": "2024-01-15T10:00:00Z",
			"tags": ["launch"],
			"metrics": {"likes": 10, "comments": 1, "shares": 2, "clicks": 3, "impressions": 500}
		}
	]`), 0o600))

	posts, err := readSamples(path)
	require.NoError(t, err)
	require.Len(t, posts, 1)

	assert.Equal(t, entities.TwitterPlatform, posts[0].Platform)
	assert.Equal(t, entities.NeutralTone, posts[0].Tone)
	assert.Equal(t, entities.Metrics{Likes: 10, Comments: 1, Shares: 2, Clicks: 3, Impressions: 500}, posts[0].Metrics)

	require.NoError(t, os.WriteFile(path, []byte(`[{"platform":"myspace","publishedAt":"2024-01-15T10:00:00Z"}]`), 0o600))
	_, err = readSamples(path)
	assert.Error(t, err)
}
