package analytics

import (
	"sort"

	"github.com/cadencehq/cadence/internal/entities"
)

// DefaultTopPostsLimit is used when limit is not positive.
const DefaultTopPostsLimit = 10

// PlatformStats ...
type PlatformStats struct {
	Platform         entities.Platform `json:"platform"`
	PostCount        int               `json:"postCount"`
	AvgEngagement    float64           `json:"avgEngagement"`
	TotalImpressions uint64            `json:"totalImpressions"`
}

// GetPlatformBreakdown returns per-platform stats sorted by mean engagement score descending.
func GetPlatformBreakdown(posts []*entities.Post) []PlatformStats {
	groups := make(map[entities.Platform]*group)
	for _, p := range posts {
		v, ok := groups[p.Platform]
		if !ok {
			v = &group{}
			groups[p.Platform] = v
		}

		v.add(p.EngagementScore, p)
	}

	type item struct {
		platform entities.Platform
		g        *group
	}

	items := make([]item, 0, len(groups))
	for _, p := range entities.Platforms() {
		if g, ok := groups[p]; ok {
			items = append(items, item{platform: p, g: g})
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].g.mean() > items[j].g.mean()
	})

	out := make([]PlatformStats, len(items))
	for i, v := range items {
		out[i] = PlatformStats{
			Platform:         v.platform,
			PostCount:        v.g.count,
			AvgEngagement:    round2(v.g.mean()),
			TotalImpressions: v.g.impressions,
		}
	}

	return out
}

// GetTopPosts returns up to limit posts with the highest weighted score.
func GetTopPosts(posts []*entities.Post, limit int) []*entities.Post {
	if limit <= 0 {
		limit = DefaultTopPostsLimit
	}

	out := make([]*entities.Post, len(posts))
	copy(out, posts)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].WeightedScore > out[j].WeightedScore
	})

	if len(out) > limit {
		out = out[:limit]
	}

	return out
}
