package entities

import (
	"math"
	"time"
)

const (
	likeWeight    = 1
	commentWeight = 2
	shareWeight   = 3
	clickWeight   = 1.5

	// decayDays is the e-folding time of the weighted score.
	decayDays = 30
)

// Score returns impression-normalized engagement score and its time-decayed variant.
// Decay is measured from publishedAt to now and is frozen into the returned value.
// Impressions lower than 1 are treated as 1.
func Score(m Metrics, publishedAt, now time.Time) (engagement float64, weighted float64) {
	impressions := m.Impressions
	if impressions < 1 {
		impressions = 1
	}

	total := float64(m.Likes)*likeWeight +
		float64(m.Comments)*commentWeight +
		float64(m.Shares)*shareWeight +
		float64(m.Clicks)*clickWeight

	engagement = (total / float64(impressions)) * 100

	ageInDays := now.Sub(publishedAt).Hours() / 24

	return engagement, engagement * math.Exp(-ageInDays/decayDays)
}

// Rescore recalculates derived scores of post at the given moment.
func (p *Post) Rescore(now time.Time) {
	if p.Metrics.Impressions < 1 {
		p.Metrics.Impressions = 1
	}

	p.EngagementScore, p.WeightedScore = Score(p.Metrics, p.PublishedAt, now)
}
