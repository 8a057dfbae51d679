package analytics

import (
	"math"

	"github.com/cadencehq/cadence/internal/entities"
)

// DaySummary describes a day of week grouping.
type DaySummary struct {
	Day           string  `json:"day"`
	DayIndex      int     `json:"dayIndex"`
	AvgEngagement float64 `json:"avgEngagement"`
	PostCount     int     `json:"postCount"`
}

// HourSummary describes an hour of day grouping.
type HourSummary struct {
	Hour          int     `json:"hour"`
	HourFormatted string  `json:"hourFormatted"`
	AvgEngagement float64 `json:"avgEngagement"`
	PostCount     int     `json:"postCount"`
}

// Overview contains KPIs of posts.
type Overview struct {
	TotalPosts       int     `json:"totalPosts"`
	AvgEngagement    float64 `json:"avgEngagement"`
	TotalImpressions uint64  `json:"totalImpressions"`
	TotalEngagements uint64  `json:"totalEngagements"`
	BestDay          *string `json:"bestDay"`
	BestHour         *int    `json:"bestHour"`
	EngagementRate   float64 `json:"engagementRate"`

	BestDayDetails  *DaySummary  `json:"bestDayDetails,omitempty"`
	BestHourDetails *HourSummary `json:"bestHourDetails,omitempty"`
}

// GetOverview computes KPIs of posts.
func GetOverview(posts []*entities.Post) Overview {
	var (
		out   Overview
		score float64
	)

	for _, p := range posts {
		out.TotalPosts++
		score += p.EngagementScore
		out.TotalImpressions += p.Metrics.Impressions
		out.TotalEngagements += p.Metrics.Engagements()
	}

	if out.TotalPosts > 0 {
		out.AvgEngagement = round2(score / float64(out.TotalPosts))
	}

	if out.TotalImpressions > 0 {
		out.EngagementRate = math.Round(float64(out.TotalEngagements)/float64(out.TotalImpressions)*10000) / 100
	}

	if d := BestDay(posts); d != nil {
		out.BestDay = &d.Day
		out.BestDayDetails = d
	}

	if h := BestHour(posts); h != nil {
		out.BestHour = &h.Hour
		out.BestHourDetails = h
	}

	return out
}

// BestDay returns the weekday with the highest mean weighted score.
// Ties are resolved in favour of the earlier weekday. Returns nil if posts are empty.
func BestDay(posts []*entities.Post) *DaySummary {
	var days [7]group
	for _, p := range posts {
		days[weekday(p.PublishedAt)].add(p.WeightedScore, p)
	}

	best := -1
	for i := range days {
		if days[i].count == 0 {
			continue
		}

		if best == -1 || days[i].mean() > days[best].mean() {
			best = i
		}
	}

	if best == -1 {
		return nil
	}

	return &DaySummary{
		Day:           DayName(best),
		DayIndex:      best,
		AvgEngagement: round2(days[best].mean()),
		PostCount:     days[best].count,
	}
}

// BestHour returns the hour of day with the highest mean weighted score.
// Ties are resolved in favour of the earlier hour. Returns nil if posts are empty.
func BestHour(posts []*entities.Post) *HourSummary {
	var hours [24]group
	for _, p := range posts {
		hours[hour(p.PublishedAt)].add(p.WeightedScore, p)
	}

	best := -1
	for i := range hours {
		if hours[i].count == 0 {
			continue
		}

		if best == -1 || hours[i].mean() > hours[best].mean() {
			best = i
		}
	}

	if best == -1 {
		return nil
	}

	return &HourSummary{
		Hour:          best,
		HourFormatted: FormatHour(best),
		AvgEngagement: round2(hours[best].mean()),
		PostCount:     hours[best].count,
	}
}
