package analytics

import (
	"math"
	"sort"

	"github.com/cadencehq/cadence/internal/entities"
)

const (
	// DefaultBestSlotsLimit is used when limit is not positive.
	DefaultBestSlotsLimit = 5

	// minSlotPosts is the least number of posts a slot needs to be recommended.
	minSlotPosts = 2
	// fullSamplePosts is the number of posts giving full sample confidence.
	fullSamplePosts = 10

	sampleWeight        = 0.4
	variabilityWeight   = 0.6
	minVariabilityConf  = 0.3
	flatVariabilityConf = 0.5

	slotsPerDay  = 24
	slotsPerWeek = 7 * slotsPerDay
)

// HeatmapCell is an aggregate over posts sharing (day of week, hour of day).
type HeatmapCell struct {
	Day             string  `json:"day"`
	DayIndex        int     `json:"dayIndex"`
	Hour            int     `json:"hour"`
	HourFormatted   string  `json:"hourFormatted"`
	AvgEngagement   float64 `json:"avgEngagement"`
	NormalizedScore int     `json:"normalizedScore"`
	PostCount       int     `json:"postCount"`
}

// Heatmap contains non-empty cells sorted by day and hour.
type Heatmap struct {
	Data          []HeatmapCell `json:"data"`
	Days          []string      `json:"days"`
	Hours         []string      `json:"hours"`
	MaxEngagement float64       `json:"maxEngagement"`
}

// Slot is a recommended publishing time.
type Slot struct {
	Rank            int     `json:"rank"`
	Day             string  `json:"day"`
	DayIndex        int     `json:"dayIndex"`
	Hour            int     `json:"hour"`
	HourFormatted   string  `json:"hourFormatted"`
	AvgEngagement   float64 `json:"avgEngagement"`
	NormalizedScore int     `json:"normalizedScore"`
	PostCount       int     `json:"postCount"`
	ConfidenceScore int     `json:"confidenceScore"`
}

func slots(posts []*entities.Post) *[slotsPerWeek]group {
	var out [slotsPerWeek]group
	for _, p := range posts {
		out[weekday(p.PublishedAt)*slotsPerDay+hour(p.PublishedAt)].add(p.WeightedScore, p)
	}

	return &out
}

// GetHeatmap returns mean weighted score of every non-empty (day, hour) slot.
// Normalized score is relative to the highest slot mean within posts.
func GetHeatmap(posts []*entities.Post) Heatmap {
	s := slots(posts)

	var top float64
	for i := range s {
		if s[i].count > 0 && s[i].mean() > top {
			top = s[i].mean()
		}
	}

	out := Heatmap{
		Data:          []HeatmapCell{},
		Days:          append([]string(nil), shortDayNames[:]...),
		Hours:         HourLabels(),
		MaxEngagement: round2(top),
	}

	for i := range s {
		if s[i].count == 0 {
			continue
		}

		day, h := i/slotsPerDay, i%slotsPerDay
		out.Data = append(out.Data, HeatmapCell{
			Day:             shortDayNames[day],
			DayIndex:        day,
			Hour:            h,
			HourFormatted:   FormatHour(h),
			AvgEngagement:   round2(s[i].mean()),
			NormalizedScore: normalize(s[i].mean(), top),
			PostCount:       s[i].count,
		})
	}

	return out
}

// GetBestSlots returns up to limit slots having at least two posts, ordered by mean
// weighted score descending. Equal means keep day/hour order.
//
// ConfidenceScore is a heuristic blend of sample size and score stability:
//
//	round(100 * (0.4*min(n/10, 1) + 0.6*v)), v = max(1 - stddev/mean, 0.3) if stddev > 0 else 0.5
//
// With at least two posts per slot it falls within [26, 100]. It is not a statistical
// confidence interval.
func GetBestSlots(posts []*entities.Post, limit int) []Slot {
	if limit <= 0 {
		limit = DefaultBestSlotsLimit
	}

	s := slots(posts)

	idx := make([]int, 0, slotsPerWeek)
	for i := range s {
		if s[i].count >= minSlotPosts {
			idx = append(idx, i)
		}
	}

	sort.SliceStable(idx, func(i, j int) bool {
		return s[idx[i]].mean() > s[idx[j]].mean()
	})

	if len(idx) > limit {
		idx = idx[:limit]
	}

	// normalized against the top slot mean, floored at 1.
	top := 1.0
	if len(idx) > 0 && s[idx[0]].mean() > top {
		top = s[idx[0]].mean()
	}

	out := make([]Slot, len(idx))
	for rank, i := range idx {
		g := &s[i]
		day, h := i/slotsPerDay, i%slotsPerDay

		out[rank] = Slot{
			Rank:            rank + 1,
			Day:             DayName(day),
			DayIndex:        day,
			Hour:            h,
			HourFormatted:   FormatHour(h),
			AvgEngagement:   round2(g.mean()),
			NormalizedScore: normalize(g.mean(), top),
			PostCount:       g.count,
			ConfidenceScore: confidence(g.count, g.mean(), g.stdDev()),
		}
	}

	return out
}

func confidence(n int, mean, stdDev float64) int {
	sample := math.Min(float64(n)/fullSamplePosts, 1)

	variability := flatVariabilityConf
	if stdDev > 0 {
		variability = minVariabilityConf
		if mean > 0 {
			variability = math.Max(1-stdDev/mean, minVariabilityConf)
		}
	}

	return int(math.Round((sample*sampleWeight + variability*variabilityWeight) * 100))
}
