package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/cadencehq/cadence/internal/entities"
)

// Granularity is a time series bucket size.
type Granularity string

const (
	HourGranularity Granularity = "hour"
	DayGranularity  Granularity = "day"
	WeekGranularity Granularity = "week"
)

// ParseGranularity parses granularity, empty string is parsed as day.
func ParseGranularity(s string) (Granularity, error) {
	switch g := Granularity(s); g {
	case "":
		return DayGranularity, nil
	case HourGranularity, DayGranularity, WeekGranularity:
		return g, nil
	default:
		return "", fmt.Errorf("unknown granularity %q", s)
	}
}

// Point is a time series bucket.
type Point struct {
	// Date is RFC3339 timestamp with milliseconds for hour and day buckets
	// and a YYYY-MM-DD date for week buckets.
	Date             string  `json:"date"`
	AvgEngagement    float64 `json:"avgEngagement"`
	TotalImpressions uint64  `json:"totalImpressions"`
	TotalEngagements uint64  `json:"totalEngagements"`
	PostCount        int     `json:"postCount"`
}

type bucketKey struct {
	year  int
	month time.Month
	day   int
	hour  int
	week  int
}

func (k bucketKey) less(o bucketKey) bool {
	switch {
	case k.year != o.year:
		return k.year < o.year
	case k.week != o.week:
		return k.week < o.week
	case k.month != o.month:
		return k.month < o.month
	case k.day != o.day:
		return k.day < o.day
	default:
		return k.hour < o.hour
	}
}

func (k bucketKey) date(g Granularity) string {
	if g == WeekGranularity {
		return time.Date(k.year, time.January, 1+k.week*7, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
	}

	return time.Date(k.year, k.month, k.day, k.hour, 0, 0, 0, time.UTC).Format("2006-01-02T15:04:05.000Z")
}

// WeekOfYear returns 0-53 week number where weeks start on Sunday and days
// before the first Sunday of the year belong to week 0.
func WeekOfYear(t time.Time) int {
	t = t.UTC()
	return (t.YearDay() - 1 + 7 - int(t.Weekday())) / 7
}

func keyOf(t time.Time, g Granularity) bucketKey {
	t = t.UTC()

	switch g {
	case HourGranularity:
		return bucketKey{year: t.Year(), month: t.Month(), day: t.Day(), hour: t.Hour()}
	case WeekGranularity:
		return bucketKey{year: t.Year(), week: WeekOfYear(t)}
	default:
		return bucketKey{year: t.Year(), month: t.Month(), day: t.Day()}
	}
}

// GetTimeSeries groups posts by granularity and returns buckets in chronological order.
// Unknown granularity is treated as day.
func GetTimeSeries(posts []*entities.Post, g Granularity) []Point {
	if g != HourGranularity && g != WeekGranularity {
		g = DayGranularity
	}

	groups := make(map[bucketKey]*group)
	keys := make([]bucketKey, 0)

	for _, p := range posts {
		k := keyOf(p.PublishedAt, g)

		v, ok := groups[k]
		if !ok {
			v = &group{}
			groups[k] = v
			keys = append(keys, k)
		}

		v.add(p.EngagementScore, p)
	}

	sort.Slice(keys, func(i, j int) bool {
		return keys[i].less(keys[j])
	})

	out := make([]Point, len(keys))
	for i, k := range keys {
		v := groups[k]
		out[i] = Point{
			Date:             k.date(g),
			AvgEngagement:    round2(v.mean()),
			TotalImpressions: v.impressions,
			TotalEngagements: v.engagements,
			PostCount:        v.count,
		}
	}

	return out
}
