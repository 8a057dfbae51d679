// Package analytics is the engagement analytics engine.
//
// Every function is a pure computation over a slice of posts already windowed by a Range.
// Nothing is cached between calls: the same input always yields the same output, while
// normalized scores are relative to the maximum found in the given window and change
// whenever the window's contents change.
//
// Day-of-week indexes are 0-based with Sunday = 0. Grouping is done in UTC.
//
// Overview, Heatmap and BestSlots aggregate the decayed WeightedScore. TimeSeries and
// PlatformBreakdown aggregate the undecayed EngagementScore.
package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/cadencehq/cadence/internal/entities"
)

// nolint:gochecknoglobals
var (
	dayNames      = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	shortDayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
)

// Range is an inclusive window over post's PublishedAt. Nil bound means unbounded.
type Range struct {
	From *time.Time
	To   *time.Time
}

// Contains returns true if t is within range.
func (r Range) Contains(t time.Time) bool {
	if r.From != nil && t.Before(*r.From) {
		return false
	}

	if r.To != nil && t.After(*r.To) {
		return false
	}

	return true
}

// String returns human readable range, e.g. "2024-01-01 - 2024-01-31" or "all time".
func (r Range) String() string {
	const layout = "2006-01-02"

	switch {
	case r.From != nil && r.To != nil:
		return r.From.UTC().Format(layout) + " - " + r.To.UTC().Format(layout)
	case r.From != nil:
		return "since " + r.From.UTC().Format(layout)
	case r.To != nil:
		return "until " + r.To.UTC().Format(layout)
	default:
		return "all time"
	}
}

// DayName returns full name of 0-based weekday.
func DayName(day int) string {
	return dayNames[day]
}

// FormatHour formats 0-23 hour in 12-hour form, e.g. "12:00 AM", "3:00 PM".
func FormatHour(hour int) string {
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}

	h := hour % 12
	if h == 0 {
		h = 12
	}

	return fmt.Sprintf("%d:00 %s", h, suffix)
}

// HourLabels returns formatted labels of all 24 hours.
func HourLabels() []string {
	out := make([]string, 24)
	for i := range out {
		out[i] = FormatHour(i)
	}

	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func normalize(v, top float64) int {
	if top <= 0 {
		return 0
	}

	return int(math.Round(v / top * 100))
}

// group accumulates a metric of posts sharing some key.
// Variance is accumulated with Welford's method, so identical values give exactly zero deviation.
type group struct {
	count       int
	sum         float64
	running     float64
	m2          float64
	impressions uint64
	engagements uint64
}

func (g *group) add(v float64, p *entities.Post) {
	g.count++
	g.sum += v

	delta := v - g.running
	g.running += delta / float64(g.count)
	g.m2 += delta * (v - g.running)

	g.impressions += p.Metrics.Impressions
	g.engagements += p.Metrics.Engagements()
}

func (g *group) mean() float64 {
	if g.count == 0 {
		return 0
	}

	return g.sum / float64(g.count)
}

// stdDev returns population standard deviation.
func (g *group) stdDev() float64 {
	if g.count == 0 {
		return 0
	}

	return math.Sqrt(g.m2 / float64(g.count))
}

func weekday(t time.Time) int {
	return int(t.UTC().Weekday())
}

func hour(t time.Time) int {
	return t.UTC().Hour()
}
