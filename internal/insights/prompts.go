package insights

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/cadencehq/cadence/internal/analytics"
)

const (
	headlinesContentLimit = 1000
	rewriteContentLimit   = 2000
	referenceStyleLimit   = 500
	toneContentLimit      = 1000
)

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func headlinesPrompt(r HeadlinesRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are an expert social media copywriter. Generate %d compelling headlines for the following content.\n\n", r.Count)
	fmt.Fprintf(&b, "Content:\n%s\n\n", truncate(r.Content, headlinesContentLimit))
	b.WriteString("Requirements:\n")
	fmt.Fprintf(&b, "- Platform: %s\n", r.Platform)
	fmt.Fprintf(&b, "- Tone: %s\n", r.Tone)
	fmt.Fprintf(&b, "- Maximum length: %d characters\n", r.MaxLength)
	b.WriteString("- Each headline must be unique and engaging\n\n")
	b.WriteString("Score each headline from 1 to 100 by predicted engagement and briefly explain the score.\n\n")
	b.WriteString(`Respond with json only: {"headlines":[{"text":"...","score":85,"reasoning":"..."}]}`)

	return b.String()
}

func rewritePrompt(r RewriteRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Rewrite the following content in a %s tone for %s.\n\n", r.TargetTone, r.Platform)
	fmt.Fprintf(&b, "Original content:\n%s\n\n", truncate(r.Content, rewriteContentLimit))
	if r.ReferenceStyle != "" {
		fmt.Fprintf(&b, "Match the writing style of this example:\n%s\n\n", truncate(r.ReferenceStyle, referenceStyleLimit))
	}
	b.WriteString("Keep the core message, list the changes you made and describe the original and applied tones.\n\n")
	b.WriteString(`Respond with json only: {"rewritten":"...","changes":["..."],"toneAnalysis":{"original":"...","applied":"..."}}`)

	return b.String()
}

func timingPrompt(r TimingRequest) string {
	var b strings.Builder

	slots, _ := json.MarshalIndent(r.BestSlots, "", "  ")

	fmt.Fprintf(&b, "You are a social media analyst. Explain the posting time analytics for %s over %s.\n\n", r.Platform, r.DateRange)
	fmt.Fprintf(&b, "Best time slots:\n%s\n\n", slots)
	fmt.Fprintf(&b, "Top heatmap buckets (day hour: average weighted engagement):\n%s\n\n", strings.Join(r.HeatmapSummary, "\n"))
	b.WriteString("Describe the patterns, explain why each slot performs well and give actionable recommendations. ")
	b.WriteString("Rate your confidence as high, medium or low depending on how much data supports the conclusions.\n\n")
	b.WriteString(`Respond with json only: {"summary":"...","patterns":["..."],"explanations":[{"slot":"...","reason":"..."}],"recommendations":["..."],"confidenceLevel":"medium"}`)

	return b.String()
}

func tonePrompt(content string) string {
	var b strings.Builder

	b.WriteString("Classify the tone of the following content as one of: professional, educational, urgent, playful, inspirational, neutral.\n\n")
	fmt.Fprintf(&b, "Content:\n%s\n\n", truncate(content, toneContentLimit))
	b.WriteString("Give a confidence from 0 to 100 and a percentage breakdown across all tones.\n\n")
	b.WriteString(`Respond with json only: {"primaryTone":"...","secondaryTone":null,"confidence":80,"toneBreakdown":{"professional":60},"reasoning":"..."}`)

	return b.String()
}

func sortCells(cells []analytics.HeatmapCell) {
	sort.SliceStable(cells, func(i, j int) bool {
		return cells[i].AvgEngagement > cells[j].AvgEngagement
	})
}
