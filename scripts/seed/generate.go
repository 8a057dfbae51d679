package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/cadencehq/cadence/internal/entities"
)

// samplePost is a post in seed file format.
type samplePost struct {
	Content     string   `json:"content"`
	Headline    string   `json:"headline"`
	Platform    string   `json:"platform"`
	PublishedAt string   `json:"publishedAt"`
	Tags        []string `json:"tags"`
	Tone        string   `json:"tone"`
	Metrics     struct {
		Likes       uint64 `json:"likes"`
		Comments    uint64 `json:"comments"`
		Shares      uint64 `json:"shares"`
		Clicks      uint64 `json:"clicks"`
		Impressions uint64 `json:"impressions"`
	} `json:"metrics"`
}

func readSamples(path string) ([]*entities.Post, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read samples: %w", err)
	}

	var in []samplePost
	if err := json.Unmarshal(b, &in); err != nil {
		return nil, fmt.Errorf("failed to unmarshal samples: %w", err)
	}

	out := make([]*entities.Post, len(in))
	for i, v := range in {
		platform, err := entities.ParsePlatform(v.Platform)
		if err != nil {
			return nil, fmt.Errorf("post %d: %w", i, err)
		}

		tone, err := entities.ParseTone(v.Tone)
		if err != nil {
			return nil, fmt.Errorf("post %d: %w", i, err)
		}

		publishedAt, err := time.Parse(time.RFC3339, v.PublishedAt)
		if err != nil {
			return nil, fmt.Errorf("post %d: invalid publishedAt: %w", i, err)
		}

		out[i] = &entities.Post{
			Content:     v.Content,
			Headline:    v.Headline,
			Platform:    platform,
			PublishedAt: publishedAt,
			Tags:        v.Tags,
			Tone:        tone,
			Metrics: entities.Metrics{
				Likes:       v.Metrics.Likes,
				Comments:    v.Metrics.Comments,
				Shares:      v.Metrics.Shares,
				Clicks:      v.Metrics.Clicks,
				Impressions: v.Metrics.Impressions,
			},
		}
	}

	return out, nil
}

var (
	topics = []string{"product launch", "hiring", "case study", "webinar", "release notes", "team culture", "industry report", "tips"}
	tones  = []entities.Tone{
		entities.ProfessionalTone, entities.EducationalTone, entities.UrgentTone,
		entities.PlayfulTone, entities.InspirationalTone, entities.NeutralTone,
	}

	// engagement multipliers by hour of day.
	peakHours = map[int]float64{8: 1.6, 9: 1.8, 12: 1.4, 17: 1.5, 18: 1.3}
)

// generate returns n synthetic posts published within days before now.
func generate(rnd *rand.Rand, n, days int, now time.Time) []*entities.Post {
	platforms := entities.Platforms()

	out := make([]*entities.Post, n)
	for i := range out {
		platform := platforms[rnd.Intn(len(platforms))]
		topic := topics[rnd.Intn(len(topics))]

		day := now.AddDate(0, 0, -rnd.Intn(days)).Truncate(24 * time.Hour)
		publishedAt := day.Add(time.Duration(rnd.Intn(24))*time.Hour + time.Duration(rnd.Intn(60))*time.Minute)

		boost := 1.0
		if v, ok := peakHours[publishedAt.Hour()]; ok {
			boost = v
		}
		if wd := publishedAt.Weekday(); wd == time.Saturday || wd == time.Sunday {
			boost *= 0.7
		}

		impressions := uint64(200 + rnd.Intn(9800))
		rate := (0.01 + rnd.Float64()*0.05) * boost
		engagements := float64(impressions) * rate

		out[i] = &entities.Post{
			Content:     fmt.Sprintf("Our latest %s on %s, read more on our site.", topic, platform),
			Headline:    fmt.Sprintf("%s #%d", topic, i+1),
			Platform:    platform,
			PublishedAt: publishedAt,
			Tags:        []string{topic, string(platform)},
			Tone:        tones[rnd.Intn(len(tones))],
			Metrics: entities.Metrics{
				Likes:       uint64(engagements * 0.6),
				Comments:    uint64(engagements * 0.1),
				Shares:      uint64(engagements * 0.1),
				Clicks:      uint64(engagements * 0.2),
				Impressions: impressions,
			},
		}
	}

	return out
}
