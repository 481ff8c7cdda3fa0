package seeds

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/actuallystonmai/content-catalog/internal/domain"
	"github.com/actuallystonmai/content-catalog/internal/repository"
)

const providerIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

var titles = []string{
	"GOTO 2017 • The Many Meanings of Event-Driven Architecture • Martin Fowler",
	"Simple Made Easy",
	"The Mess We're In",
	"Concurrency Is Not Parallelism",
	"Inventing on Principle",
	"Growing a Language",
	"Hammock Driven Development",
	"The Value of Values",
	"Boundaries",
	"Wat",
}

// Setup loads n deterministic sample contents with ids 1..n. Existing ids
// are overwritten. Expiry times are spread around now, so some are expired.
func Setup(ctx context.Context, repo repository.Repository, n int, now time.Time) error {
	rng := rand.New(rand.NewSource(42))

	slog.Info("[seed] inserting contents", "count", n)
	for i := range n {
		content := sampleContent(rng, int64(i+1), i, now)
		if err := repo.Add(ctx, content); err != nil {
			return fmt.Errorf("seed content %d: %w", content.ID(), err)
		}
	}

	slog.Info("[seed] seeding complete")
	return nil
}

func sampleContent(rng *rand.Rand, id int64, i int, now time.Time) *domain.Content {
	providers := []string{"youtube", "vimeo", "twitch"}
	providerWeights := []float64{0.6, 0.25, 0.15}
	mediaTypes := map[string]string{
		"youtube": "video",
		"vimeo":   "video",
		"twitch":  "live",
	}

	title := titles[i%len(titles)]
	if i >= len(titles) {
		title = fmt.Sprintf("%s (part %d)", title, i/len(titles)+1)
	}
	provider := weightedChoice(rng, providers, providerWeights)

	// -30 .. +334 days from now
	expiresAt := now.AddDate(0, 0, rng.Intn(365)-30)

	c := domain.NewContent(domain.Fields{
		ID:         id,
		Name:       title,
		Duration:   durationSeconds(rng),
		Provider:   provider,
		MediaType:  mediaTypes[provider],
		ProviderID: providerID(rng),
		ExpiresAt:  expiresAt.UnixMilli(),
	})
	if rng.Float64() < 0.2 {
		c.MarkWatched()
	}
	return c
}

// durationSeconds is skewed towards short clips, 60s .. 3h.
func durationSeconds(rng *rand.Rand) int64 {
	u := rng.Float64()
	raw := math.Pow(u, 2.0) * 3 * 60 * 60
	return max(60, int64(math.Round(raw)))
}

func providerID(rng *rand.Rand) string {
	b := make([]byte, 11)
	for i := range b {
		b[i] = providerIDAlphabet[rng.Intn(len(providerIDAlphabet))]
	}
	return string(b)
}

func weightedChoice(rng *rand.Rand, choices []string, weights []float64) string {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	r := rng.Float64() * total
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if r <= cumulative {
			return choices[i]
		}
	}
	return choices[len(choices)-1]
}
