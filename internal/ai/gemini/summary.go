package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	_ "embed"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/carwise/carwise/internal/ai"
	"github.com/carwise/carwise/internal/profile"
)

//go:embed summary_prompt.md
var summaryPromptTemplate string

const summaryTemperature float32 = 0.7

// summarize asks the model for a short narrative about the ranked results.
// Any failure degrades to a fixed template interpolating the same counts; the
// summary is decoration, never a reason to fail the batch.
func (s *Scorer) summarize(ctx context.Context, listings []ai.ScoredListing, p *profile.Profile) string {
	topCount := 3
	if topCount > len(listings) {
		topCount = len(listings)
	}
	otherCount := len(listings) - topCount

	picks := make([]summaryPick, 0, topCount)
	for _, sl := range listings[:topCount] {
		picks = append(picks, summaryPick{
			Car:     sl.Listing.Title(),
			Price:   int(sl.Listing.Price),
			Mileage: sl.Listing.Mileage,
			Match:   sl.Match,
			Pricing: sl.Pricing,
			Reason:  sl.Reason,
		})
	}

	picksJSON, err := json.MarshalIndent(picks, "", "  ")
	if err != nil {
		return summaryFallback(p, otherCount)
	}

	prompt := strings.ReplaceAll(summaryPromptTemplate, "{{USER_PROFILE}}", userProfileBlock(p))
	prompt = strings.ReplaceAll(prompt, "{{TOP_PICKS_JSON}}", string(picksJSON))
	prompt = strings.ReplaceAll(prompt, "{{OTHER_COUNT}}", strconv.Itoa(otherCount))

	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(summaryTemperature),
	}

	summary, err := s.generator.GenerateContent(ctx, prompt, cfg)
	if err != nil {
		s.logger.Warn("summary generation failed, using template", zap.Error(err))
		return summaryFallback(p, otherCount)
	}

	return summary
}

type summaryPick struct {
	Car     string `json:"car"`
	Price   int    `json:"price"`
	Mileage int    `json:"mileage"`
	Match   int    `json:"match_score"`
	Pricing int    `json:"pricing_score"`
	Reason  string `json:"reason"`
}

func summaryFallback(p *profile.Profile, otherCount int) string {
	return fmt.Sprintf(
		"Welcome! I've analyzed every car in our database based on your preferences for %s with a $%s budget. "+
			"After comprehensive scoring, I've identified your top 3 matches plus %d additional relevant options. "+
			"Each recommendation is scored and explained based on your specific needs.",
		strings.ToLower(p.Usage), commas(int(p.Budget)), otherCount,
	)
}
