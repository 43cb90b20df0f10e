package gemini

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/carwise/carwise/internal/ai"
	"github.com/carwise/carwise/internal/inventory"
	"github.com/carwise/carwise/internal/logger"
	"github.com/carwise/carwise/internal/profile"
	"github.com/carwise/carwise/internal/scoring"
	"github.com/carwise/carwise/internal/selection"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error)
	Model() string
}

//go:embed scorer_prompt.md
var scorerPromptTemplate string

const (
	// MaxResults caps the AI-ranked result list.
	MaxResults = 15

	// Listings whose response line cannot be parsed get these stand-ins; the
	// batch keeps its size and order either way.
	defaultScore  = 75
	defaultReason = "Good option for your needs"

	// The rule-based fallback has no pricing model, so every pricing score is
	// pinned here.
	fallbackPricing = 75
	fallbackReason  = "Quick analysis match"

	scoreTemperature     float32 = 0.1
	scoreMaxOutputTokens int32   = 800

	defaultMaxLogLength = 200
)

// Scorer ranks listings by delegating the scoring batch to Gemini, with the
// deterministic simple scorer as the wholesale fallback.
type Scorer struct {
	generator contentGenerator
	rng       *rand.Rand
	logger    *zap.Logger
	maxLogLen int
}

// NewScorer creates the AI scoring pipeline.
func NewScorer(generator contentGenerator, rng *rand.Rand, log *zap.Logger, maxLogLength int) *Scorer {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Scorer{
		generator: generator,
		rng:       rng,
		logger:    log,
		maxLogLen: maxLogLength,
	}
}

// Score narrows the inventory to a representative sample, asks the model to
// rate every sampled listing in one call, and returns up to MaxResults
// listings ordered by descending match score plus a narrative summary.
//
// A failed provider call never surfaces to the caller: the sample is scored
// by the deterministic simple scorer instead, with the same result shape.
func (s *Scorer) Score(ctx context.Context, inv *inventory.Inventory, p *profile.Profile) (*ai.Result, error) {
	if inv == nil || inv.Len() == 0 {
		return nil, fmt.Errorf("inventory is empty")
	}
	if p == nil {
		return nil, fmt.Errorf("profile is required")
	}

	sample, err := selection.Run(s.logger, []selection.Filter{
		selection.NewBudgetPrefilter(p.Budget),
		selection.NewSampler(s.rng),
	}, inv)
	if err != nil {
		return nil, fmt.Errorf("selecting scoring batch: %w", err)
	}

	result := &ai.Result{}

	scored, err := s.scoreBatch(ctx, sample, p)
	if err != nil {
		s.logger.Warn("AI scoring failed, falling back to rule-based scoring", zap.Error(err))
		scored = fallbackScore(sample, p)
		result.Fallback = true
	}

	sort.Slice(scored, func(i, j int) bool { return scored[i].Match > scored[j].Match })
	if len(scored) > MaxResults {
		scored = scored[:MaxResults]
	}
	result.Listings = scored

	result.Summary = s.summarize(ctx, result.Listings, p)

	return result, nil
}

func (s *Scorer) scoreBatch(ctx context.Context, sample *inventory.Inventory, p *profile.Profile) ([]ai.ScoredListing, error) {
	prompt := buildScorerPrompt(sample, p)

	s.logger.Debug("gemini batch scoring request",
		zap.Int("batch_size", sample.Len()),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, s.maxLogLen)),
	)

	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(scoreTemperature),
		MaxOutputTokens: scoreMaxOutputTokens,
	}

	raw, err := s.generator.GenerateContent(ctx, prompt, cfg)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("gemini batch scoring response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", logger.TruncateForLog(raw, s.maxLogLen)),
	)

	return parseBatchResponse(raw, sample.Items), nil
}

// parseBatchResponse matches response lines to listings by POSITION, not by
// the index printed in each line. A model that reorders or omits lines
// silently misaligns scores with listings; this mirrors the observed provider
// contract and is deliberately not corrected here. Unparseable or missing
// lines degrade to default scores without dropping the listing.
func parseBatchResponse(raw string, listings []inventory.Listing) []ai.ScoredListing {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	scored := make([]ai.ScoredListing, 0, len(listings))
	for i, l := range listings {
		entry := ai.ScoredListing{
			Listing: l,
			Match:   defaultScore,
			Pricing: defaultScore,
			Reason:  defaultReason,
		}

		if i < len(lines) {
			if match, pricing, reason, ok := parseScoreLine(lines[i]); ok {
				entry.Match = match
				entry.Pricing = pricing
				entry.Reason = reason
			}
		}

		scored = append(scored, entry)
	}

	return scored
}

func parseScoreLine(line string) (match, pricing int, reason string, ok bool) {
	match, ok = intAfter(line, "match=")
	if !ok {
		return 0, 0, "", false
	}
	pricing, ok = intAfter(line, "price=")
	if !ok {
		return 0, 0, "", false
	}

	reason = defaultReason
	if _, after, found := strings.Cut(line, `reason="`); found {
		if text, _, closed := strings.Cut(after, `"`); closed && strings.TrimSpace(text) != "" {
			reason = strings.TrimSpace(text)
		}
	}

	return clampScore(match), clampScore(pricing), reason, true
}

func intAfter(line, marker string) (int, bool) {
	_, after, found := strings.Cut(line, marker)
	if !found {
		return 0, false
	}

	value := after
	if idx := strings.IndexAny(value, ",)"); idx >= 0 {
		value = value[:idx]
	}

	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, false
	}
	return n, true
}

func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

// fallbackScore scores the sample with the deterministic simple scorer. The
// pricing score has no rule-based counterpart and is pinned at 75.
func fallbackScore(sample *inventory.Inventory, p *profile.Profile) []ai.ScoredListing {
	userType, priority := profile.ClassifySimple(p)

	scored := make([]ai.ScoredListing, 0, sample.Len())
	for _, l := range sample.Items {
		scored = append(scored, ai.ScoredListing{
			Listing: l,
			Match:   int(scoring.ScoreSimple(l, p.Budget, priority, userType)),
			Pricing: fallbackPricing,
			Reason:  fallbackReason,
		})
	}
	return scored
}

func buildScorerPrompt(sample *inventory.Inventory, p *profile.Profile) string {
	var listings strings.Builder
	for i, l := range sample.Items {
		fmt.Fprintf(&listings, "%d. %d %s %s - $%s, %smi, %s, %s, %d/%dmpg, %d/5 safety, %s reliability\n",
			i+1, l.Year, l.Brand, l.Model,
			commas(int(l.Price)), commas(l.Mileage),
			l.Type, l.Fuel, l.MPGCity, l.MPGHighway, l.SafetyRating, l.Reliability,
		)
	}

	prompt := strings.ReplaceAll(scorerPromptTemplate, "{{USER_PROFILE}}", userProfileBlock(p))
	prompt = strings.ReplaceAll(prompt, "{{LISTINGS}}", strings.TrimRight(listings.String(), "\n"))
	return prompt
}

func userProfileBlock(p *profile.Profile) string {
	mileage := p.MileageCeiling
	if mileage == "" {
		mileage = profile.NoPreference
	}
	color := p.ColorPreference
	if color == "" || color == profile.NoPreference {
		color = "any"
	}

	budgetFocus := p.BudgetPriority
	if len(p.ExtraBudgetPriorities) > 0 {
		budgetFocus += ", " + strings.Join(p.ExtraBudgetPriorities, ", ")
	}

	lines := []string{
		fmt.Sprintf("User: %s, %s, Budget: $%s", p.Age, p.HouseholdSize, commas(int(p.Budget))),
		fmt.Sprintf("Max mileage: %s, Use: %s", mileage, p.Usage),
		fmt.Sprintf("Priorities: Reliability=%s, Performance=%s, Budget focus=%s",
			p.ReliabilityImportance, p.PerformanceImportance, budgetFocus),
		fmt.Sprintf("Preferences: %s size, %s color, %s brands", p.SizePreference, color, p.BrandPreference),
	}
	if len(p.Features) > 0 {
		lines = append(lines, "Wanted features: "+strings.Join(p.Features, ", "))
	}

	return strings.Join(lines, "\n")
}

// commas renders 12345 as "12,345" for prompt and display text.
func commas(n int) string {
	s := strconv.Itoa(n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	var out []byte
	for i, d := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, d)
	}

	if neg {
		return "-" + string(out)
	}
	return string(out)
}
