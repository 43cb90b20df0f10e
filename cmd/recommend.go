package cmd

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/carwise/carwise/internal/ai"
	"github.com/carwise/carwise/internal/ai/gemini"
	"github.com/carwise/carwise/internal/inventory"
	"github.com/carwise/carwise/internal/logger"
	"github.com/carwise/carwise/internal/profile"
	"github.com/carwise/carwise/internal/scoring"
	"github.com/carwise/carwise/internal/secrets"

	"github.com/manifoldco/promptui"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	engineRules = "rules"
	engineAI    = "ai"

	variantSimple   = "simple"
	variantWeighted = "weighted"

	// PromptDone finishes a multi-select question.
	PromptDone = "Done"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Answer a short questionnaire and get ranked listings",
	Run: func(cmd *cobra.Command, _ []string) {
		recommend(cmd)
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().String("engine", engineRules, "scoring engine: rules or ai")
	recommendCmd.Flags().String("variant", variantWeighted, "rule engine variant: simple or weighted")
	recommendCmd.Flags().IntP("top", "t", 0, "number of recommendations to print")

	viper.BindPFlag("top-results", recommendCmd.Flags().Lookup("top"))
}

// recommend is the main command for the cli.
func recommend(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := newLogger()
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting carwise", zap.String("version", version))

	set, err := inventory.LoadFile(config.Dataset)
	if err != nil {
		logger.Fatal("loading the listings dataset",
			zap.Error(err),
			zap.String("hint", "run 'carwise generate' to build one, or pass --dataset"),
		)
	}

	logger.Info("loaded listings", zap.Int("count", set.Len()))

	p, err := askProfile()
	if err != nil {
		logger.Fatal("collecting the questionnaire", zap.Error(err))
	}

	top := config.TopResults
	if top <= 0 {
		top = scoring.DefaultTopResults
	}

	engine := cmd.Flag("engine").Value.String()
	if !cmd.Flags().Changed("engine") && config.AI != nil && config.AI.Enabled {
		engine = engineAI
	}

	if engine == engineAI {
		// The AI engine has its own, larger default cut.
		aiTop := config.TopResults
		if aiTop <= 0 {
			aiTop = gemini.MaxResults
		}

		err := recommendAI(ctx, config, logger, set, p, aiTop)
		if err == nil {
			return
		}
		logger.Warn("AI engine unavailable, using the rule engine", zap.Error(err))
		fmt.Println("\n" + aiUnavailableMessage(err))
	}

	variant := cmd.Flag("variant").Value.String()
	ranked, userType, focus := recommendRules(set, p, variant, top)

	logger.Info("ranked listings",
		zap.String("engine", engineRules),
		zap.String("variant", variant),
		zap.Int("count", len(ranked)),
	)

	fmt.Printf("\nYou look like a %s driver, focused on %s.\n\n", userType, focus)
	printRanked(ranked)
	printInsights(set)
}

// recommendRules scores with the requested rule variant and returns the
// ranked cut plus the classification used, for display.
func recommendRules(set *inventory.Inventory, p *profile.Profile, variant string, top int) ([]scoring.Ranked, profile.UserType, string) {
	if variant == variantSimple {
		userType, priority := profile.ClassifySimple(p)
		score := func(l inventory.Listing) float64 {
			return scoring.ScoreSimple(l, p.Budget, priority, userType)
		}
		return scoring.Rank(set, p.Budget, score, top), userType, string(priority)
	}

	userType, weights := profile.ClassifyWeighted(p)
	score := func(l inventory.Listing) float64 {
		return scoring.ScoreWeighted(l, p.Budget, weights, userType, p)
	}

	focus := "a balanced mix of factors"
	if factor, ok := weights.Top(); ok {
		focus = factor.DisplayName()
	}

	return scoring.Rank(set, p.Budget, score, top), userType, focus
}

func recommendAI(ctx context.Context, config *Config, logger *zap.Logger, set *inventory.Inventory, p *profile.Profile, top int) error {
	scorer, err := newAIScorer(ctx, config.AI, logger)
	if err != nil {
		return err
	}

	result, err := scorer.Score(ctx, set, p)
	if err != nil {
		return err
	}

	if result.Fallback {
		fmt.Println("\nThe AI analysis did not complete; these matches come from a quick rule-based pass.")
	}

	if len(result.Listings) > top {
		result.Listings = result.Listings[:top]
	}

	fmt.Println()
	printScored(result.Listings)

	if result.Summary != "" {
		fmt.Printf("\n%s\n", result.Summary)
	}

	printInsights(set)
	return nil
}

// aiUnavailableMessage tells the user why the AI engine was skipped before
// the rule-based results are shown.
func aiUnavailableMessage(err error) string {
	return fmt.Sprintf("AI analysis is unavailable (%s); showing rule-based matches instead.", err)
}

func newAIScorer(ctx context.Context, cfg *AIConfig, log *zap.Logger) (ai.Scorer, error) {
	if cfg == nil || cfg.Gemini == nil {
		return nil, fmt.Errorf("gemini configuration is required for the ai engine")
	}

	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != gemini.Provider {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	apiKey, err := resolveAPIKey(cfg)
	if err != nil {
		return nil, err
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model)
	if err != nil {
		return nil, err
	}

	scorerLogger := logger.WithCommonFields(log, gemini.Provider, generator.Model())

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	return gemini.NewScorer(generator, rng, scorerLogger, cfg.Gemini.MaxLogLength), nil
}

func resolveAPIKey(cfg *AIConfig) (string, error) {
	key, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: cfg.Gemini.APIKey,
		File:  cfg.Gemini.APIKeyFile,
	})
	if err != nil {
		return "", fmt.Errorf("%w (set GEMINI_API_KEY, GEMINI_API_KEY_FILE or ai.gemini.api-key-file)", err)
	}

	return key, nil
}

// askProfile walks the questionnaire and decodes the answers into a
// validated profile.
func askProfile() (*profile.Profile, error) {
	answers := map[string]any{}

	single := []struct {
		key   string
		label string
		items []string
	}{
		{"age", "Your age group", profile.AgeBrackets},
		{"household-size", "Household size", profile.HouseholdSizes},
		{"experience", "Driving experience", profile.ExperienceLevels},
		{"location", "Where will you mostly drive", profile.Locations},
		{"usage", "Primary use of the car", profile.UsagePatterns},
		{"mileage-ceiling", "Maximum acceptable mileage", profile.MileageCeilings},
		{"fuel-preference", "Fuel economy vs performance", profile.FuelPreferences},
		{"size-preference", "Preferred vehicle size", profile.SizePreferences},
		{"color-preference", "Preferred color", profile.ColorPreferences},
		{"reliability", "How important is reliability", profile.ImportanceLevels},
		{"budget-priority", "Your main budget concern", profile.BudgetPriorities},
		{"performance", "How important is performance", profile.PerformanceLevels},
		{"brand", "Brand preference", profile.BrandPreferences},
	}

	for _, q := range single {
		answer, err := askSelect(q.label, q.items)
		if err != nil {
			return nil, err
		}
		answers[q.key] = answer
	}

	budget, err := askBudget()
	if err != nil {
		return nil, err
	}
	answers["budget"] = budget

	mainPriority, _ := answers["budget-priority"].(string)
	others := make([]string, 0, len(profile.BudgetPriorities))
	for _, bp := range profile.BudgetPriorities {
		if bp != mainPriority {
			others = append(others, bp)
		}
	}
	extras, err := askMulti("Other budget concerns", others)
	if err != nil {
		return nil, err
	}
	answers["extra-budget-priorities"] = extras

	features, err := askMulti("Features that matter to you", profile.Features)
	if err != nil {
		return nil, err
	}
	answers["features"] = features

	var p profile.Profile
	if err := mapstructure.Decode(answers, &p); err != nil {
		return nil, fmt.Errorf("decoding answers: %w", err)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

func askSelect(label string, items []string) (string, error) {
	prompt := promptui.Select{
		Label: label,
		Items: items,
		Size:  len(items),
	}

	_, answer, err := prompt.Run()
	return answer, err
}

// askMulti emulates a multi-select with repeated single selects; picked items
// disappear from the list and Done finishes the question.
func askMulti(label string, items []string) ([]string, error) {
	picked := make([]string, 0, len(items))
	left := append([]string{}, items...)

	for len(left) > 0 {
		prompt := promptui.Select{
			Label: label,
			Items: append([]string{PromptDone}, left...),
			Size:  len(left) + 1,
		}

		_, answer, err := prompt.Run()
		if err != nil {
			return nil, err
		}

		if answer == PromptDone {
			break
		}

		picked = append(picked, answer)
		for i, item := range left {
			if item == answer {
				left = append(left[:i], left[i+1:]...)
				break
			}
		}
	}

	return picked, nil
}

func askBudget() (float64, error) {
	prompt := promptui.Prompt{
		Label:   "Your budget in USD",
		Default: "15000",
		Validate: func(input string) error {
			n, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
			if err != nil {
				return fmt.Errorf("enter a number")
			}
			if n < 1000 || n > 200000 {
				return fmt.Errorf("enter a budget between 1000 and 200000")
			}
			return nil
		},
	}

	raw, err := prompt.Run()
	if err != nil {
		return 0, err
	}

	return strconv.ParseFloat(strings.TrimSpace(raw), 64)
}

func printRanked(ranked []scoring.Ranked) {
	if len(ranked) == 0 {
		fmt.Println("No listings fit your budget. Try raising it or regenerating the dataset.")
		return
	}

	for i, r := range ranked {
		l := r.Listing
		fmt.Printf("%2d. %-32s $%.0f, %dmi, %s %s, score %.0f\n",
			i+1, l.Title(), l.Price, l.Mileage, l.Fuel, l.Type, r.Score)
	}
}

func printScored(listings []ai.ScoredListing) {
	if len(listings) == 0 {
		fmt.Println("No listings fit your budget. Try raising it or regenerating the dataset.")
		return
	}

	for i, s := range listings {
		l := s.Listing
		fmt.Printf("%2d. %-32s $%.0f, %dmi, match %d/100, pricing %d/100\n",
			i+1, l.Title(), l.Price, l.Mileage, s.Match, s.Pricing)
		fmt.Printf("    %s\n", s.Reason)
	}
}

func printInsights(set *inventory.Inventory) {
	report := inventory.Insights(set.Items)

	fmt.Printf("\nMarket snapshot: %d listings, avg price $%.0f, avg %.0f mpg, avg safety %.1f/5\n",
		report.Total, report.AveragePrice, report.AverageMPG, report.AverageSafety)
	fmt.Printf("High reliability: %d, low insurance: %d, 30+ mpg: %d\n",
		report.HighReliability, report.LowInsurance, report.FuelEfficient)
}
