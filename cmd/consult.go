package cmd

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/carwise/carwise/internal/ai"
	"github.com/carwise/carwise/internal/ai/gemini"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const consultantApology = "I apologize, but I'm having trouble connecting right now. Please try asking your question again."

var consultCmd = &cobra.Command{
	Use:   "consult",
	Short: "Chat with an AI car-buying consultant",
	Run: func(_ *cobra.Command, _ []string) {
		consult()
	},
}

func init() {
	rootCmd.AddCommand(consultCmd)
}

func consult() {
	ctx := context.Background()

	logger, err := newLogger()
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	if config.AI == nil || config.AI.Gemini == nil {
		logger.Fatal("the consultant needs a gemini configuration",
			zap.String("hint", "set GEMINI_API_KEY or the ai.gemini section in the configuration file"),
		)
	}

	apiKey, err := resolveAPIKey(config.AI)
	if err != nil {
		logger.Fatal("loading the gemini api key", zap.Error(err))
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, config.AI.Gemini.Model)
	if err != nil {
		logger.Fatal("creating the gemini client", zap.Error(err))
	}

	var consultant ai.Consultant = gemini.NewConsultant(generator, logger)

	logger.Info("starting the consultant",
		zap.String("model", generator.Model()),
		zap.String("session", consultant.Session()),
	)

	fmt.Println("Ask me anything about buying a used car. Type 'exit' to leave.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nyou> ")

		if !scanner.Scan() {
			return
		}

		message := strings.TrimSpace(scanner.Text())
		if message == "" {
			continue
		}
		if message == "exit" || message == "quit" {
			return
		}

		chunks, err := consultant.Ask(ctx, message)
		if err != nil {
			logger.Debug("consultant call failed", zap.Error(err))
			fmt.Println(consultantApology)
			continue
		}

		for chunk := range chunks {
			fmt.Print(chunk)
		}
		fmt.Println()
	}
}
