package cmd

import (
	"log"
	"time"

	"github.com/carwise/carwise/internal/datagen"
	"github.com/carwise/carwise/internal/inventory"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Build a synthetic used-car dataset and write it as csv",
	Run: func(cmd *cobra.Command, _ []string) {
		generate(cmd)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("out", "o", defaultDataset, "output csv path")
	generateCmd.Flags().Int64("seed", 0, "random seed, 0 picks one from the clock")
}

func generate(cmd *cobra.Command) {
	logger, err := newLogger()
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	seed, err := cmd.Flags().GetInt64("seed")
	if err != nil {
		logger.Fatal("reading the seed flag", zap.Error(err))
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	out := cmd.Flag("out").Value.String()

	set := datagen.New(seed).Build()

	if err := inventory.SaveFile(out, set); err != nil {
		logger.Fatal("writing the dataset", zap.Error(err))
	}

	logger.Info("dataset written",
		zap.String("path", out),
		zap.Int("listings", set.Len()),
		zap.Int64("seed", seed),
	)
}
