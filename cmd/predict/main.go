package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/oncorisk/coxpredict/internal/adapters/database"
	"github.com/oncorisk/coxpredict/internal/bundle"
	"github.com/oncorisk/coxpredict/internal/infrastructure/clients/postgres"
	"github.com/oncorisk/coxpredict/internal/observability"
	"github.com/oncorisk/coxpredict/internal/pipeline"
	"github.com/oncorisk/coxpredict/pkg/config"
)

var (
	inputPath string
	modelPath string
	outputDir string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "predict",
		Short: "Apply a fitted Cox proportional-hazards model to new patient data",
		Long: `predict scores new patient records with a previously fitted Cox
proportional-hazards model, assigns quantile risk groups, and writes the
augmented table to a CSV file.

Examples:
  # Score a batch of new patients
  predict --input new_patients.xlsx

  # Use a specific model bundle and output directory
  predict -i new_patients.xlsx -m final_result/model_bundle.json -o prediction_results
`,
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "path to new patient data file (.xlsx or .csv)")
	rootCmd.Flags().StringVarP(&modelPath, "model", "m", "final_result/model_bundle.json", "path to the trained model bundle")
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "prediction_results", "output directory")
	rootCmd.MarkFlagRequired("input")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	observability.InitLogger(cfg.App.ServiceName, cfg.App.Environment)
	logger := observability.GetLogger()

	b, err := bundle.Load(modelPath)
	if err != nil {
		return err
	}
	logger.Info().
		Int("features", len(b.SelectedFeatures)).
		Strs("selected_features", b.SelectedFeatures).
		Msg("model bundle loaded")

	runner := pipeline.NewRunner(b)

	if cfg.Database.Persist {
		pgClient, err := postgres.NewClient(&cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pgClient.Close()
		runner.SetSink(database.NewPredictionAdapter(pgClient))
	}

	summary, err := runner.Run(cmd.Context(), inputPath, outputDir)
	if err != nil {
		return err
	}

	printSummary(summary)
	return nil
}

func printSummary(s *pipeline.Summary) {
	fmt.Println("Prediction completed!")
	fmt.Printf("Final samples: %d\n", s.Rows)
	if s.ConcordanceIndex != nil {
		fmt.Printf("C-index on this dataset: %.4f\n", *s.ConcordanceIndex)
	}

	fmt.Println("Risk_Group distribution:")
	groups := make([]string, 0, len(s.GroupCounts))
	for g := range s.GroupCounts {
		groups = append(groups, g)
	}
	sort.Strings(groups)
	for _, g := range groups {
		fmt.Printf("  %-8s %d\n", g, s.GroupCounts[g])
	}

	fmt.Printf("Results saved to: %s\n", s.OutputPath)
}
