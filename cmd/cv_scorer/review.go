package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/cv-scorer/internal/config"
	"github.com/jonathan/cv-scorer/internal/ingestion"
	"github.com/jonathan/cv-scorer/internal/llm"
	"github.com/jonathan/cv-scorer/internal/observability"
	"github.com/jonathan/cv-scorer/internal/review"
	"github.com/spf13/cobra"
)

var (
	reviewConfigPath string
	reviewJD         string
	reviewAPIKey     string
	reviewModel      string
	reviewJSON       bool
)

var reviewCmd = &cobra.Command{
	Use:   "review [flags] FILE",
	Short: "Ask an LLM for a screening review of one resume",
	Long:  "Sends the resume (and optional job description) to Gemini and prints a score out of 100 with three highlights. This is independent of the deterministic score.",
	Args:  cobra.ExactArgs(1),
	RunE:  runReview,
}

func init() {
	reviewCmd.Flags().StringVar(&reviewConfigPath, "config", "", "Path to config.json file (api_key and jd are used when the flags are not set)")
	reviewCmd.Flags().StringVarP(&reviewJD, "jd", "j", "", "Path to job description text file")
	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	reviewCmd.Flags().StringVar(&reviewAPIKey, "api-key", "", "Gemini API Key (optional, defaults to config api_key, then GEMINI_API_KEY env var)")
	reviewCmd.Flags().StringVar(&reviewModel, "model", "", "Override the Gemini model")
	reviewCmd.Flags().BoolVar(&reviewJSON, "json", false, "Print the review as JSON")
	rootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadCLIConfig(reviewConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("jd") {
		cfg.JD = reviewJD
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = reviewAPIKey
	}
	cfg = cfg.MergeWithDefaults(config.Config{APIKey: os.Getenv("GEMINI_API_KEY")})

	if cfg.APIKey == "" {
		return fmt.Errorf("API key is required (set --api-key flag, api_key in --config, or GEMINI_API_KEY env var)")
	}

	resume, err := ingestion.IngestFromFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	var jdText string
	if cfg.JD != "" {
		jd, err := ingestion.IngestFromFile(cfg.JD)
		if err != nil {
			return fmt.Errorf("failed to read job description: %w", err)
		}
		jdText = ingestion.CleanText(jd.Text)
	}

	llmCfg := llm.DefaultConfig()
	if reviewModel != "" {
		llmCfg = llmCfg.WithModel(llm.TierStandard, reviewModel)
	}

	client, err := llm.NewClient(ctx, llmCfg, cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	result, err := review.NewReviewer(client).Review(ctx, resume.Text, jdText)
	if err != nil {
		return fmt.Errorf("review failed: %w", err)
	}

	if reviewJSON {
		return writeJSON(cmd.OutOrStdout(), result)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintReview(result)
	return nil
}
