package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/cv-scorer/internal/config"
	"github.com/jonathan/cv-scorer/internal/ingestion"
	"github.com/jonathan/cv-scorer/internal/jobdesc"
	"github.com/jonathan/cv-scorer/internal/observability"
	"github.com/jonathan/cv-scorer/internal/schemas"
	"github.com/jonathan/cv-scorer/internal/scorelog"
	"github.com/jonathan/cv-scorer/internal/scoring"
	"github.com/jonathan/cv-scorer/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const (
	defaultLogFile = "logs/system.log"
	defaultWorkers = 4
)

var scoreCmd = &cobra.Command{
	Use:   "score [flags] FILE...",
	Short: "Score one or more plain-text resumes",
	Long: `Scores each resume file (use "-" for stdin) and prints the category breakdown and feedback.

JD keywords come from --jd-keywords, or are derived from the --jd text against the configured vocabulary.
Without either, the jd_keywords list of the scoring config is used. Every scored file is appended to the score log.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScore,
}

var (
	scoreConfigPath    string
	scoreScoringConfig string
	scoreYears         int
	scoreJD            string
	scoreJDKeywords    []string
	scoreLogFile       string
	scoreVerbose       bool
	scoreJSON          bool
	scoreWorkers       int
)

func init() {
	scoreCmd.Flags().StringVar(&scoreConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	scoreCmd.Flags().StringVarP(&scoreScoringConfig, "scoring-config", "s", "", "Path to scoring config JSON (keywords, JD keywords, weights)")
	scoreCmd.Flags().IntVarP(&scoreYears, "years", "y", 0, "Declared years of experience")
	scoreCmd.Flags().StringVarP(&scoreJD, "jd", "j", "", "Path to job description text file")
	scoreCmd.Flags().StringSliceVar(&scoreJDKeywords, "jd-keywords", nil, "Comma-separated JD keywords (overrides --jd)")
	scoreCmd.Flags().StringVar(&scoreLogFile, "log-file", "", "Score log path (defaults to CV_SCORER_LOG_FILE or "+defaultLogFile+")")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print boxed score summaries")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Print results as JSON")
	scoreCmd.Flags().IntVarP(&scoreWorkers, "workers", "w", 0, fmt.Sprintf("Parallel scoring workers (default %d)", defaultWorkers))

	rootCmd.AddCommand(scoreCmd)
}

// scoredDocument pairs an input file with its result.
type scoredDocument struct {
	Filename string               `json:"filename"`
	Document *ingestion.Metadata  `json:"document,omitempty"`
	Result   *types.ScoringResult `json:"result"`
}

func runScore(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadCLIConfig(scoreConfigPath)
	if err != nil {
		return err
	}

	// CLI flags win over the config file when explicitly set
	if cmd.Flags().Changed("scoring-config") {
		cfg.ScoringConfig = scoreScoringConfig
	}
	if cmd.Flags().Changed("years") {
		cfg.YearsExperience = scoreYears
	}
	if cmd.Flags().Changed("jd") {
		cfg.JD = scoreJD
	}
	if cmd.Flags().Changed("jd-keywords") {
		cfg.JDKeywords = scoreJDKeywords
	}
	if cmd.Flags().Changed("log-file") {
		cfg.LogFile = scoreLogFile
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = scoreVerbose
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = scoreWorkers
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		LogFile: envOrDefault("CV_SCORER_LOG_FILE", defaultLogFile),
		Workers: defaultWorkers,
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	input := types.ResumeInput{YearsExperience: cfg.YearsExperience}
	if err := input.Validate(); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	scoringCfg, err := cfg.LoadScoring()
	if err != nil {
		return fmt.Errorf("failed to load scoring config: %w", err)
	}

	jdKeywords, err := resolveJDKeywords(&cfg, scoringCfg)
	if err != nil {
		return err
	}

	docs, err := ingestion.IngestFiles(args)
	if err != nil {
		return fmt.Errorf("failed to ingest resumes: %w", err)
	}

	sink, err := scorelog.NewFileSink(cfg.LogFile)
	if err != nil {
		return err
	}
	defer func() { _ = sink.Close() }()

	engine, err := scoring.NewEngine(scoringCfg, scoring.WithSink(sink), scoring.WithJDNormalizer(jobdesc.NormalizeJD))
	if err != nil {
		return err
	}

	scored, err := scoreDocuments(ctx, engine, docs, cfg.YearsExperience, jdKeywords, cfg.Workers)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if scoreJSON {
		if err := validateResults(scored); err != nil {
			return err
		}
		return writeJSON(out, scored)
	}

	maxTotal := engine.Weights().MaxTotal()
	effectiveJD := jdKeywords
	if effectiveJD == nil {
		effectiveJD = scoringCfg.JDKeywords
	}
	printScored(out, scored, docs, maxTotal, effectiveJD, cfg.Verbose)
	return nil
}

// loadCLIConfig returns the config file at path, or an empty config when path is empty.
func loadCLIConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Config{}, nil
	}
	loaded, err := config.LoadConfig(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	if err := loaded.Validate(); err != nil {
		return config.Config{}, err
	}
	return *loaded, nil
}

// resolveJDKeywords returns the JD keyword override for this run, or nil to use the scoring config's list.
// Explicit keywords win over a JD file.
func resolveJDKeywords(cfg *config.Config, scoringCfg *config.ScoringConfig) ([]string, error) {
	if len(cfg.JDKeywords) > 0 {
		return cfg.JDKeywords, nil
	}
	if cfg.JD == "" {
		return nil, nil
	}

	doc, err := ingestion.IngestFromFile(cfg.JD)
	if err != nil {
		return nil, fmt.Errorf("failed to read job description: %w", err)
	}

	keywords := jobdesc.ExtractKeywords(doc.Text, jobdesc.Vocabulary(scoringCfg))
	if keywords == nil {
		// a JD that mentions nothing from the vocabulary still overrides the config list
		keywords = []string{}
	}
	return keywords, nil
}

// scoreDocuments scores docs with at most workers in flight and returns results in input order.
func scoreDocuments(ctx context.Context, engine *scoring.Engine, docs []*ingestion.Document, years int, jdKeywords []string, workers int) ([]scoredDocument, error) {
	results := make([]scoredDocument, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, workers))

	for i, doc := range docs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			input := types.ResumeInput{Text: doc.Text, YearsExperience: years}
			results[i] = scoredDocument{
				Filename: doc.Name,
				Document: doc.Metadata,
				Result:   engine.ScoreNamed(gctx, doc.Name, input, jdKeywords),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scoring interrupted: %w", err)
	}
	return results, nil
}

// validateResults checks every result against the scoring result schema
func validateResults(scored []scoredDocument) error {
	for _, s := range scored {
		data, err := json.Marshal(s.Result)
		if err != nil {
			return fmt.Errorf("failed to marshal result for %s: %w", s.Filename, err)
		}
		if err := schemas.ValidateScoringResult(data); err != nil {
			return fmt.Errorf("invalid result for %s: %w", s.Filename, err)
		}
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	return nil
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func printScored(w io.Writer, scored []scoredDocument, docs []*ingestion.Document, maxTotal int, jdKeywords []string, verbose bool) {
	printer := observability.NewPrinter(w)
	for i, s := range scored {
		if verbose {
			if s.Document != nil {
				fmt.Fprintf(w, "%s: %d chars, sha256 %s\n", s.Document.Source, s.Document.Chars, shortHash(s.Document.Hash))
			}
			printer.PrintScoringResult(s.Filename, s.Result, maxTotal)
			printer.PrintJDKeywords(jdKeywords, jobdesc.MissingKeywords(docs[i].Text, jdKeywords))
		} else {
			fmt.Fprintf(w, "%s: %d/%d\n", s.Filename, s.Result.TotalScore, maxTotal)
		}
		fmt.Fprintln(w, s.Result.Feedback)
		if i < len(scored)-1 {
			fmt.Fprintln(w)
		}
	}
}

func shortHash(hash string) string {
	if len(hash) > 12 {
		return hash[:12]
	}
	return hash
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
