package main

import (
	"fmt"

	"github.com/jonathan/cv-scorer/internal/config"
	"github.com/jonathan/cv-scorer/internal/jobdesc"
	"github.com/jonathan/cv-scorer/internal/scorelog"
	"github.com/jonathan/cv-scorer/internal/scoring"
	"github.com/jonathan/cv-scorer/internal/server"
	"github.com/spf13/cobra"
)

var (
	serveConfigPath    string
	servePort          int
	serveScoringConfig string
	serveLogFile       string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that scores resumes posted to /score and appends each result to the score log.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVarP(&serveScoringConfig, "scoring-config", "s", "", "Path to scoring config JSON (keywords, JD keywords, weights)")
	serveCmd.Flags().StringVar(&serveLogFile, "log-file", "", "Score log path (defaults to CV_SCORER_LOG_FILE or "+defaultLogFile+")")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadCLIConfig(serveConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("scoring-config") {
		cfg.ScoringConfig = serveScoringConfig
	}
	if cmd.Flags().Changed("log-file") {
		cfg.LogFile = serveLogFile
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		Port:    servePort,
		LogFile: envOrDefault("CV_SCORER_LOG_FILE", defaultLogFile),
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	scoringCfg, err := cfg.LoadScoring()
	if err != nil {
		return fmt.Errorf("failed to load scoring config: %w", err)
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

	srv, err := server.New(server.Config{
		Port:   cfg.Port,
		Engine: engine,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
