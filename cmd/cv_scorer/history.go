package main

import (
	"errors"
	"os"

	"github.com/jonathan/cv-scorer/internal/observability"
	"github.com/jonathan/cv-scorer/internal/scorelog"
	"github.com/spf13/cobra"
)

var historyLogFile string

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show previously scored resumes",
	Long:  "Reads the score log and lists every scored file with its total score, oldest first.",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&historyLogFile, "log-file", "", "Score log path (defaults to CV_SCORER_LOG_FILE or "+defaultLogFile+")")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	path := historyLogFile
	if path == "" {
		path = envOrDefault("CV_SCORER_LOG_FILE", defaultLogFile)
	}

	entries, err := scorelog.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintHistory(entries)
	return nil
}
