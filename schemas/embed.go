// Package schemas embeds the JSON Schema documents for configuration files and scoring results.
package schemas

import "embed"

// Schema file names.
const (
	ScoringConfig = "scoring_config.schema.json"
	ScoringResult = "scoring_result.schema.json"
)

//go:embed *.schema.json
var FS embed.FS

// Names lists every embedded schema file.
var Names = []string{ScoringConfig, ScoringResult}
